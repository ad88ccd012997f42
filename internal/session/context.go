// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/paramdoc/internal/config"
	"github.com/dacolabs/paramdoc/internal/logging"
	"github.com/dacolabs/paramdoc/internal/metadata"
)

var (
	// ErrNotInitialized indicates no paramdoc.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a paramdoc project (paramdoc.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMetadataNotFound indicates the metadata file referenced by config doesn't exist.
	ErrMetadataNotFound = errors.New("metadata file not found")

	// ErrInvalidMetadata indicates the metadata file exists but couldn't be loaded.
	ErrInvalidMetadata = errors.New("cannot load metadata file")
)

// ConfigFileName is the name of the paramdoc configuration file.
const ConfigFileName = "paramdoc.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration and the parsed binding metadata.
type Context struct {
	// Config is the validated configuration with defaults applied.
	Config *config.Config

	// Metadata holds the parameter descriptions of every binding.
	Metadata *metadata.File

	// Dir is the directory holding paramdoc.yaml.
	Dir string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the paramdoc Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadDir(ctx, cwd)
}

// LoadDir is Load for an explicit project directory.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.ApplyDefaults()
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	metaPath := cfg.Metadata
	if !filepath.IsAbs(metaPath) {
		metaPath = filepath.Join(dir, metaPath)
	}
	if _, statErr := os.Stat(metaPath); statErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataNotFound, statErr)
	}

	meta, err := metadata.Load(metaPath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidMetadata, cfg.Metadata, err)
	}

	logging.From(ctx).Debug("loaded project",
		"config", configPath,
		"metadata", metaPath,
		"bindings", len(meta.Bindings))

	pctx := &Context{
		Config:   cfg,
		Metadata: meta,
		Dir:      dir,
	}

	return context.WithValue(ctx, contextKey{}, pctx), nil
}

// From extracts the paramdoc Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if pctx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return pctx
	}
	return nil
}
