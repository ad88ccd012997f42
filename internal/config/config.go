// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles paramdoc project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Formatting defaults shared with the rest of the generated documentation.
const (
	DefaultWidth  = paramdoc.DefaultWidth
	DefaultIndent = 2
)

// Config represents the paramdoc.yaml project configuration file.
type Config struct {
	Version  int                 `yaml:"version"`
	Metadata string              `yaml:"metadata"`
	Language string              `yaml:"language,omitempty"`
	Width    int                 `yaml:"width,omitempty"`
	Indent   *int                `yaml:"indent,omitempty"` // nil means DefaultIndent; 0 is valid
	Reserved map[string][]string `yaml:"reserved,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// ApplyDefaults fills unset formatting fields.
func (c *Config) ApplyDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Indent == nil {
		indent := DefaultIndent
		c.Indent = &indent
	}
}

// IndentColumns returns the configured continuation indent.
func (c *Config) IndentColumns() int {
	if c.Indent == nil {
		return DefaultIndent
	}
	return *c.Indent
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Metadata == "" {
		return errors.New("metadata path is required")
	}
	if c.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	indent := c.IndentColumns()
	if indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", indent)
	}
	if indent+paramdoc.BaseIndent >= c.Width {
		return fmt.Errorf("indent %d leaves no room within width %d", indent, c.Width)
	}
	return nil
}

// ReservedFor returns the extra reserved words configured for a language.
func (c *Config) ReservedFor(language string) []string {
	return c.Reserved[language]
}
