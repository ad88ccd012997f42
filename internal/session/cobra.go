// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// FromCommand returns the project stored in the command's context, or nil.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand returns the project loaded by PreRunLoad. Commands that
// forget to install PreRunLoad get an error naming the command.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	pctx := FromCommand(cmd)
	if pctx == nil {
		return nil, fmt.Errorf("%s: project not loaded: %w", cmd.CommandPath(), ErrNotInitialized)
	}
	return pctx, nil
}

// PreRunLoad loads paramdoc.yaml and its metadata from the working directory
// into the command's context. Outside a project it points the user at init.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if errors.Is(err, ErrNotInitialized) {
		return fmt.Errorf("%w; run '%s init' first", err, cmd.Root().Name())
	}
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
