// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/paramdoc/internal/commands"
	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/dacolabs/paramdoc/internal/paramdoc/julia"
	"github.com/dacolabs/paramdoc/internal/paramdoc/python"
)

// RegisterLanguages returns every documentation language the CLI ships with.
func RegisterLanguages() paramdoc.Register {
	languages := make(paramdoc.Register)
	languages.Add(python.Language())
	languages.Add(julia.Language())
	return languages
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments).
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(RegisterLanguages())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
