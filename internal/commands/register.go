// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/dacolabs/paramdoc/internal/logging"
	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	noColor  bool
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(languages paramdoc.Register) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "paramdoc",
		Short: "Render parameter documentation for generated bindings",
		Long: `Render per-parameter documentation lines for auto-generated binding
API references, wrapped to the project's column width.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.Setup(cmd.Context(), os.Stderr, level, !opts.noColor))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")

	rootCmd.AddCommand(newInitCmd(languages))
	rootCmd.AddCommand(newRenderCmd(languages))
	rootCmd.AddCommand(newCheckCmd(languages))
	rootCmd.AddCommand(newLanguagesCmd(languages))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
