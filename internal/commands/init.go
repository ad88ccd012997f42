// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dacolabs/paramdoc/internal/config"
	"github.com/dacolabs/paramdoc/internal/metadata"
	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/dacolabs/paramdoc/internal/prompts"
	"github.com/dacolabs/paramdoc/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	metadata       string
	language       string
	width          int
	indent         int
	nonInteractive bool
}

// starterMetadata is written when the configured metadata file does not exist.
const starterMetadata = `# Binding parameter metadata. Example:
#
# bindings:
#   - name: linear_regression
#     parameters:
#       - name: lambda
#         description: Regularization.
#         type: float
#         default: 0.1
bindings: []
`

func newInitCmd(languages paramdoc.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new paramdoc project",
		Long: `Initialize a new paramdoc project with a paramdoc.yaml configuration file.
A starter metadata file is created when the referenced one does not exist.`,
		Example: `  # Interactive mode
  paramdoc init

  # Non-interactive
  paramdoc init --metadata bindings.yaml --lang python --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return runInit(cmd.OutOrStdout(), cwd, languages, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.metadata, "metadata", "m", "bindings.yaml", "Path to the binding metadata file")
	cmd.Flags().StringVarP(&opts.language, "lang", "l", "python", "Default documentation language")
	cmd.Flags().IntVarP(&opts.width, "width", "w", config.DefaultWidth, "Wrap width in columns")
	cmd.Flags().IntVarP(&opts.indent, "indent", "i", config.DefaultIndent, "Base indent of continuation lines")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(out io.Writer, dir string, languages paramdoc.Register, opts *initOptions) error {
	configPath := filepath.Join(dir, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("paramdoc.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.metadata, &opts.language, languages.Available()); err != nil {
			return err
		}
	}

	if _, err := languages.Get(opts.language); err != nil {
		return err
	}
	if _, err := metadata.ForPath(opts.metadata); err != nil {
		return err
	}

	cfg := config.Config{
		Version:  config.CurrentConfigVersion,
		Metadata: opts.metadata,
		Language: opts.language,
		Width:    opts.width,
		Indent:   &opts.indent,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	metaPath := opts.metadata
	if !filepath.IsAbs(metaPath) {
		metaPath = filepath.Join(dir, metaPath)
	}
	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		if filepath.Ext(metaPath) == ".json" {
			err = os.WriteFile(metaPath, []byte("{\"bindings\": []}\n"), 0o600)
		} else {
			err = os.WriteFile(metaPath, []byte(starterMetadata), 0o600)
		}
		if err != nil {
			return fmt.Errorf("failed to write metadata file: %w", err)
		}
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Metadata", Value: opts.metadata},
		{Label: "Language", Value: opts.language},
	}, "Initialization completed")
	return nil
}
