// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/paramdoc/internal/logging"
	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/dacolabs/paramdoc/internal/prompts"
	"github.com/dacolabs/paramdoc/internal/session"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func newCheckCmd(languages paramdoc.Register) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate binding metadata",
		Long: `Validate the binding metadata and resolve every parameter type in every
available language.`,
		Example: `  # Check the project metadata
  paramdoc check`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd, ctx, languages)
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, ctx *session.Context, languages paramdoc.Register) error {
	log := logging.From(cmd.Context())

	var result *multierror.Error
	params := 0
	for _, b := range ctx.Metadata.Bindings {
		for _, p := range b.Parameters {
			params++
			for _, name := range languages.Available() {
				lang, _ := languages.Get(name)
				typeName, err := paramdoc.ResolveType(lang.Resolver, p.Type)
				if err != nil {
					result = multierror.Append(result, fmt.Errorf("%s: binding %q: parameter %q: %w", name, b.Name, p.Name, err))
					continue
				}
				log.Debug("resolved type", "language", name, "binding", b.Name, "parameter", p.Name, "type", typeName)
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Bindings", Value: strconv.Itoa(len(ctx.Metadata.Bindings))},
		{Label: "Parameters", Value: strconv.Itoa(params)},
		{Label: "Languages", Value: strings.Join(languages.Available(), ", ")},
	}, "Metadata is valid")
	return nil
}
