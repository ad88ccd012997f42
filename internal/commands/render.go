// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dacolabs/paramdoc/internal/logging"
	"github.com/dacolabs/paramdoc/internal/metadata"
	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/dacolabs/paramdoc/internal/prompts"
	"github.com/dacolabs/paramdoc/internal/session"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	bindings string
	language string
	indent   int
	output   string
}

func newRenderCmd(languages paramdoc.Register) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render parameter documentation",
		Long: fmt.Sprintf(`Render the parameter documentation of one or more bindings.

Each binding is printed as its name followed by one entry per parameter,
required parameters first. Nothing is written if any parameter fails to render.

Available languages: %s`, strings.Join(languages.Available(), ", ")),
		Example: `  # Render every binding with the configured language
  paramdoc render

  # Render specific bindings for Julia
  paramdoc render --binding knn,linear_regression --lang julia

  # Write to a file with a custom indent
  paramdoc render --indent 4 --output docs/params.txt`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, languages, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.bindings, "binding", "b", "", "Binding name(s), comma-separated (default: all)")
	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", fmt.Sprintf("Documentation language (%s)", strings.Join(languages.Available(), ", ")))
	cmd.Flags().IntVarP(&opts.indent, "indent", "i", 0, "Base indent of continuation lines (default: from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, languages paramdoc.Register, opts *renderOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	log := logging.From(cmd.Context())

	language := opts.language
	if language == "" {
		language = ctx.Config.Language
	}
	if err := prompts.RunRenderForm(&language, languages.Available()); err != nil {
		return err
	}

	lang, err := languages.Get(language)
	if err != nil {
		return fmt.Errorf("unsupported language %q. Available languages: %s",
			language, strings.Join(languages.Available(), ", "))
	}
	lang = lang.WithReserved(ctx.Config.ReservedFor(language)...)

	indent := ctx.Config.IndentColumns()
	if cmd.Flags().Changed("indent") {
		indent = opts.indent
	}

	selected, err := selectBindings(ctx.Metadata, opts.bindings)
	if err != nil {
		return err
	}

	renderer := &paramdoc.Renderer{Language: lang, Width: ctx.Config.Width}

	var buf bytes.Buffer
	for i, b := range selected {
		lines, err := renderer.Parameters(b.Parameters, indent)
		if err != nil {
			return fmt.Errorf("binding %q: %w", b.Name, err)
		}
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(b.Name + "\n")
		for _, line := range lines {
			buf.WriteString(line + "\n")
		}
		log.Debug("rendered binding", "binding", b.Name, "language", lang.Name, "lines", len(lines))
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(opts.output, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Language", Value: lang.Name},
		{Label: "Bindings", Value: strconv.Itoa(len(selected))},
		{Label: "Output", Value: opts.output},
	}, "Documentation rendered")
	return nil
}

// selectBindings resolves a comma-separated list of binding names. An empty
// list selects every binding in file order.
func selectBindings(meta *metadata.File, names string) ([]metadata.Binding, error) {
	if strings.TrimSpace(names) == "" {
		return meta.Bindings, nil
	}

	var selected []metadata.Binding
	for _, n := range strings.Split(names, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		b, ok := meta.Binding(n)
		if !ok {
			return nil, fmt.Errorf("binding %q not found in metadata", n)
		}
		selected = append(selected, b)
	}
	return selected, nil
}
