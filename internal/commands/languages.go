// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/dacolabs/paramdoc/internal/textwrap"
	"github.com/spf13/cobra"
)

func newLanguagesCmd(languages paramdoc.Register) *cobra.Command {
	var reserved bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List documentation languages",
		Example: `  # List languages
  paramdoc languages

  # Include the reserved words renamed in each language
  paramdoc languages --reserved`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range languages.Available() {
				if !reserved {
					_, _ = fmt.Fprintln(out, name)
					continue
				}
				lang, _ := languages.Get(name)
				line := fmt.Sprintf("%s (suffix %q): %s", name, lang.Suffix, strings.Join(lang.Reserved.Words(), ", "))
				for _, l := range textwrap.Wrap(line, paramdoc.BaseIndent, paramdoc.DefaultWidth) {
					_, _ = fmt.Fprintln(out, l)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reserved, "reserved", false, "Show reserved words")

	return cmd
}
