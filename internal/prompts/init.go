// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(metadataPath, language *string, languages []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to binding metadata").
				Placeholder("bindings.yaml").
				Validate(metadataPathValidator).
				Value(metadataPath),
		),
		huh.NewGroup(
			LanguageSelect(language, languages),
		),
	).WithTheme(Theme()).Run()
}
