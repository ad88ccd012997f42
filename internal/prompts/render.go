// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunRenderForm prompts for the documentation language when it is not set.
func RunRenderForm(language *string, languages []string) error {
	if *language != "" {
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			LanguageSelect(language, languages),
		),
	).WithTheme(Theme()).Run()
}
