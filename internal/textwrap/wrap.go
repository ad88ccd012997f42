// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package textwrap wraps documentation text to a fixed column budget with a
// hanging indent on continuation lines.
package textwrap

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display columns.
//
// Every line gets width-indent columns of content, the first one included.
// Lines after the first are prefixed with indent spaces unless empty. Lines
// break at whitespace when possible and after a hyphen inside a word that does
// not fit on a line of its own. A token with neither is emitted intact.
// Embedded newlines force a break. Text that fits in width-indent columns is
// returned unchanged.
func Wrap(text string, indent, width int) []string {
	if indent < 0 {
		indent = 0
	}
	if width < 1 {
		width = 1
	}
	budget := width - indent
	if budget < 1 {
		budget = 1
	}
	pad := strings.Repeat(" ", indent)

	var lines []string
	for i, para := range strings.Split(text, "\n") {
		if i > 0 {
			para = strings.TrimLeftFunc(para, unicode.IsSpace)
		}
		lines = append(lines, wrapParagraph(para, budget)...)
	}

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return lines
}

// wrapParagraph wraps a newline-free string to limit columns per line.
func wrapParagraph(s string, limit int) []string {
	var out []string
	for {
		if runewidth.StringWidth(s) <= limit {
			return append(out, s)
		}
		var line string
		line, s = split(s, limit)
		out = append(out, line)
		if s == "" {
			return out
		}
	}
}

// split cuts the longest prefix of s that fits in limit columns and returns
// it along with the remainder. The whitespace run at a break is dropped.
func split(s string, limit int) (string, string) {
	space, hyphen := -1, -1
	seen := false
	col := 0
	prev := ' '
	for i, r := range s {
		if unicode.IsSpace(r) {
			if seen && col <= limit {
				space = i
			}
		} else {
			seen = true
		}
		col += runewidth.RuneWidth(r)
		if col > limit {
			break
		}
		if r == '-' && !unicode.IsSpace(prev) && i+1 < len(s) {
			hyphen = i + 1
		}
		prev = r
	}

	switch {
	case space > 0:
		return strings.TrimRightFunc(s[:space], unicode.IsSpace), strings.TrimLeftFunc(s[space:], unicode.IsSpace)
	case hyphen > 0:
		return s[:hyphen], s[hyphen:]
	}

	// Nothing fits: emit the first token whole.
	start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return "", ""
	}
	end := strings.IndexFunc(s[start:], unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	end += start
	return s[:end], strings.TrimLeftFunc(s[end:], unicode.IsSpace)
}
