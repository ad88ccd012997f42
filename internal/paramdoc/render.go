// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package paramdoc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dacolabs/paramdoc/internal/textwrap"
)

const (
	// Marker starts the first line of every parameter entry.
	Marker = " - "

	// BaseIndent is added to the caller's indent for continuation lines.
	BaseIndent = 4

	// DefaultWidth is the column budget shared with the rest of the
	// generated documentation.
	DefaultWidth = 80
)

// Renderer renders parameter documentation for one language. It holds no
// mutable state and may be shared between goroutines.
type Renderer struct {
	Language *Language
	Width    int
}

// NewRenderer returns a Renderer for lang using DefaultWidth.
func NewRenderer(lang *Language) *Renderer {
	return &Renderer{Language: lang, Width: DefaultWidth}
}

// Line renders p with an already resolved type name. Continuation lines are
// indented by indent+BaseIndent columns.
func (r *Renderer) Line(p Parameter, typeName string, indent int) Lines {
	var sb strings.Builder
	sb.WriteString(Marker)
	sb.WriteString(r.Language.Identifier(p))
	sb.WriteString(" (")
	sb.WriteString(typeName)
	sb.WriteString("): ")
	sb.WriteString(p.Description)

	if !p.Required {
		if lit, ok := r.Language.Literals.Format(p.Default); ok {
			sb.WriteString("  Default value ")
			sb.WriteString(lit)
			sb.WriteString(".")
		}
	}

	return textwrap.Wrap(sb.String(), indent+BaseIndent, r.width())
}

// Parameter resolves the type of p and renders it.
func (r *Renderer) Parameter(p Parameter, indent int) (Lines, error) {
	typeName, err := ResolveType(r.Language.Resolver, p.Type)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	return r.Line(p, typeName, indent), nil
}

// Parameters renders ps with required parameters first. The relative order
// within each group is kept.
func (r *Renderer) Parameters(ps []Parameter, indent int) (Lines, error) {
	ordered := make([]Parameter, len(ps))
	copy(ordered, ps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Required && !ordered[j].Required
	})

	var out Lines
	for _, p := range ordered {
		lines, err := r.Parameter(p, indent)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return DefaultWidth
	}
	return r.Width
}
