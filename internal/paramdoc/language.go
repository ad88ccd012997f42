// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package paramdoc renders documentation lines for binding parameters.
package paramdoc

import (
	"fmt"
	"sort"
)

// Language bundles everything the renderer needs to know about a target
// documentation language.
type Language struct {
	Name     string
	Resolver TypeResolver
	Reserved Reserved
	Suffix   string // appended to reserved parameter names
	Literals Literals
}

// Identifier returns the name p is documented under.
func (l *Language) Identifier(p Parameter) string {
	if p.KeywordConflict || l.Reserved.Has(p.Name) {
		return p.Name + l.Suffix
	}
	return p.Name
}

// WithReserved returns a copy of l that also reserves words.
func (l *Language) WithReserved(words ...string) *Language {
	c := *l
	c.Reserved = l.Reserved.With(words...)
	return &c
}

// Register maps language names to languages.
type Register map[string]*Language

// Add registers l under its name.
func (r Register) Add(l *Language) {
	r[l.Name] = l
}

// Get retrieves a language by name.
func (r Register) Get(name string) (*Language, error) {
	l, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown language: %s", name)
	}
	return l, nil
}

// Available returns all registered language names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
