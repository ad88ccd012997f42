// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metadata

import "github.com/dacolabs/paramdoc/internal/paramdoc"

// File is a parsed binding metadata file.
type File struct {
	Bindings []Binding
}

// Binding is one generated function and its parameters, in declaration order.
type Binding struct {
	Name        string
	Description string
	Parameters  []paramdoc.Parameter
}

// Binding returns the binding called name.
func (f *File) Binding(name string) (Binding, bool) {
	for _, b := range f.Bindings {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Names returns the binding names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Bindings))
	for i, b := range f.Bindings {
		names[i] = b.Name
	}
	return names
}

type rawFile struct {
	Bindings []rawBinding `json:"bindings"`
}

type rawBinding struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  []rawParameter `json:"parameters"`
}

type rawParameter struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Unsigned        bool     `json:"unsigned"`
	Elem            *rawType `json:"elem"`
	Model           string   `json:"model"`
	Required        bool     `json:"required"`
	Default         any      `json:"default"`
	KeywordConflict bool     `json:"keywordConflict"`
}

type rawType struct {
	Type     string   `json:"type"`
	Unsigned bool     `json:"unsigned"`
	Elem     *rawType `json:"elem"`
	Model    string   `json:"model"`
}
