// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package paramdoc

import "sort"

// Reserved is a set of identifiers that cannot name a parameter in a target
// language.
type Reserved map[string]struct{}

// NewReserved builds a set from words.
func NewReserved(words ...string) Reserved {
	r := make(Reserved, len(words))
	for _, w := range words {
		r[w] = struct{}{}
	}
	return r
}

// Has reports whether name is reserved.
func (r Reserved) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// With returns a new set holding r and words.
func (r Reserved) With(words ...string) Reserved {
	out := make(Reserved, len(r)+len(words))
	for w := range r {
		out[w] = struct{}{}
	}
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

// Words returns the reserved words in sorted order.
func (r Reserved) Words() []string {
	words := make([]string, 0, len(r))
	for w := range r {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
