// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package julia

import (
	"math"
	"strconv"
	"strings"

	"github.com/dacolabs/paramdoc/internal/paramdoc"
)

// Name is the registry name of the Julia language.
const Name = "julia"

// Keywords are the reserved words of the Julia grammar.
var Keywords = []string{
	"baremodule", "begin", "break", "catch", "const", "continue", "do",
	"else", "elseif", "end", "export", "false", "finally", "for",
	"function", "global", "if", "import", "let", "local", "macro",
	"module", "quote", "return", "struct", "true", "try", "using", "while",
}

// Language returns the Julia documentation language.
func Language() *paramdoc.Language {
	return &paramdoc.Language{
		Name:     Name,
		Resolver: &resolver{},
		Reserved: paramdoc.NewReserved(Keywords...),
		Suffix:   "_",
		Literals: paramdoc.Literals{
			paramdoc.KindString: paramdoc.Literal(func(v paramdoc.StringValue) string {
				return `"` + string(v) + `"`
			}),
			paramdoc.KindFloat: paramdoc.Literal(func(v paramdoc.FloatValue) string {
				return FormatFloat(float64(v))
			}),
			paramdoc.KindInt: paramdoc.Literal(func(v paramdoc.IntValue) string {
				return strconv.FormatInt(int64(v), 10)
			}),
		},
	}
}

// FormatFloat formats v the way Julia shows a Float64: shortest round-trip
// digits, always with a fractional part, and exponent notation outside
// 1e-4 <= |v| < 1e6.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mant := s[:i]
	exp, _ := strconv.Atoi(s[i+1:])
	if v != 0 && (exp < -4 || exp >= 6) {
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		return mant + "e" + strconv.Itoa(exp)
	}

	s = strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
