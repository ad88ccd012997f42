// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dacolabs/paramdoc/internal/paramdoc"
)

// Name is the registry name of the Python language.
const Name = "python"

// Keywords is the Python 3 keyword list.
var Keywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
}

// Language returns the Python documentation language.
func Language() *paramdoc.Language {
	return &paramdoc.Language{
		Name:     Name,
		Resolver: &resolver{},
		Reserved: paramdoc.NewReserved(Keywords...),
		Suffix:   "_",
		Literals: paramdoc.Literals{
			paramdoc.KindString: paramdoc.Literal(func(v paramdoc.StringValue) string {
				return "'" + string(v) + "'"
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

// FormatFloat formats v the way Python's repr does: shortest round-trip
// digits, a trailing ".0" on integral values and exponent notation outside
// 1e-4 <= |v| < 1e16.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	mant, exp := splitExponent(strconv.FormatFloat(v, 'e', -1, 64))
	if v != 0 && (exp < -4 || exp >= 16) {
		return mant + "e" + fmt.Sprintf("%+03d", exp)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func splitExponent(s string) (string, int) {
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	return s[:i], exp
}
