// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package paramdoc

// Kind identifies the concrete type of a Default.
type Kind string

// Default value kinds.
const (
	KindString Kind = "string"
	KindFloat  Kind = "float"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
)

// Default is a parameter default value. The concrete types are StringValue,
// FloatValue, IntValue and BoolValue.
type Default interface {
	Kind() Kind
}

// StringValue is a string default.
type StringValue string

// FloatValue is a floating-point default.
type FloatValue float64

// IntValue is an integer default.
type IntValue int64

// BoolValue is a boolean default.
type BoolValue bool

func (StringValue) Kind() Kind { return KindString }
func (FloatValue) Kind() Kind  { return KindFloat }
func (IntValue) Kind() Kind    { return KindInt }
func (BoolValue) Kind() Kind   { return KindBool }

// Literals maps a default kind to its literal syntax in a target language.
// Kinds without an entry are not documented.
type Literals map[Kind]func(Default) string

// Format renders d as a literal. It reports false when d is nil or its kind
// has no formatter.
func (l Literals) Format(d Default) (string, bool) {
	if d == nil {
		return "", false
	}
	f, ok := l[d.Kind()]
	if !ok {
		return "", false
	}
	return f(d), true
}

// Literal adapts a formatter for one concrete default type to a Literals entry.
func Literal[T Default](f func(T) string) func(Default) string {
	return func(d Default) string {
		return f(d.(T))
	}
}
