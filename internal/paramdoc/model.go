// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package paramdoc

import "strings"

// TypeTag is the language-agnostic semantic type of a binding parameter.
type TypeTag string

// Supported type tags.
const (
	TagBool              TypeTag = "bool"
	TagInt               TypeTag = "int"
	TagFloat             TypeTag = "float"
	TagString            TypeTag = "string"
	TagMatrix            TypeTag = "matrix"
	TagColumn            TypeTag = "column"
	TagRow               TypeTag = "row"
	TagCategoricalMatrix TypeTag = "categorical-matrix"
	TagModel             TypeTag = "model"
	TagList              TypeTag = "list"
	TagMapping           TypeTag = "mapping"
	TagDataFrame         TypeTag = "data-frame"
)

// Tags lists every supported type tag.
var Tags = []TypeTag{
	TagBool, TagInt, TagFloat, TagString,
	TagMatrix, TagColumn, TagRow, TagCategoricalMatrix,
	TagModel, TagList, TagMapping, TagDataFrame,
}

// Type describes a parameter type: a tag plus the flags some tags need.
type Type struct {
	Tag      TypeTag
	Unsigned bool   // matrix, column and row hold non-negative integers
	Elem     *Type  // element type of a list
	Model    string // model class name
}

// Parameter describes one binding parameter. It is built by the metadata
// collector and never modified by the renderer.
type Parameter struct {
	Name            string
	Description     string
	Required        bool
	Type            Type
	Default         Default // nil for required parameters
	KeywordConflict bool    // Name is reserved in the target language
}

// Lines is rendered documentation, one entry per output line.
type Lines []string

// String joins the lines with newlines.
func (l Lines) String() string {
	return strings.Join(l, "\n")
}
