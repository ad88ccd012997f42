// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package paramdoc

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when a type cannot be mapped to a display name.
// It means the metadata and the renderer disagree about the set of types and
// must not be papered over.
var ErrUnknownType = errors.New("unknown parameter type")

// TypeResolver maps parameter types to display names in a target language.
// Each language implements this interface; ResolveType does the dispatch.
type TypeResolver interface {
	// PrimitiveType returns the name of a bool, int, float or string tag.
	PrimitiveType(tag TypeTag) string

	// MatrixType returns the name of a matrix, column, row or
	// categorical-matrix tag. Unsigned selects the integer variant.
	MatrixType(tag TypeTag, unsigned bool) string

	// ListType wraps a resolved element name in the language's list type.
	ListType(elemType string) string

	// ModelType returns the name of a model handle of the given class.
	ModelType(model string) string

	// MappingType returns the name of a string-keyed mapping.
	MappingType() string

	// DataFrameType returns the name of a data frame.
	DataFrameType() string
}

// ResolveType returns the display name of t. Composite types are built from
// the resolved names of their parts.
func ResolveType(r TypeResolver, t Type) (string, error) {
	var name string
	switch t.Tag {
	case TagBool, TagInt, TagFloat, TagString:
		name = r.PrimitiveType(t.Tag)
	case TagMatrix, TagColumn, TagRow, TagCategoricalMatrix:
		name = r.MatrixType(t.Tag, t.Unsigned)
	case TagList:
		if t.Elem == nil {
			return "", fmt.Errorf("%w: list without element type", ErrUnknownType)
		}
		elem, err := ResolveType(r, *t.Elem)
		if err != nil {
			return "", fmt.Errorf("list element: %w", err)
		}
		name = r.ListType(elem)
	case TagModel:
		if t.Model == "" {
			return "", fmt.Errorf("%w: model without class name", ErrUnknownType)
		}
		name = r.ModelType(t.Model)
	case TagMapping:
		name = r.MappingType()
	case TagDataFrame:
		name = r.DataFrameType()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, t.Tag)
	}

	if name == "" {
		return "", fmt.Errorf("%w: no display name for %q", ErrUnknownType, t.Tag)
	}
	return name, nil
}
