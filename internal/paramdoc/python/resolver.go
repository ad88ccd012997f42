// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python provides the Python docstring vocabulary.
package python

import (
	"github.com/dacolabs/paramdoc/internal/paramdoc"
)

type resolver struct{}

func (r *resolver) PrimitiveType(tag paramdoc.TypeTag) string {
	switch tag {
	case paramdoc.TagBool:
		return "bool"
	case paramdoc.TagInt:
		return "int"
	case paramdoc.TagFloat:
		return "float"
	case paramdoc.TagString:
		return "str"
	default:
		return ""
	}
}

func (r *resolver) MatrixType(tag paramdoc.TypeTag, unsigned bool) string {
	var name string
	switch tag {
	case paramdoc.TagMatrix:
		name = "matrix"
	case paramdoc.TagColumn, paramdoc.TagRow:
		name = "vector"
	case paramdoc.TagCategoricalMatrix:
		return "categorical matrix"
	default:
		return ""
	}
	if unsigned {
		return "int " + name
	}
	return name
}

func (r *resolver) ListType(elemType string) string {
	return "list of " + elemType + "s"
}

func (r *resolver) ModelType(model string) string {
	return model + "Type"
}

func (r *resolver) MappingType() string {
	return "dict"
}

func (r *resolver) DataFrameType() string {
	return "DataFrame"
}
