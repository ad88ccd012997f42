// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package julia provides the Julia docstring vocabulary.
package julia

import (
	"strconv"

	"github.com/dacolabs/paramdoc/internal/paramdoc"
)

type resolver struct{}

func (r *resolver) PrimitiveType(tag paramdoc.TypeTag) string {
	switch tag {
	case paramdoc.TagBool:
		return "Bool"
	case paramdoc.TagInt:
		return "Int"
	case paramdoc.TagFloat:
		return "Float64"
	case paramdoc.TagString:
		return "String"
	default:
		return ""
	}
}

func (r *resolver) MatrixType(tag paramdoc.TypeTag, unsigned bool) string {
	elem := "Float64"
	if unsigned {
		elem = "Int"
	}
	switch tag {
	case paramdoc.TagMatrix:
		return r.array(elem, 2)
	case paramdoc.TagColumn, paramdoc.TagRow:
		return r.array(elem, 1)
	case paramdoc.TagCategoricalMatrix:
		return "Tuple{" + r.array("Bool", 1) + ", " + r.array("Float64", 2) + "}"
	default:
		return ""
	}
}

func (r *resolver) ListType(elemType string) string {
	return r.array(elemType, 1)
}

func (r *resolver) ModelType(model string) string {
	return model
}

func (r *resolver) MappingType() string {
	return "Dict{String, Any}"
}

func (r *resolver) DataFrameType() string {
	return "DataFrame"
}

func (r *resolver) array(elem string, dims int) string {
	return "Array{" + elem + ", " + strconv.Itoa(dims) + "}"
}
