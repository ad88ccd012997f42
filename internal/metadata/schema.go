// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metadata

import (
	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/google/jsonschema-go/jsonschema"
)

// fileSchema describes the structure of a metadata file. Cross-field rules
// (defaults on required parameters, duplicate names...) are checked in Go.
func fileSchema() *jsonschema.Schema {
	tags := make([]any, len(paramdoc.Tags))
	for i, t := range paramdoc.Tags {
		tags[i] = string(t)
	}

	elem := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"type"},
		Properties: map[string]*jsonschema.Schema{
			"type":     {Type: "string", Enum: tags},
			"unsigned": {Type: "boolean"},
			"model":    {Type: "string"},
			"elem":     {Type: "object"},
		},
	}

	param := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"name", "type"},
		Properties: map[string]*jsonschema.Schema{
			"name":            {Type: "string"},
			"description":     {Type: "string"},
			"type":            {Type: "string", Enum: tags},
			"unsigned":        {Type: "boolean"},
			"elem":            elem,
			"model":           {Type: "string"},
			"required":        {Type: "boolean"},
			"default":         {},
			"keywordConflict": {Type: "boolean"},
		},
	}

	binding := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]*jsonschema.Schema{
			"name":        {Type: "string"},
			"description": {Type: "string"},
			"parameters":  {Type: "array", Items: param},
		},
	}

	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"bindings"},
		Properties: map[string]*jsonschema.Schema{
			"bindings": {Type: "array", Items: binding},
		},
	}
}

var resolvedSchema *jsonschema.Resolved

func init() {
	rs, err := fileSchema().Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		panic("metadata: invalid file schema: " + err.Error())
	}
	resolvedSchema = rs
}
