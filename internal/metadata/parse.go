// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package metadata loads binding parameter metadata files.
package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid indicates the file parsed but breaks a structural or semantic rule.
	ErrInvalid = errors.New("invalid binding metadata")

	// ErrUnsupportedFormat indicates a file extension with no parser.
	ErrUnsupportedFormat = errors.New("unsupported metadata format")
)

// Parser decodes a metadata file from an io.Reader.
type Parser struct {
	parse func(io.Reader) (any, error)
}

var (
	// JSON parses metadata files written in JSON.
	JSON = Parser{parseJSON}
	// YAML parses metadata files written in YAML.
	YAML = Parser{parseYAML}
)

// ForPath picks a parser from the file extension.
func ForPath(path string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return Parser{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads and parses the metadata file at path.
func Load(path string) (*File, error) {
	p, err := ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return p.Parse(f)
}

// Parse decodes a metadata file from r, validates it and converts it into
// parameter descriptions.
func (p Parser) Parse(r io.Reader) (*File, error) {
	doc, err := p.parse(r)
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON so YAML and JSON documents take the same path.
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize metadata: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("failed to normalize metadata: %w", err)
	}
	if err := resolvedSchema.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var raw rawFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return convert(&raw)
}

func parseJSON(r io.Reader) (any, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return doc, nil
}

func parseYAML(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return doc, nil
}

// convert builds the parameter descriptions and collects every rule
// violation instead of stopping at the first.
func convert(raw *rawFile) (*File, error) {
	var result *multierror.Error
	file := &File{Bindings: make([]Binding, 0, len(raw.Bindings))}
	seenBindings := make(map[string]bool, len(raw.Bindings))

	for i, rb := range raw.Bindings {
		if rb.Name == "" {
			result = multierror.Append(result, fmt.Errorf("binding #%d: name is required", i+1))
			continue
		}
		if seenBindings[rb.Name] {
			result = multierror.Append(result, fmt.Errorf("binding %q: defined more than once", rb.Name))
			continue
		}
		seenBindings[rb.Name] = true

		b := Binding{
			Name:        rb.Name,
			Description: rb.Description,
			Parameters:  make([]paramdoc.Parameter, 0, len(rb.Parameters)),
		}
		seenParams := make(map[string]bool, len(rb.Parameters))
		for j, rp := range rb.Parameters {
			if rp.Name == "" {
				result = multierror.Append(result, fmt.Errorf("binding %q: parameter #%d: name is required", rb.Name, j+1))
				continue
			}
			if seenParams[rp.Name] {
				result = multierror.Append(result, fmt.Errorf("binding %q: parameter %q: defined more than once", rb.Name, rp.Name))
				continue
			}
			seenParams[rp.Name] = true

			p, err := convertParameter(rp)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("binding %q: parameter %q: %w", rb.Name, rp.Name, err))
				continue
			}
			b.Parameters = append(b.Parameters, p)
		}
		file.Bindings = append(file.Bindings, b)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return file, nil
}

func convertParameter(rp rawParameter) (paramdoc.Parameter, error) {
	typ, err := convertType(rawType{Type: rp.Type, Unsigned: rp.Unsigned, Elem: rp.Elem, Model: rp.Model})
	if err != nil {
		return paramdoc.Parameter{}, err
	}

	p := paramdoc.Parameter{
		Name:            rp.Name,
		Description:     rp.Description,
		Required:        rp.Required,
		Type:            typ,
		KeywordConflict: rp.KeywordConflict,
	}

	if rp.Default == nil {
		return p, nil
	}
	if rp.Required {
		return paramdoc.Parameter{}, errors.New("required parameters cannot have a default")
	}
	p.Default, err = convertDefault(typ.Tag, rp.Default)
	if err != nil {
		return paramdoc.Parameter{}, err
	}
	return p, nil
}

func convertType(rt rawType) (paramdoc.Type, error) {
	t := paramdoc.Type{
		Tag:      paramdoc.TypeTag(rt.Type),
		Unsigned: rt.Unsigned,
		Model:    rt.Model,
	}

	switch t.Tag {
	case paramdoc.TagList:
		if rt.Elem == nil {
			return paramdoc.Type{}, errors.New("list type requires elem")
		}
		elem, err := convertType(*rt.Elem)
		if err != nil {
			return paramdoc.Type{}, fmt.Errorf("elem: %w", err)
		}
		t.Elem = &elem
	case paramdoc.TagModel:
		if rt.Model == "" {
			return paramdoc.Type{}, errors.New("model type requires model")
		}
	}

	for _, known := range paramdoc.Tags {
		if t.Tag == known {
			return t, nil
		}
	}
	return paramdoc.Type{}, fmt.Errorf("%w: %q", paramdoc.ErrUnknownType, rt.Type)
}

// convertDefault picks the default kind from the parameter type. Defaults of
// non-scalar types are dropped.
func convertDefault(tag paramdoc.TypeTag, v any) (paramdoc.Default, error) {
	switch tag {
	case paramdoc.TagString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("default %v is not a string", v)
		}
		return paramdoc.StringValue(s), nil
	case paramdoc.TagFloat:
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("default %v is not a number", v)
		}
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("default %v: %w", v, err)
		}
		return paramdoc.FloatValue(f), nil
	case paramdoc.TagInt:
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("default %v is not an integer", v)
		}
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("default %v is not an integer", v)
		}
		return paramdoc.IntValue(i), nil
	case paramdoc.TagBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("default %v is not a boolean", v)
		}
		return paramdoc.BoolValue(b), nil
	default:
		return nil, nil
	}
}
