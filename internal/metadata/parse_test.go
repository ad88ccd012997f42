// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metadata

import (
	"strings"
	"testing"

	"github.com/dacolabs/paramdoc/internal/paramdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	f, err := Load("testdata/bindings.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"linear_regression", "knn"}, f.Names())

	lr, ok := f.Binding("linear_regression")
	require.True(t, ok)
	assert.Equal(t, "Simple least-squares linear regression.", lr.Description)
	require.Len(t, lr.Parameters, 4)

	training := lr.Parameters[0]
	assert.Equal(t, "training", training.Name)
	assert.True(t, training.Required)
	assert.Equal(t, paramdoc.Type{Tag: paramdoc.TagMatrix}, training.Type)
	assert.Nil(t, training.Default)

	lambda := lr.Parameters[1]
	assert.False(t, lambda.Required)
	assert.Equal(t, paramdoc.FloatValue(0.1), lambda.Default)

	model := lr.Parameters[2]
	assert.Equal(t, paramdoc.Type{Tag: paramdoc.TagModel, Model: "LinearRegression"}, model.Type)

	knn, ok := f.Binding("knn")
	require.True(t, ok)
	assert.Equal(t, paramdoc.IntValue(10), knn.Parameters[0].Default)
	assert.Equal(t, paramdoc.StringValue("dual_tree"), knn.Parameters[1].Default)

	labels := knn.Parameters[2]
	require.NotNil(t, labels.Type.Elem)
	assert.Equal(t, paramdoc.TagList, labels.Type.Tag)
	assert.Equal(t, paramdoc.Type{Tag: paramdoc.TagRow, Unsigned: true}, *labels.Type.Elem)
	assert.Nil(t, labels.Default, "non-scalar defaults are dropped")

	_, ok = f.Binding("missing")
	assert.False(t, ok)
}

func TestLoad_JSON(t *testing.T) {
	f, err := Load("testdata/bindings.json")
	require.NoError(t, err)

	b, ok := f.Binding("perceptron")
	require.True(t, ok)
	require.Len(t, b.Parameters, 4)

	assert.Equal(t, paramdoc.IntValue(1000), b.Parameters[0].Default)
	assert.Equal(t, paramdoc.FloatValue(1e-05), b.Parameters[1].Default)
	assert.Equal(t, paramdoc.BoolValue(false), b.Parameters[2].Default)
	assert.True(t, b.Parameters[2].KeywordConflict)
	assert.Equal(t, paramdoc.IntValue(9007199254740993), b.Parameters[3].Default)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, paramdoc.ErrUnknownType)

	for _, want := range []string{
		`parameter "x": required parameters cannot have a default`,
		`parameter "x": defined more than once`,
		`parameter "k": default 2.5 is not an integer`,
		`parameter "items": list type requires elem`,
		`parameter "items2": elem: elem: unknown parameter type: "tensor"`,
		`parameter "m": model type requires model`,
		`binding "broken": defined more than once`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"not found", "testdata/nonexistent.yaml"},
		{"malformed", "testdata/malformed.yaml"},
		{"unsupported extension", "testdata/bindings.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			assert.Error(t, err)
		})
	}

	_, err := Load("testdata/bindings.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing bindings", `{}`},
		{"unknown type tag", `{"bindings": [{"name": "b", "parameters": [{"name": "p", "type": "tensor"}]}]}`},
		{"missing type", `{"bindings": [{"name": "b", "parameters": [{"name": "p"}]}]}`},
		{"wrong field type", `{"bindings": [{"name": "b", "parameters": [{"name": "p", "type": "int", "required": "yes"}]}]}`},
		{"bindings not a list", `{"bindings": {"name": "b"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_EmptyName(t *testing.T) {
	doc := `
bindings:
  - name: ""
  - name: ok
    parameters:
      - name: ""
        type: int
`
	_, err := YAML.Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binding #1: name is required")
	assert.Contains(t, err.Error(), `binding "ok": parameter #1: name is required`)
}

func TestForPath(t *testing.T) {
	for _, path := range []string{"a.yaml", "a.YML", "dir/a.json"} {
		_, err := ForPath(path)
		assert.NoError(t, err, path)
	}
	_, err := ForPath("a.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
