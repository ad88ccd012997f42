// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dacolabs/paramdoc/internal/metadata"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name         string
		dir          string // relative to testdata, empty means use t.TempDir()
		wantErr      error
		wantBindings []string // only checked if wantErr is nil
	}{
		{
			name:    "not initialized",
			dir:     "", // empty dir with no paramdoc.yaml
			wantErr: ErrNotInitialized,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "metadata not found",
			dir:     "testdata/missing-metadata",
			wantErr: ErrMetadataNotFound,
		},
		{
			name:    "invalid metadata",
			dir:     "testdata/invalid-metadata",
			wantErr: ErrInvalidMetadata,
		},
		{
			name:         "valid",
			dir:          "testdata/valid",
			wantErr:      nil,
			wantBindings: []string{"linear_regression"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var testDir string
			if tt.dir == "" {
				testDir = t.TempDir()
			} else {
				var err error
				testDir, err = filepath.Abs(tt.dir)
				require.NoError(t, err)
			}

			origDir, _ := os.Getwd()
			defer func() { _ = os.Chdir(origDir) }()
			require.NoError(t, os.Chdir(testDir))

			ctx, err := Load(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			pctx := From(ctx)
			require.NotNil(t, pctx)
			assert.Equal(t, tt.wantBindings, pctx.Metadata.Names())
			assert.Equal(t, "python", pctx.Config.Language)
			assert.Equal(t, 80, pctx.Config.Width, "defaults applied")
			assert.Equal(t, 2, pctx.Config.IndentColumns(), "defaults applied")
			assert.NotEmpty(t, pctx.Dir)
		})
	}
}

func TestLoad_InvalidMetadataMessage(t *testing.T) {
	_, err := LoadDir(context.Background(), "testdata/invalid-metadata")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMetadata)
	assert.ErrorIs(t, err, metadata.ErrInvalid)

	msg := err.Error()
	assert.Contains(t, msg, "cannot load metadata file bindings.yaml: invalid binding metadata")
	assert.Equal(t, 1, strings.Count(msg, "invalid binding metadata"), msg)
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.ErrorIs(t, err, ErrNotInitialized)

	testDir, err := filepath.Abs("testdata/valid")
	require.NoError(t, err)

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(testDir))

	require.NoError(t, PreRunLoad(cmd, nil))
	pctx, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	lr, ok := pctx.Metadata.Binding("linear_regression")
	require.True(t, ok)
	assert.Equal(t, "lambda", lr.Parameters[0].Name)
}

func TestPreRunLoad_OutsideProject(t *testing.T) {
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(t.TempDir()))

	root := &cobra.Command{Use: "paramdoc"}
	root.AddCommand(&cobra.Command{
		Use:     "render",
		PreRunE: PreRunLoad,
		RunE:    func(*cobra.Command, []string) error { return nil },
	})
	root.SetArgs([]string{"render"})

	err := root.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Contains(t, err.Error(), "run 'paramdoc init' first")
}
