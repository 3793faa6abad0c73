// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/batchpix/pkg/types"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	req := types.Request{
		InputDir:    "photos",
		Prefix:      "img",
		StartNumber: 1,
		Rename:      true,
		Format:      types.FormatPNG,
		Ext:         ".png",
	}
	result := types.BatchResult{
		Converted: 1,
		Renamed:   2,
		Files: []types.FileResult{
			{Source: "photos/a.webp", Output: "photos/img_001.png", Outcome: types.OutcomeConverted},
			{Source: "photos/b.png", Output: "photos/img_002.png", Outcome: types.OutcomeRenamed},
			{Source: "photos/c.png", Output: "photos/img_003.png", Outcome: types.OutcomeRenamed},
			{Source: "photos/d.png", Outcome: types.OutcomeFailed, Error: "decoding d.png: unexpected EOF"},
		},
	}

	require.NoError(t, Write(path, req, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, req, got.Request)
	assert.Equal(t, 1, got.Converted)
	assert.Equal(t, 2, got.Renamed)
	assert.Equal(t, 3, got.Total)
	assert.Len(t, got.Files, 4)
	assert.Equal(t, types.OutcomeFailed, got.Files[3].Outcome)
	assert.NotEmpty(t, got.GeneratedAt)
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "report.yaml"), types.Request{}, types.BatchResult{})
	assert.Error(t, err)
}
