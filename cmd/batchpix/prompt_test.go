// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/batchpix/internal/converter"
)

func TestPromptPolicy_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  converter.Decision
	}{
		{name: "empty answer means yes", input: "\n", want: converter.DecisionOverwrite},
		{name: "y", input: "y\n", want: converter.DecisionOverwrite},
		{name: "yes", input: "YES\n", want: converter.DecisionOverwrite},
		{name: "n", input: "n\n", want: converter.DecisionSkip},
		{name: "no", input: "no\n", want: converter.DecisionSkip},
		{name: "a applies to the whole batch", input: "A\n", want: converter.DecisionOverwriteAll},
		{name: "garbage is re-asked", input: "what\nn\n", want: converter.DecisionSkip},
		{name: "eof resolves to skip", input: "", want: converter.DecisionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPromptPolicy(strings.NewReader(tt.input), &out)

			got := p.Resolve("a.png", "out/a.png")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Overwrite? (Y/n/A for all)")
		})
	}
}

func TestRunWizard_ConvertsFolder(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "converted")

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(in, "a.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	// Answers: folder, format (PNG default), rename (1), output (3 custom),
	// custom path, prefix (default), start number (default).
	script := strings.Join([]string{in, "", "1", "3", out, "", ""}, "\n") + "\n"

	var output bytes.Buffer
	require.NoError(t, runWizard(strings.NewReader(script), &output))

	assert.FileExists(t, filepath.Join(out, "image_001.png"))
	assert.Contains(t, output.String(), "Total files processed: 1")
}

func TestRunWizard_QuotedPathAndJPEG(t *testing.T) {
	in := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(in, "a.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	// Quoted folder path, JPEG format, keep original names, convert in
	// place, keep originals.
	script := strings.Join([]string{`"` + in + `"`, "2", "2", "1", "n"}, "\n") + "\n"

	var output bytes.Buffer
	require.NoError(t, runWizard(strings.NewReader(script), &output))

	assert.FileExists(t, filepath.Join(in, "a.jpg"))
	assert.FileExists(t, filepath.Join(in, "a.png"), "originals are kept")
}
