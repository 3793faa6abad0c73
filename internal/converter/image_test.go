// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/batchpix/pkg/types"
)

// halfTransparent builds a 2x2 NRGBA image: opaque red on the left column,
// fully transparent on the right.
func halfTransparent() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		img.SetNRGBA(0, y, color.NRGBA{R: 255, A: 255})
		img.SetNRGBA(1, y, color.NRGBA{})
	}
	return img
}

func TestFlattenForJPEG_TransparentBecomesWhite(t *testing.T) {
	flat := flattenForJPEG(halfTransparent())

	nrgba, ok := flat.(*image.NRGBA)
	require.True(t, ok)

	left := nrgba.NRGBAAt(0, 0)
	assert.EqualValues(t, 255, left.R)
	assert.EqualValues(t, 255, left.A)

	right := nrgba.NRGBAAt(1, 0)
	assert.EqualValues(t, 255, right.R, "transparent pixels flatten to white")
	assert.EqualValues(t, 255, right.G)
	assert.EqualValues(t, 255, right.B)
	assert.EqualValues(t, 255, right.A)
}

func TestFlattenForJPEG_OpaqueModelsPassThrough(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Same(t, image.Image(gray), flattenForJPEG(gray))

	ycbcr := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)
	assert.Same(t, image.Image(ycbcr), flattenForJPEG(ycbcr))
}

func TestSaveImage_JPEGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}

	path := filepath.Join(dir, "out.jpg")
	require.NoError(t, saveImage(src, path, types.FormatJPEG))

	back, err := imaging.Open(path)
	require.NoError(t, err)

	// Lossy encoding at quality 95 keeps the pixels close.
	r, g, b, _ := back.At(4, 4).RGBA()
	assert.InDelta(t, 200, r>>8, 10)
	assert.InDelta(t, 80, g>>8, 10)
	assert.InDelta(t, 40, b>>8, 10)
}

func TestSaveImage_RGBAToJPEGIsOpaqueWhite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.jpg")
	require.NoError(t, saveImage(halfTransparent(), path, types.FormatJPEG))

	back, err := imaging.Open(path)
	require.NoError(t, err)

	r, g, b, a := back.At(1, 1).RGBA()
	assert.EqualValues(t, 0xffff, a)
	assert.Greater(t, int(r>>8), 240, "background must be near-white where alpha was 0")
	assert.Greater(t, int(g>>8), 240)
	assert.Greater(t, int(b>>8), 240)
}

func TestSaveImage_PNGPreservesTransparency(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.png")
	require.NoError(t, saveImage(halfTransparent(), path, types.FormatPNG))

	back, err := imaging.Open(path)
	require.NoError(t, err)

	_, _, _, a := back.At(1, 1).RGBA()
	assert.EqualValues(t, 0, a, "PNG output performs no flattening")
}

func TestLoadImage_Unreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := loadImage(path)
	assert.Error(t, err)

	_, err = loadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
