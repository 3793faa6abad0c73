// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// WebP has no encoder in the ecosystem stack, but inputs must decode.
	// PNG, JPEG, GIF, BMP and TIFF decoders are registered by the imaging
	// package's own imports.
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/batchpix/pkg/types"
)

// jpegQuality is the fixed encoding quality for JPEG output.
const jpegQuality = 95

// loadImage opens and decodes the image at path.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// saveImage writes img to path in the given format. JPEG output is flattened
// first, since the encoding has no transparency; PNG output is written as-is.
func saveImage(img image.Image, path string, format types.OutputFormat) error {
	if format == types.FormatJPEG {
		img = flattenForJPEG(img)
	}
	return imaging.Save(img, path, imaging.JPEGQuality(jpegQuality))
}

// flattenForJPEG prepares img for an encoding without transparency. Images
// carrying an alpha channel or a palette are composited onto an opaque white
// canvas of the same dimensions, using their alpha as the blend mask. Other
// color models (gray, YCbCr) pass through; the encoder converts those itself.
func flattenForJPEG(img image.Image) image.Image {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.Paletted:
		white := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
		return imaging.Overlay(white, img, image.Pt(0, 0), 1.0)
	default:
		return img
	}
}
