package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// flattenOpaque composites the source over a solid white canvas of the same
// pixel dimensions, using the source alpha as the blend mask. Paletted
// sources are expanded on the fly. Idempotent for already-opaque images.
func flattenOpaque(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), white)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// ensureAlpha returns the image in 4-channel NRGBA form, adding a fully
// opaque alpha channel when the source has none.
func ensureAlpha(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	return imaging.Clone(img)
}

// colorMode names the color model of a decoded image header. The names
// follow the usual raster conventions (L for grayscale, P for paletted).
func colorMode(m color.Model) string {
	switch m {
	case color.GrayModel, color.Gray16Model:
		return "L"
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return "RGBA"
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return "RGB"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	return "RGB"
}
