package processor

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/domain"
)

// Transform normalizes the source onto an opaque background and resizes it
// to exactly the target dimensions using the requested strategy. All scaling
// uses Lanczos resampling.
func (p *ImageProcessor) Transform(img image.Image, dims domain.Dimensions, strategy domain.ResizeStrategy) (*image.NRGBA, error) {
	flat := flattenOpaque(img)

	var out *image.NRGBA
	switch strategy {
	case domain.StrategyFit:
		out = p.fit(flat, dims)
	case domain.StrategyCover:
		out = p.cover(flat, dims)
	case domain.StrategyStretch:
		out = imaging.Resize(flat, dims.Width, dims.Height, imaging.Lanczos)
	default:
		return nil, fmt.Errorf("%w: unknown resize strategy %q", domain.ErrInvalidConfiguration, strategy)
	}

	zlog.Logger.Debug().
		Int("source_width", img.Bounds().Dx()).
		Int("source_height", img.Bounds().Dy()).
		Int("target_width", dims.Width).
		Int("target_height", dims.Height).
		Str("strategy", string(strategy)).
		Msg("image transformed")

	return out, nil
}

// fit scales the source to the largest size that still fits the target box,
// then pastes it centered on a white canvas of exactly the target size.
func (p *ImageProcessor) fit(img *image.NRGBA, dims domain.Dimensions) *image.NRGBA {
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()

	scale := math.Min(float64(dims.Width)/float64(srcW), float64(dims.Height)/float64(srcH))
	scaledW := int(float64(srcW) * scale)
	scaledH := int(float64(srcH) * scale)
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	scaled := imaging.Resize(img, scaledW, scaledH, imaging.Lanczos)
	canvas := imaging.New(dims.Width, dims.Height, white)
	return imaging.Paste(canvas, scaled, image.Pt((dims.Width-scaledW)/2, (dims.Height-scaledH)/2))
}

// cover crops the source symmetrically to the target aspect ratio, then
// scales the kept region to exactly the target size. Crop offsets are
// centered; the kept dimension is truncated toward zero.
func (p *ImageProcessor) cover(img *image.NRGBA, dims domain.Dimensions) *image.NRGBA {
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()

	srcRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(dims.Width) / float64(dims.Height)

	var cropped *image.NRGBA
	if srcRatio > targetRatio {
		// Source is relatively wider: trim left/right, keep full height.
		keepW := int(float64(srcH) * targetRatio)
		if keepW < 1 {
			keepW = 1
		}
		cropped = imaging.CropCenter(img, keepW, srcH)
	} else {
		keepH := int(float64(srcW) / targetRatio)
		if keepH < 1 {
			keepH = 1
		}
		cropped = imaging.CropCenter(img, srcW, keepH)
	}

	return imaging.Resize(cropped, dims.Width, dims.Height, imaging.Lanczos)
}
