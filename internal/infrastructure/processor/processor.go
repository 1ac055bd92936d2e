package processor

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/wb-go/wbf/zlog"
	_ "golang.org/x/image/webp"

	"quickresizer/internal/domain"
)

// ImageProcessor performs the per-item transform chain: decode,
// color normalization, geometry, encode. It holds no state; every call
// operates on its own buffers.
type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Decode parses raw image bytes, honoring EXIF orientation.
func (p *ImageProcessor) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode image")
		return nil, fmt.Errorf("%w: %v", domain.ErrUndecodableImage, err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		zlog.Logger.Error().Msg("decoded image is empty")
		return nil, fmt.Errorf("%w: decoded image is empty", domain.ErrUndecodableImage)
	}
	return img, nil
}

// Inspect reports the dimensions, codec, color mode and byte size of raw
// image data without fully decoding the pixels.
func (p *ImageProcessor) Inspect(data []byte) (*domain.ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to read image header")
		return nil, fmt.Errorf("%w: %v", domain.ErrUndecodableImage, err)
	}
	return &domain.ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: strings.ToUpper(format),
		Mode:   colorMode(cfg.ColorModel),
		SizeKB: float64(len(data)) / 1024,
	}, nil
}

func GetImageDimensions(img image.Image) (width, height int) {
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}
