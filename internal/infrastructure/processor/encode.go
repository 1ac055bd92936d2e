package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/domain"
)

// Encode serializes the image into the requested format, or into the codec
// inferred from the original filename when no format is requested. Quality
// applies to JPEG and WEBP output; PNG always gets best compression.
// Returns the encoded bytes and the output extension with the leading dot.
func (p *ImageProcessor) Encode(img image.Image, format domain.OutputFormat, quality int, originalName string) ([]byte, string, error) {
	codec, ext, err := selectCodec(format, originalName)
	if err != nil {
		return nil, "", err
	}

	// Normalize the color mode for the target codec. JPEG carries no alpha,
	// so transparency is flattened onto white immediately before encoding.
	switch codec {
	case domain.FormatJPEG:
		img = flattenOpaque(img)
	case domain.FormatPNG, domain.FormatWEBP:
		img = ensureAlpha(img)
	}

	buf := new(bytes.Buffer)
	switch codec {
	case domain.FormatJPEG:
		err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case domain.FormatPNG:
		err = imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case domain.FormatWEBP:
		err = webp.Encode(buf, img, &webp.Options{Quality: float32(quality)})
	case "gif":
		err = imaging.Encode(buf, img, imaging.GIF)
	case "bmp":
		err = imaging.Encode(buf, img, imaging.BMP)
	case "tiff":
		err = imaging.Encode(buf, img, imaging.TIFF)
	default:
		err = fmt.Errorf("no encoder for %q", codec)
	}
	if err != nil {
		zlog.Logger.Error().Err(err).Str("codec", string(codec)).Msg("failed to encode image")
		return nil, "", fmt.Errorf("%w: %v", domain.ErrEncodingFailed, err)
	}

	zlog.Logger.Debug().
		Str("codec", string(codec)).
		Str("extension", ext).
		Int("bytes", buf.Len()).
		Msg("image encoded")

	return buf.Bytes(), ext, nil
}

// selectCodec picks the output codec and file extension. An explicit format
// wins; otherwise the original filename's extension decides,
// case-insensitively, with PNG as the fallback for extension-less names.
func selectCodec(format domain.OutputFormat, originalName string) (domain.OutputFormat, string, error) {
	if format != domain.FormatNone {
		return format, format.Extension(), nil
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		return domain.FormatPNG, ".png", nil
	}
	switch ext {
	case ".jpg", ".jpeg":
		return domain.FormatJPEG, ext, nil
	case ".png":
		return domain.FormatPNG, ext, nil
	case ".webp":
		return domain.FormatWEBP, ext, nil
	case ".gif":
		return "gif", ext, nil
	case ".bmp":
		return "bmp", ext, nil
	case ".tif", ".tiff":
		return "tiff", ext, nil
	default:
		return "", "", fmt.Errorf("%w: no encoder for extension %q", domain.ErrEncodingFailed, ext)
	}
}
