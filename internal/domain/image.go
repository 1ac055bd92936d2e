package domain

import (
	"fmt"
	"strings"
)

type ResizeStrategy string

const (
	StrategyFit     ResizeStrategy = "fit"
	StrategyCover   ResizeStrategy = "cover"
	StrategyStretch ResizeStrategy = "stretch"
)

func (s ResizeStrategy) Valid() bool {
	switch s {
	case StrategyFit, StrategyCover, StrategyStretch:
		return true
	}
	return false
}

func ParseResizeStrategy(s string) (ResizeStrategy, error) {
	strategy := ResizeStrategy(strings.ToLower(s))
	if !strategy.Valid() {
		return "", fmt.Errorf("%w: unknown resize strategy %q", ErrInvalidConfiguration, s)
	}
	return strategy, nil
}

// OutputFormat is the requested target encoding. The zero value means the
// original format of each input is preserved.
type OutputFormat string

const (
	FormatNone OutputFormat = ""
	FormatJPEG OutputFormat = "jpeg"
	FormatPNG  OutputFormat = "png"
	FormatWEBP OutputFormat = "webp"
)

// ParseOutputFormat accepts the supported format names case-insensitively,
// with "jpg" as an alias for JPEG. The empty string selects FormatNone.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "":
		return FormatNone, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWEBP, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Extension returns the output file extension with the leading dot, or the
// empty string for FormatNone.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG:
		return ".png"
	case FormatWEBP:
		return ".webp"
	}
	return ""
}

// SupportsAlpha reports whether the encoded output can carry an alpha channel.
func (f OutputFormat) SupportsAlpha() bool {
	return f == FormatPNG || f == FormatWEBP
}

// NamingRule is applied identically to every item in a batch. The sequence
// number is the item's 1-based position, zero-padded to 4 digits.
type NamingRule struct {
	Prefix   string
	Suffix   string
	Numbered bool
}

// ProcessingConfig is the shared per-batch configuration.
type ProcessingConfig struct {
	Preset     Preset
	CustomSize *Dimensions
	Strategy   ResizeStrategy
	Format     OutputFormat
	Quality    int
	Naming     NamingRule
}

// Validate checks the configuration eagerly, before any image data is read.
func (c *ProcessingConfig) Validate() error {
	if _, err := ResolveDimensions(c.Preset, c.CustomSize); err != nil {
		return err
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w: unknown resize strategy %q", ErrInvalidConfiguration, c.Strategy)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be in 1..100, got %d", ErrInvalidConfiguration, c.Quality)
	}
	switch c.Format {
	case FormatNone, FormatJPEG, FormatPNG, FormatWEBP:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.Format)
	}
	return nil
}

// TargetDimensions resolves the configured preset to concrete pixel sizes.
func (c *ProcessingConfig) TargetDimensions() (Dimensions, error) {
	return ResolveDimensions(c.Preset, c.CustomSize)
}

// ImageItem is one batch input: raw encoded bytes plus the original filename.
// Items carry no identity beyond their position in the input list.
type ImageItem struct {
	Data []byte
	Name string
}

// ImageResult is one batch output: encoded bytes plus the generated filename.
type ImageResult struct {
	Data []byte
	Name string
}

// ImageInfo describes a decodable image without transforming it.
type ImageInfo struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Format string  `json:"format"`
	Mode   string  `json:"mode"`
	SizeKB float64 `json:"size_kb"`
}
