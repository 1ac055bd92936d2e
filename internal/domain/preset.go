package domain

import "fmt"

type Preset string

const (
	PresetSquare   Preset = "square_1080"
	PresetFullHD   Preset = "hd_1080p"
	PresetPassport Preset = "passport"
	PresetCustom   Preset = "custom"
)

// Dimensions is a resolved target size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

var presetDimensions = map[Preset]Dimensions{
	PresetSquare:   {Width: 1080, Height: 1080},
	PresetFullHD:   {Width: 1920, Height: 1080},
	PresetPassport: {Width: 413, Height: 531}, // 35x45mm at 300 DPI
}

// ResolveDimensions maps a preset to its target size. The custom pair is
// consulted only for PresetCustom and must then be present and positive.
func ResolveDimensions(preset Preset, custom *Dimensions) (Dimensions, error) {
	if preset == PresetCustom {
		if custom == nil {
			return Dimensions{}, fmt.Errorf("%w: custom preset requires explicit dimensions", ErrInvalidConfiguration)
		}
		if custom.Width <= 0 || custom.Height <= 0 {
			return Dimensions{}, fmt.Errorf("%w: custom dimensions must be positive, got %dx%d",
				ErrInvalidConfiguration, custom.Width, custom.Height)
		}
		return *custom, nil
	}
	dims, ok := presetDimensions[preset]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfiguration, preset)
	}
	return dims, nil
}

// ParsePreset accepts the wire names used in configuration files.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case PresetSquare, PresetFullHD, PresetPassport, PresetCustom:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown preset %q", ErrInvalidConfiguration, s)
	}
}
