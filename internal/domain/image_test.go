package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		custom *Dimensions
		want   Dimensions
	}{
		{name: "square", preset: PresetSquare, want: Dimensions{1080, 1080}},
		{name: "full hd", preset: PresetFullHD, want: Dimensions{1920, 1080}},
		{name: "passport", preset: PresetPassport, want: Dimensions{413, 531}},
		{name: "custom", preset: PresetCustom, custom: &Dimensions{640, 480}, want: Dimensions{640, 480}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDimensions(tc.preset, tc.custom)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Positive(t, got.Width)
			assert.Positive(t, got.Height)
		})
	}
}

func TestResolveDimensions_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		custom *Dimensions
	}{
		{name: "custom without dimensions", preset: PresetCustom},
		{name: "custom zero width", preset: PresetCustom, custom: &Dimensions{0, 100}},
		{name: "custom negative height", preset: PresetCustom, custom: &Dimensions{100, -1}},
		{name: "unknown preset", preset: Preset("billboard")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveDimensions(tc.preset, tc.custom)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
	}{
		{"", FormatNone},
		{"jpeg", FormatJPEG},
		{"JPEG", FormatJPEG},
		{"jpg", FormatJPEG},
		{"JPG", FormatJPEG},
		{"png", FormatPNG},
		{"PNG", FormatPNG},
		{"WebP", FormatWEBP},
	}

	for _, tc := range tests {
		got, err := ParseOutputFormat(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseOutputFormat_Unsupported(t *testing.T) {
	for _, in := range []string{"TIFF", "tiff", "gif", "avif", "bogus"} {
		_, err := ParseOutputFormat(in)
		require.ErrorIs(t, err, ErrUnsupportedFormat, "input %q", in)
	}
}

func TestOutputFormat_Extension(t *testing.T) {
	assert.Equal(t, ".jpg", FormatJPEG.Extension())
	assert.Equal(t, ".png", FormatPNG.Extension())
	assert.Equal(t, ".webp", FormatWEBP.Extension())
	assert.Equal(t, "", FormatNone.Extension())
}

func TestProcessingConfig_Validate(t *testing.T) {
	valid := ProcessingConfig{
		Preset:   PresetSquare,
		Strategy: StrategyFit,
		Format:   FormatJPEG,
		Quality:  90,
	}
	require.NoError(t, valid.Validate())

	t.Run("quality below range", func(t *testing.T) {
		cfg := valid
		cfg.Quality = 0
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
	})

	t.Run("quality above range", func(t *testing.T) {
		cfg := valid
		cfg.Quality = 101
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := valid
		cfg.Strategy = "tile"
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
	})

	t.Run("unsupported format", func(t *testing.T) {
		cfg := valid
		cfg.Format = "tiff"
		require.ErrorIs(t, cfg.Validate(), ErrUnsupportedFormat)
	})

	t.Run("custom preset without size", func(t *testing.T) {
		cfg := valid
		cfg.Preset = PresetCustom
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
	})

	t.Run("preserve original format", func(t *testing.T) {
		cfg := valid
		cfg.Format = FormatNone
		require.NoError(t, cfg.Validate())
	})
}

func TestParseResizeStrategy(t *testing.T) {
	for _, in := range []string{"fit", "Cover", "STRETCH"} {
		got, err := ParseResizeStrategy(in)
		require.NoError(t, err)
		assert.True(t, got.Valid())
	}

	_, err := ParseResizeStrategy("zoom")
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}
