package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quickresizer/internal/domain"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		original string
		index    int
		rule     domain.NamingRule
		ext      string
		want     string
	}{
		{
			name:     "prefix with numbering and conversion",
			original: "img.bmp",
			index:    3,
			rule:     domain.NamingRule{Prefix: "out_", Numbered: true},
			ext:      ".png",
			want:     "out_img_0003.png",
		},
		{
			name:     "plain rename keeps original extension",
			original: "photo.jpg",
			index:    1,
			rule:     domain.NamingRule{},
			ext:      "",
			want:     "photo.jpg",
		},
		{
			name:     "suffix without numbering",
			original: "holiday.png",
			index:    7,
			rule:     domain.NamingRule{Suffix: "_small"},
			ext:      ".jpg",
			want:     "holiday_small.jpg",
		},
		{
			name:     "no original extension",
			original: "scan",
			index:    12,
			rule:     domain.NamingRule{Numbered: true},
			ext:      ".webp",
			want:     "scan_0012.webp",
		},
		{
			name:     "no original extension and no conversion",
			original: "scan",
			index:    1,
			rule:     domain.NamingRule{Prefix: "a_"},
			ext:      "",
			want:     "a_scan",
		},
		{
			name:     "only text after last dot is stripped",
			original: "backup.2024.png",
			index:    1,
			rule:     domain.NamingRule{},
			ext:      ".jpg",
			want:     "backup.2024.jpg",
		},
		{
			name:     "large index stays four digits",
			original: "x.png",
			index:    12345,
			rule:     domain.NamingRule{Numbered: true},
			ext:      ".png",
			want:     "x_12345.png",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate(tc.original, tc.index, tc.rule, tc.ext)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	rule := domain.NamingRule{Prefix: "p_", Suffix: "_s", Numbered: true}
	first := Generate("a.png", 42, rule, ".jpg")
	second := Generate("a.png", 42, rule, ".jpg")
	assert.Equal(t, first, second)
}
