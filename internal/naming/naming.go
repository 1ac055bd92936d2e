// Package naming derives deterministic output filenames for processed images.
package naming

import (
	"fmt"
	"strings"

	"quickresizer/internal/domain"
)

// Generate builds the output filename from the original name, the item's
// 1-based index and the batch naming rule. The extension must include the
// leading dot; when empty, the original name's extension is kept. Two inputs
// that reduce to the same generated name are allowed and will collide in the
// archive.
func Generate(originalName string, index int, rule domain.NamingRule, extension string) string {
	base := originalName
	origExt := ""
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		base = originalName[:i]
		origExt = originalName[i:]
	}

	name := rule.Prefix + base + rule.Suffix
	if rule.Numbered {
		name = fmt.Sprintf("%s_%04d", name, index)
	}

	if extension == "" {
		extension = origExt
	}
	return name + extension
}
