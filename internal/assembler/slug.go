package assembler

import (
	"strings"
	"unicode"
)

// Slugify lowercases name and collapses runs of non-alphanumerics into
// single hyphens, for use in filenames and package names.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "project"
	}
	return b.String()
}
