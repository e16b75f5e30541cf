package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug: lower-cased, accents removed via
// canonical decomposition, runs of anything outside [a-z0-9] collapsed to a
// single hyphen, and no leading or trailing hyphen.
//
// Examples:
//   - "Café Münster!" → "cafe-munster"
//   - "  Dr. Martens 1460  " → "dr-martens-1460"
func Generate(name string) string {
	s := strings.ToLower(name)

	// Decompose (é → e + U+0301) and drop the combining marks.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
