package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s, strips combining marks and collapses whitespace,
// so "  Bengalūru " and "bengaluru" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Slug turns a display name into a URL-safe identifier.
func Slug(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range Fold(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// TitleCase capitalises the first letter of every space or hyphen separated word.
func TitleCase(s string) string {
	out := []rune(s)
	upper := true
	for i, r := range out {
		if upper {
			out[i] = unicode.ToUpper(r)
		}
		upper = r == ' ' || r == '-'
	}
	return string(out)
}
