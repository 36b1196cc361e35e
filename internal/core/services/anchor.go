package services

import (
	"strings"
	"unicode"
)

// AnchorFor derives the link fragment a markdown renderer generates for a
// heading: lower-cased, runs of whitespace collapsed to single hyphens,
// and every rune that is not a letter, digit or hyphen dropped.
func AnchorFor(text string) string {
	joined := strings.Join(strings.Fields(strings.ToLower(text)), "-")
	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
