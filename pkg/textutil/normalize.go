package textutil

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, strips everything except letters, digits
// and spaces, and collapses internal whitespace to single spaces.
// Used for keyword matching, never for display.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
