// Package normalize canonicalizes workout names for matching. "Push-Up",
// "push up" and "PUSHUP" all normalize to the same key, so catalog lookups
// survive the casing and punctuation the generative model (or the user)
// happens to produce.
package normalize

import (
	"strings"
	"unicode"
)

// Key strips every whitespace rune and hyphen from s and lowercases the
// rest. Whitespace is the Unicode class, so non-breaking spaces collapse the
// same way ordinary ones do. Key is a pure many-to-one projection and
// idempotent: Key(Key(s)) == Key(s).
func Key(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '-':
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
