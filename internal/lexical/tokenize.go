// Package lexical implements dependency-free token-overlap retrieval.
package lexical

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text, turns every rune outside [a-z0-9] and whitespace
// into a space, and splits on whitespace runs. Empty tokens are dropped.
func Tokenize(text string) []string {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, strings.ToLower(text))
	return strings.Fields(normalized)
}
