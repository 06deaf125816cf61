package clue

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Placeholder replaces characters that have no ASCII form in an answer.
const Placeholder = '?'

var nonASCII = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })

func apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeText reduces s to ASCII by dropping every other character.
func NormalizeText(s string) string {
	return apply(runes.Remove(nonASCII), s)
}

// NormalizeAnswer reduces s to ASCII by replacing every other character with
// Placeholder.
func NormalizeAnswer(s string) string {
	return apply(runes.Map(func(r rune) rune {
		if nonASCII.Contains(r) {
			return Placeholder
		}
		return r
	}), s)
}
