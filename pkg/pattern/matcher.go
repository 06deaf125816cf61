// Package pattern holds the letter-level machinery shared by the solver: matching
// candidate answers against enumerations and crossing letters, and narrowing word
// sets by the letters they may contain.
package pattern

import (
	"slices"
	"strings"
)

const (
	// Joiner marks a word boundary inside a single phrase or answer ("on_top_of").
	Joiner = '_'
	// Wildcard marks an unknown cell in a letter pattern.
	Wildcard = '.'
)

// Dejoin removes every joiner marker from word.
func Dejoin(word string) string {
	return strings.ReplaceAll(word, string(Joiner), "")
}

// HasLetters reports whether pattern fixes at least one cell.
func HasLetters(pattern string) bool {
	return strings.ReplaceAll(pattern, string(Wildcard), "") != ""
}

// Total returns the number of letters an enumeration describes.
func Total(lengths []int) int {
	n := 0
	for _, l := range lengths {
		n += l
	}
	return n
}

// Matches reports whether word fits the enumeration lengths and the letter pattern.
//
// The words of word (split on the joiner) must have exactly the given lengths, and
// the dejoined letters must line up one-to-one with pattern, where every cell is either
// the wildcard or the same letter. An empty pattern therefore only matches an empty word.
func Matches(word, pattern string, lengths []int) bool {
	f := SplitFill(word)
	if !slices.Equal(f.Lengths(), lengths) {
		return false
	}
	cells := []rune(pattern)
	if len(cells) != f.Length() {
		return false
	}
	for i, c := range cells {
		if c != Wildcard && c != f.Letters[i] {
			return false
		}
	}
	return true
}

// Fits is Matches with an empty pattern treated as "no letters known yet".
func Fits(word, pattern string, lengths []int) bool {
	if pattern == "" {
		f := SplitFill(word)
		return slices.Equal(f.Lengths(), lengths)
	}
	return Matches(word, pattern, lengths)
}
