// Package wordplay is a small cryptic grammar engine. It reads a phrasing as a
// definition at one end and an anagram or hidden word at the other, and works out the
// answers each reading yields from a word list.
package wordplay

import (
	"iter"

	"crosswarped.com/cryptics/pkg/clue"
	"crosswarped.com/cryptics/pkg/pattern"
)

// Lexicon is the word list answers are drawn from.
type Lexicon interface {
	// Bucket returns the words with exactly n letters once joiners are removed.
	Bucket(n int) *pattern.Words
	// Lookup returns the words spelled exactly by letters once joiners are removed.
	Lookup(letters string) []string
}

// Resolver enumerates anagram and hidden-word readings of a phrasing.
type Resolver struct {
	lexicon    Lexicon
	indicators Indicators
}

// NewResolver creates a Resolver using the default indicators.
func NewResolver(lexicon Lexicon) *Resolver {
	return &Resolver{lexicon: lexicon, indicators: DefaultIndicators()}
}

// WithIndicators replaces the indicator lists.
func (r *Resolver) WithIndicators(ind Indicators) *Resolver {
	r.indicators = ind
	return r
}

// Resolve returns every reading of c.Phrases. The definition is the first or the last
// phrase; of the remaining phrases, the indicator is the one next to the definition
// or the one furthest from it, and the rest is fodder.
func (r *Resolver) Resolve(c clue.Constraints) []clue.Clue {
	var clues []clue.Clue
	for reading := range readings(c.Phrases) {
		if r.indicators.Anagram[reading.indicator] {
			clues = append(clues, newDerivation(anagram, reading, c, r.lexicon))
		}
		if r.indicators.Hidden[reading.indicator] {
			clues = append(clues, newDerivation(hidden, reading, c, r.lexicon))
		}
	}
	return clues
}

// reading is one assignment of roles to the phrases of a phrasing.
type reading struct {
	definition string
	indicator  string
	fodder     []string
	// order lists the roles in clue order, for rendering subtrees.
	order []role
}

type role int

const (
	roleDefinition role = iota
	roleIndicator
	roleFodder
)

func readings(phrases []string) iter.Seq[reading] {
	return func(yield func(reading) bool) {
		n := len(phrases)
		if n < 3 {
			return
		}
		// Definition first.
		rest := phrases[1:]
		if !yield(reading{phrases[0], rest[0], rest[1:], []role{roleDefinition, roleIndicator, roleFodder}}) {
			return
		}
		if !yield(reading{phrases[0], rest[len(rest)-1], rest[:len(rest)-1], []role{roleDefinition, roleFodder, roleIndicator}}) {
			return
		}
		// Definition last.
		rest = phrases[:n-1]
		if !yield(reading{phrases[n-1], rest[len(rest)-1], rest[:len(rest)-1], []role{roleFodder, roleIndicator, roleDefinition}}) {
			return
		}
		yield(reading{phrases[n-1], rest[0], rest[1:], []role{roleIndicator, roleFodder, roleDefinition}})
	}
}
