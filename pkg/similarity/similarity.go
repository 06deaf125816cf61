// Package similarity scores how plausibly a candidate answer matches a definition,
// using a thesaurus.
package similarity

import (
	"slices"
	"strings"

	"crosswarped.com/cryptics/pkg/pattern"
)

// Scores assigned by Oracle. Lexical overlap alone never reaches Shared.
const (
	Identical = 1.0
	Direct    = 0.9
	Shared    = 0.5
	Lexical   = 0.2
)

// Thesaurus returns the synonyms of a word.
type Thesaurus interface {
	Synonyms(word string) []string
}

// Oracle scores answers against definitions by their distance in a Thesaurus.
type Oracle struct {
	thesaurus Thesaurus
}

// NewOracle creates an Oracle over t.
func NewOracle(t Thesaurus) *Oracle {
	return &Oracle{thesaurus: t}
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), string(pattern.Joiner))
}

// Similarity returns Identical when answer and definition are the same word, Direct
// when they are synonyms, Shared when they have a synonym in common, and otherwise a
// letter-bigram overlap scaled below Lexical.
func (o *Oracle) Similarity(answer, definition string) float64 {
	a, d := normalize(answer), normalize(definition)
	if a == "" || d == "" {
		return 0
	}
	if a == d {
		return Identical
	}

	answerSyns := o.thesaurus.Synonyms(a)
	if slices.Contains(answerSyns, d) || slices.Contains(o.thesaurus.Synonyms(d), a) {
		return Direct
	}
	defSyns := o.thesaurus.Synonyms(d)
	for _, s := range answerSyns {
		if slices.Contains(defSyns, s) {
			return Shared
		}
	}
	return Lexical * dice(pattern.Dejoin(a), pattern.Dejoin(d)) * 0.99
}

// dice is the Sørensen–Dice coefficient over letter bigrams.
func dice(a, b string) float64 {
	ba, bb := bigrams(a), bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}
	counts := make(map[string]int, len(ba))
	for _, g := range ba {
		counts[g]++
	}
	common := 0
	for _, g := range bb {
		if counts[g] > 0 {
			counts[g]--
			common++
		}
	}
	return 2 * float64(common) / float64(len(ba)+len(bb))
}

func bigrams(s string) []string {
	rs := []rune(s)
	if len(rs) < 2 {
		return nil
	}
	out := make([]string, 0, len(rs)-1)
	for i := 0; i+1 < len(rs); i++ {
		out = append(out, string(rs[i:i+2]))
	}
	return out
}
