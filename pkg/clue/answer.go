package clue

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// unknownWordplay is what a pattern-only answer shows in place of a derivation.
const unknownWordplay = "???"

// Answer is a candidate answer annotated with the definition it was scored against.
// Answers found only by the pattern fallback have a nil Clue.
type Answer struct {
	Answer     string
	Definition string
	Similarity float64
	Clue       Clue
}

// PatternOnly reports whether the answer came from the pattern fallback.
func (a Answer) PatternOnly() bool {
	return a.Clue == nil
}

// Derivation returns the short explanation, prefixed with the confidence.
func (a Answer) Derivation() string {
	if a.PatternOnly() {
		return unknownWordplay
	}
	return fmt.Sprintf("%.0f%%: %s", a.Similarity*100, a.Clue.Derivation(a.Answer))
}

// LongDerivation returns a full sentence explanation.
func (a Answer) LongDerivation() string {
	if a.PatternOnly() {
		return fmt.Sprintf("I don't understand the wordplay for this clue, but %s matches '%s' with confidence score %.1f%%",
			strings.ToUpper(a.Answer), a.Definition, a.Similarity*100)
	}
	return a.Clue.LongDerivation(a.Answer, a.Similarity)
}

func (a Answer) String() string {
	if a.PatternOnly() {
		return fmt.Sprintf("[%s %.3f %s]", a.Answer, a.Similarity, unknownWordplay)
	}
	return fmt.Sprintf("[%s %.3f %s]", a.Answer, a.Similarity, a.Clue.Derivation(a.Answer))
}

// Compare orders answers by similarity, then by answer string. It returns a negative
// number when a ranks below b.
func Compare(a, b Answer) int {
	if c := cmp.Compare(a.Similarity, b.Similarity); c != 0 {
		return c
	}
	return strings.Compare(a.Answer, b.Answer)
}

// Sort ranks answers best first: highest similarity, ties by descending answer.
func Sort(answers []Answer) {
	slices.SortStableFunc(answers, func(a, b Answer) int {
		return Compare(b, a)
	})
}

// Definition returns the definition fragment of c.
//
// A Clue without a definition subtree is a defect in the resolver, so this panics
// rather than scoring against nothing.
func Definition(c Clue) string {
	for _, t := range c.Subtrees() {
		if t.Label == DefinitionLabel && len(t.Phrases) > 0 {
			return t.Phrases[0]
		}
	}
	panic(fmt.Sprintf("clue: derivation has no %q subtree: %v", DefinitionLabel, c.Subtrees()))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Score annotates raw, an answer produced by c, with its similarity to the definition.
func Score(oracle Oracle, raw string, c Clue) Answer {
	answer := NormalizeAnswer(raw)
	definition := Definition(c)
	return Answer{
		Answer:     answer,
		Definition: definition,
		Similarity: clamp(oracle.Similarity(answer, definition)),
		Clue:       c,
	}
}

// ScorePattern annotates raw, a word that only fits the pattern, against whichever
// end of phrasing it matches better. The first phrase wins only when strictly better.
func ScorePattern(oracle Oracle, raw string, phrasing []string) Answer {
	answer := NormalizeAnswer(raw)
	if len(phrasing) == 0 {
		return Answer{Answer: answer}
	}
	first, last := phrasing[0], phrasing[len(phrasing)-1]
	simFirst := clamp(oracle.Similarity(answer, first))
	simLast := clamp(oracle.Similarity(answer, last))
	if simFirst > simLast {
		return Answer{Answer: answer, Definition: first, Similarity: simFirst}
	}
	return Answer{Answer: answer, Definition: last, Similarity: simLast}
}
