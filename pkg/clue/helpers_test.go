package clue

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

// --- Clue fake ---

type fakeClue struct {
	definition string
	answers    []string
	err        error
	noDef      bool
}

func (f *fakeClue) Subtrees() []Subtree {
	if f.noDef {
		return []Subtree{{Label: "sub", Phrases: []string{"x"}}}
	}
	return []Subtree{
		{Label: "ana_", Phrases: []string{"broken"}},
		{Label: DefinitionLabel, Phrases: []string{f.definition}},
	}
}

func (f *fakeClue) Answers() ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.answers, nil
}

func (f *fakeClue) Derivation(answer string) string {
	return fmt.Sprintf("%s = %s", f.definition, answer)
}

func (f *fakeClue) LongDerivation(answer string, similarity float64) string {
	return fmt.Sprintf("%s means %s (%.2f)", answer, f.definition, similarity)
}

// --- Expander fakes ---

type identityExpander struct{}

func (identityExpander) Expand(phrases []string) [][]string {
	return [][]string{phrases}
}

type listExpander [][]string

func (l listExpander) Expand([]string) [][]string {
	return l
}

// --- Resolver fake: clues keyed by the joined phrasing ---

type mapResolver map[string][]Clue

func (m mapResolver) Resolve(c Constraints) []Clue {
	return m[strings.Join(c.Phrases, " ")]
}

// --- Oracle fake: scores keyed by "answer|definition", default 0.1 ---

type mapOracle map[string]float64

func (m mapOracle) Similarity(answer, definition string) float64 {
	if v, ok := m[answer+"|"+definition]; ok {
		return v
	}
	return 0.1
}

// --- WordList fake ---

type sliceWords []string

func (s sliceWords) All() iter.Seq[string] {
	return slices.Values(s)
}

func answerStrings(answers []Answer) []string {
	out := make([]string, len(answers))
	for i, a := range answers {
		out[i] = a.Answer
	}
	return out
}
