package clue

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_TotalOrder(t *testing.T) {
	answers := []Answer{
		{Answer: "a", Similarity: 0.5},
		{Answer: "b", Similarity: 0.5},
		{Answer: "a", Similarity: 0.9},
		{Answer: "a", Similarity: 0.5},
		{Answer: "z", Similarity: 0},
		{Answer: "n", Similarity: math.NaN()},
	}
	for _, a := range answers {
		for _, b := range answers {
			ab, ba := Compare(a, b), Compare(b, a)
			switch {
			case ab < 0:
				assert.Positive(t, ba)
			case ab > 0:
				assert.Negative(t, ba)
			default:
				assert.Zero(t, ba)
			}
		}
	}
	assert.Zero(t, Compare(answers[0], answers[3]))
}

func TestSort_DescendingWithAnswerTieBreak(t *testing.T) {
	answers := []Answer{
		{Answer: "apple", Similarity: 0.2},
		{Answer: "pear", Similarity: 0.9},
		{Answer: "fig", Similarity: 0.2},
		{Answer: "plum", Similarity: 0.2},
	}
	Sort(answers)
	assert.Equal(t, []string{"pear", "plum", "fig", "apple"}, answerStrings(answers))

	again := slices.Clone(answers)
	Sort(again)
	assert.Equal(t, answers, again)
}

func TestScore(t *testing.T) {
	c := &fakeClue{definition: "spin", answers: []string{"english"}}
	a := Score(mapOracle{"english|spin": 0.8}, "english", c)

	assert.Equal(t, "english", a.Answer)
	assert.Equal(t, "spin", a.Definition)
	assert.InDelta(t, 0.8, a.Similarity, 1e-9)
	assert.False(t, a.PatternOnly())
	assert.Equal(t, "80%: spin = english", a.Derivation())
	assert.Equal(t, "english means spin (0.80)", a.LongDerivation())
}

func TestScore_NormalizesAndClamps(t *testing.T) {
	c := &fakeClue{definition: "drink"}
	a := Score(mapOracle{"caf?|drink": 3}, "caf\u00e9", c)
	assert.Equal(t, "caf?", a.Answer)
	assert.Equal(t, 1.0, a.Similarity)

	b := Score(mapOracle{"tea|drink": math.NaN()}, "tea", c)
	assert.Equal(t, 0.0, b.Similarity)
}

func TestScore_MissingDefinitionPanics(t *testing.T) {
	assert.Panics(t, func() {
		Score(mapOracle{}, "x", &fakeClue{noDef: true})
	})
}

func TestScorePattern_PicksBetterEnd(t *testing.T) {
	phrasing := []string{"gratuitous", "indicators", "on_top_of", "screen"}

	first := ScorePattern(mapOracle{"needless|gratuitous": 0.7, "needless|screen": 0.2}, "needless", phrasing)
	assert.Equal(t, "gratuitous", first.Definition)
	assert.InDelta(t, 0.7, first.Similarity, 1e-9)
	assert.True(t, first.PatternOnly())

	last := ScorePattern(mapOracle{"needless|gratuitous": 0.2, "needless|screen": 0.6}, "needless", phrasing)
	assert.Equal(t, "screen", last.Definition)
	assert.InDelta(t, 0.6, last.Similarity, 1e-9)

	tie := ScorePattern(mapOracle{}, "needless", phrasing)
	assert.Equal(t, "screen", tie.Definition)
}

func TestScorePattern_EmptyPhrasing(t *testing.T) {
	a := ScorePattern(mapOracle{}, "needless", nil)
	assert.Equal(t, "needless", a.Answer)
	assert.Equal(t, "", a.Definition)
	assert.Zero(t, a.Similarity)
}

func TestPatternAnswer_Derivations(t *testing.T) {
	a := Answer{Answer: "needless", Definition: "gratuitous", Similarity: 0.5}
	assert.Equal(t, "???", a.Derivation())
	assert.Equal(t, "I don't understand the wordplay for this clue, but NEEDLESS matches 'gratuitous' with confidence score 50.0%", a.LongDerivation())
	assert.Equal(t, "[needless 0.500 ???]", a.String())
}

func TestCollectSolutions(t *testing.T) {
	c1 := &fakeClue{definition: "spin"}
	c2 := &fakeClue{definition: "shingle"}
	answers := []Answer{
		{Answer: "english", Similarity: 0.4, Clue: c1},
		{Answer: "singles", Similarity: 0.6, Clue: c2},
		{Answer: "english", Similarity: 0.9, Clue: c2},
	}
	s := CollectSolutions(answers)

	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.Derivations("english"), 2)
	assert.Empty(t, s.Derivations("missing"))

	assert.Equal(t, []RankedAnswer{
		{Answer: "english", Similarity: 0.9},
		{Answer: "singles", Similarity: 0.6},
	}, s.SortedAnswers())
}
