// Package phrasing generates the alternative groupings of a clue's words that the
// wordplay resolver is asked to interpret.
package phrasing

import (
	"slices"
	"strings"

	"crosswarped.com/cryptics/pkg/pattern"
)

// DefaultMaxRun is the longest run of words joined into one phrase by default.
const DefaultMaxRun = 3

// Expander joins adjacent phrases into longer ones.
type Expander struct {
	// MaxRun caps how many phrases may be joined together. Values below 1 mean
	// DefaultMaxRun.
	MaxRun int
}

// New creates an Expander joining at most maxRun phrases.
func New(maxRun int) *Expander {
	return &Expander{MaxRun: maxRun}
}

// Expand returns every grouping of phrases into contiguous runs of at most MaxRun,
// joined with pattern.Joiner. The identity grouping always comes first, and
// groupings with shorter leading runs come before longer ones.
func (e *Expander) Expand(phrases []string) [][]string {
	maxRun := e.MaxRun
	if maxRun < 1 {
		maxRun = DefaultMaxRun
	}

	var out [][]string
	var walk func(start int, acc []string)
	walk = func(start int, acc []string) {
		if start == len(phrases) {
			out = append(out, slices.Clone(acc))
			return
		}
		for run := 1; run <= maxRun && start+run <= len(phrases); run++ {
			joined := strings.Join(phrases[start:start+run], string(pattern.Joiner))
			walk(start+run, append(acc, joined))
		}
	}
	walk(0, make([]string, 0, len(phrases)))
	return out
}
