package wordplay

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"crosswarped.com/cryptics/pkg/clue"
	"crosswarped.com/cryptics/pkg/pattern"
)

type kind int

const (
	anagram kind = iota
	hidden
)

func (k kind) String() string {
	if k == hidden {
		return "hidden word"
	}
	return "anagram"
}

// label names the indicator subtree the way the grammar does: "ana_" or "hid_".
func (k kind) label() string {
	if k == hidden {
		return "hid_"
	}
	return "ana_"
}

// derivation is a clue.Clue whose answers are worked out on first use.
type derivation struct {
	kind    kind
	reading reading
	lengths []int
	pattern string
	lexicon Lexicon

	once    sync.Once
	answers []string
	err     error
}

func newDerivation(k kind, r reading, c clue.Constraints, lexicon Lexicon) *derivation {
	return &derivation{
		kind:    k,
		reading: r,
		lengths: slices.Clone(c.Lengths),
		pattern: c.Pattern,
		lexicon: lexicon,
	}
}

func (d *derivation) Subtrees() []clue.Subtree {
	trees := make([]clue.Subtree, 0, len(d.reading.order))
	for _, r := range d.reading.order {
		switch r {
		case roleDefinition:
			trees = append(trees, clue.Subtree{Label: clue.DefinitionLabel, Phrases: []string{d.reading.definition}})
		case roleIndicator:
			trees = append(trees, clue.Subtree{Label: d.kind.label(), Phrases: []string{d.reading.indicator}})
		case roleFodder:
			trees = append(trees, clue.Subtree{Label: "sub", Phrases: slices.Clone(d.reading.fodder)})
		}
	}
	return trees
}

func (d *derivation) Answers() ([]string, error) {
	d.once.Do(func() {
		switch d.kind {
		case anagram:
			d.answers = d.anagrams()
		case hidden:
			d.answers = d.hiddenWords()
		}
		if len(d.answers) == 0 {
			d.err = eris.Wrapf(clue.ErrClueUnsolvable, "wordplay: no %s of %q", d.kind, d.fodderText())
		}
	})
	return slices.Clone(d.answers), d.err
}

func (d *derivation) fodderText() string {
	return strings.Join(d.reading.fodder, " ")
}

func (d *derivation) fodderLetters() string {
	return pattern.Dejoin(strings.Join(d.reading.fodder, ""))
}

func sortLetters(s string) string {
	rs := []rune(s)
	slices.Sort(rs)
	return string(rs)
}

func (d *derivation) anagrams() []string {
	letters := d.fodderLetters()
	n := pattern.Total(d.lengths)
	if len([]rune(letters)) != n {
		return nil
	}

	candidates := d.lexicon.Bucket(n).FilterPattern(d.pattern)
	if pattern.Representable(letters) {
		// Every anagram is spelled from available, one letter per position.
		available := pattern.CharSetOf(letters)
		for i := 0; i < n && candidates.Len() > 0; i++ {
			at := candidates.CharsAt(i)
			if at.Intersect(available) == 0 {
				return nil
			}
			if !available.ContainsAll(at) {
				candidates = candidates.FilterAny(available, i)
			}
		}
	}
	zap.L().Debug("wordplay: anagram candidates",
		zap.String("fodder", d.fodderText()),
		zap.Stringer("candidates", candidates),
	)

	key := sortLetters(letters)
	var out []string
	for w := range candidates.Iterate() {
		l := pattern.Dejoin(w)
		if l == letters || sortLetters(l) != key {
			continue
		}
		if pattern.Fits(w, d.pattern, d.lengths) {
			out = append(out, w)
		}
	}
	return out
}

func (d *derivation) hiddenWords() []string {
	letters := []rune(d.fodderLetters())
	n := pattern.Total(d.lengths)
	if n <= 0 || len(letters) <= n {
		return nil
	}

	var out []string
	for start := 0; start+n <= len(letters); start++ {
		for _, w := range d.lexicon.Lookup(string(letters[start : start+n])) {
			if slices.Contains(d.reading.fodder, w) || slices.Contains(out, w) {
				continue
			}
			if pattern.Fits(w, d.pattern, d.lengths) {
				out = append(out, w)
			}
		}
	}
	return out
}

func (d *derivation) Derivation(answer string) string {
	return fmt.Sprintf("%s of '%s' (%s) gives %s, defined by '%s'",
		d.kind, d.fodderText(), d.reading.indicator, strings.ToUpper(answer), d.reading.definition)
}

func (d *derivation) LongDerivation(answer string, similarity float64) string {
	return fmt.Sprintf("'%s' is the definition. '%s' indicates %s %s of '%s', which gives %s. %s matches '%s' with confidence score %.1f%%.",
		d.reading.definition, d.reading.indicator, article(d.kind), d.kind, d.fodderText(),
		strings.ToUpper(answer), strings.ToUpper(answer), d.reading.definition, similarity*100)
}

func article(k kind) string {
	if k == anagram {
		return "an"
	}
	return "a"
}
