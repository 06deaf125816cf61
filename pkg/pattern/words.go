package pattern

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Words is a set of candidate answers that all have the same number of letters once
// joiners are removed. Entries keep their joiners so the enumeration can still be checked.
//
// Filtering never mutates the receiver: it returns the receiver when nothing would be
// removed, and a new set otherwise.
type Words struct {
	numLetters int
	entries    []string
	letters    []string // entries with joiners removed, index-aligned
}

// MakeWords builds a set from entries. Entries whose dejoined length differs from
// numLetters are dropped.
func MakeWords(entries []string, numLetters int) *Words {
	w := &Words{numLetters: numLetters}
	for _, e := range entries {
		l := Dejoin(e)
		if len([]rune(l)) != numLetters {
			continue
		}
		w.entries = append(w.entries, e)
		w.letters = append(w.letters, l)
	}
	return w
}

func (w *Words) make(entries, letters []string) *Words {
	return &Words{numLetters: w.numLetters, entries: entries, letters: letters}
}

// Len returns the number of words in the set.
func (w *Words) Len() int {
	return len(w.entries)
}

func letterAt(word string, index int) rune {
	if index < len(word) {
		return rune(word[index])
	}
	// Non-ASCII words are rare enough to pay for the conversion.
	rs := []rune(word)
	if index < len(rs) {
		return rs[index]
	}
	return 0
}

// CharsAt returns the characters that appear at index across the set. Letters outside
// the CharSet range are left out.
func (w *Words) CharsAt(index int) CharSet {
	var c CharSet
	for _, word := range w.letters {
		c = c.With(letterAt(word, index))
		if c.IsFull() {
			break
		}
	}
	return c
}

// FilterAny filters the set to the words whose letter at index is in constraint.
func (w *Words) FilterAny(constraint CharSet, index int) *Words {
	if !slices.ContainsFunc(w.letters, func(word string) bool {
		return !constraint.Contains(letterAt(word, index))
	}) {
		return w
	}

	var entries, letters []string
	for idx, word := range w.letters {
		if constraint.Contains(letterAt(word, index)) {
			entries = append(entries, w.entries[idx])
			letters = append(letters, word)
		}
	}
	return w.make(entries, letters)
}

// Filter filters the set to the words holding exactly constraint at index.
func (w *Words) Filter(constraint rune, index int) *Words {
	if !slices.ContainsFunc(w.letters, func(word string) bool {
		return letterAt(word, index) != constraint
	}) {
		return w
	}

	var entries, letters []string
	for idx, word := range w.letters {
		if letterAt(word, index) == constraint {
			entries = append(entries, w.entries[idx])
			letters = append(letters, word)
		}
	}
	return w.make(entries, letters)
}

// FilterPattern applies every known cell of pattern. A pattern of the wrong length
// leaves nothing.
func (w *Words) FilterPattern(pattern string) *Words {
	if pattern == "" {
		return w
	}
	cells := []rune(pattern)
	if len(cells) != w.numLetters {
		return w.make(nil, nil)
	}
	out := w
	for i, c := range cells {
		if c == Wildcard {
			continue
		}
		out = out.Filter(c, i)
		if out.Len() == 0 {
			break
		}
	}
	return out
}

// Iterate returns a sequence of all words, joiners included.
func (w *Words) Iterate() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range w.entries {
			if !yield(word) {
				return
			}
		}
	}
}

func arrayStr(arr []string) string {
	const maxPrint = 3
	if len(arr) <= maxPrint {
		return fmt.Sprintf("[%s]", strings.Join(arr, ", "))
	}
	return fmt.Sprintf("[%s, ... +%d]", strings.Join(arr[:maxPrint], ", "), len(arr)-maxPrint)
}

func (w *Words) String() string {
	return fmt.Sprintf("Words(%d, %s)", w.numLetters, arrayStr(w.entries))
}
