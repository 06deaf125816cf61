// Package wordlist holds the synonym list the solver draws candidate answers from,
// and loads it from text files, SQLite, or Postgres.
package wordlist

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"crosswarped.com/cryptics/pkg/pattern"
)

// List is an immutable set of words with a symmetric synonym relation. It is safe for
// concurrent use.
type List struct {
	synonyms  map[string][]string
	words     []string
	byLetters map[string][]string
	buckets   map[int]*pattern.Words
}

var separators = strings.NewReplacer(" ", string(pattern.Joiner), "-", string(pattern.Joiner))

// Normalize lower-cases word and joins its parts with pattern.Joiner.
func Normalize(word string) string {
	return separators.Replace(strings.Join(strings.Fields(strings.ToLower(word)), " "))
}

// Builder accumulates words and synonym pairs.
type Builder struct {
	synonyms map[string]map[string]struct{}
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{synonyms: make(map[string]map[string]struct{})}
}

func (b *Builder) word(w string) map[string]struct{} {
	set, ok := b.synonyms[w]
	if !ok {
		set = make(map[string]struct{})
		b.synonyms[w] = set
	}
	return set
}

// Add records word and makes it a synonym of each of synonyms, in both directions.
// Empty entries are ignored.
func (b *Builder) Add(word string, synonyms ...string) {
	w := Normalize(word)
	if w == "" {
		return
	}
	set := b.word(w)
	for _, s := range synonyms {
		s = Normalize(s)
		if s == "" || s == w {
			continue
		}
		set[s] = struct{}{}
		b.word(s)[w] = struct{}{}
	}
}

// Build freezes the builder into a List.
func (b *Builder) Build() *List {
	l := &List{
		synonyms:  make(map[string][]string, len(b.synonyms)),
		byLetters: make(map[string][]string),
		buckets:   make(map[int]*pattern.Words),
	}
	l.words = slices.Sorted(maps.Keys(b.synonyms))

	byLength := make(map[int][]string)
	for _, w := range l.words {
		l.synonyms[w] = slices.Sorted(maps.Keys(b.synonyms[w]))
		letters := pattern.Dejoin(w)
		l.byLetters[letters] = append(l.byLetters[letters], w)
		n := len([]rune(letters))
		byLength[n] = append(byLength[n], w)
	}
	for n, words := range byLength {
		l.buckets[n] = pattern.MakeWords(words, n)
	}
	return l
}

// All yields every word in sorted order.
func (l *List) All() iter.Seq[string] {
	return slices.Values(l.words)
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}

// Contains reports whether word is listed.
func (l *List) Contains(word string) bool {
	_, ok := l.synonyms[Normalize(word)]
	return ok
}

// Synonyms returns the synonyms of word, sorted.
func (l *List) Synonyms(word string) []string {
	return slices.Clone(l.synonyms[Normalize(word)])
}

// Lookup returns the words spelled by letters once joiners are removed, e.g.
// "icecream" finds both "icecream" and "ice_cream".
func (l *List) Lookup(letters string) []string {
	return slices.Clone(l.byLetters[letters])
}

// Bucket returns the words with exactly n letters.
func (l *List) Bucket(n int) *pattern.Words {
	if b, ok := l.buckets[n]; ok {
		return b
	}
	return pattern.MakeWords(nil, n)
}
