package clue

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"crosswarped.com/cryptics/pkg/pattern"
)

// Constraints is everything known about a clue before solving it.
type Constraints struct {
	// Phrases is the clue text split into words; joined phrases use pattern.Joiner.
	Phrases []string
	// Lengths is the enumeration, one entry per answer word.
	Lengths []int
	// Pattern holds the known letters, pattern.Wildcard for unknown cells.
	Pattern string
	// KnownAnswer is the answer the user already believes in. It is advisory only.
	KnownAnswer string
}

// WithPhrases returns a copy of c solving the given phrasing instead.
func (c Constraints) WithPhrases(phrases []string) Constraints {
	c.Phrases = slices.Clone(phrases)
	c.Lengths = slices.Clone(c.Lengths)
	return c
}

var (
	nonPhraseChars = regexp.MustCompile(`[^a-zA-Z0-9_ ]`)
	repeatedSpaces = regexp.MustCompile(` +`)
)

// Parse splits raw clue text of the form
//
//	<clue text> (<lengths>) <pattern> | <known answer>
//
// into Constraints. Lengths are separated by commas or hyphens; the known answer
// suffix is optional. The enumeration is taken from the last parenthesised group.
func Parse(raw string) (Constraints, error) {
	text := raw
	if !strings.Contains(text, "|") {
		text += " |"
	}
	text = strings.ToLower(text)

	open := strings.LastIndex(text, "(")
	if open < 0 {
		return Constraints{}, eris.Wrapf(ErrMalformedClue, "clue: no enumeration in %q", raw)
	}
	body, rest := text[:open], text[open+1:]

	enumeration, tail, ok := strings.Cut(rest, ")")
	if !ok || strings.Contains(tail, ")") {
		return Constraints{}, eris.Wrapf(ErrMalformedClue, "clue: unterminated enumeration in %q", raw)
	}
	lengths, err := parseLengths(enumeration)
	if err != nil {
		return Constraints{}, eris.Wrapf(err, "clue: parse %q", raw)
	}

	pat, known, _ := strings.Cut(tail, "|")
	if strings.Contains(known, "|") {
		return Constraints{}, eris.Wrapf(ErrMalformedClue, "clue: more than one answer separator in %q", raw)
	}

	return Constraints{
		Phrases:     splitPhrases(body),
		Lengths:     lengths,
		Pattern:     strings.TrimSpace(pat),
		KnownAnswer: strings.TrimSpace(known),
	}, nil
}

func parseLengths(enumeration string) ([]int, error) {
	fields := strings.Split(strings.ReplaceAll(enumeration, "-", ","), ",")
	lengths := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n <= 0 {
			return nil, eris.Wrapf(ErrMalformedClue, "bad length %q", f)
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}

func splitPhrases(body string) []string {
	body = strings.ReplaceAll(body, "-", string(pattern.Joiner))
	body = nonPhraseChars.ReplaceAllString(body, "")
	body = repeatedSpaces.ReplaceAllString(body, " ")

	var phrases []string
	for _, p := range strings.Split(body, " ") {
		p = strings.TrimSpace(p)
		if p == "" || p == string(pattern.Joiner) {
			continue
		}
		phrases = append(phrases, p)
	}
	return phrases
}
