package clue

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoKnownAnswer(t *testing.T) {
	c, err := Parse("spin broken shingle (7) | ")
	require.NoError(t, err)
	assert.Equal(t, []string{"spin", "broken", "shingle"}, c.Phrases)
	assert.Equal(t, []int{7}, c.Lengths)
	assert.Equal(t, "", c.Pattern)
	assert.Equal(t, "", c.KnownAnswer)
}

func TestParse_PatternAndKnownAnswer(t *testing.T) {
	c, err := Parse("needless thing on top of screen (8) n....... | NEEDLESS")
	require.NoError(t, err)
	assert.Equal(t, []string{"needless", "thing", "on", "top", "of", "screen"}, c.Phrases)
	assert.Equal(t, []int{8}, c.Lengths)
	assert.Equal(t, "n.......", c.Pattern)
	assert.Equal(t, "needless", c.KnownAnswer)
}

func TestParse_SeparatorAppended(t *testing.T) {
	c, err := Parse("Sink graduate with sin (5)")
	require.NoError(t, err)
	assert.Equal(t, []string{"sink", "graduate", "with", "sin"}, c.Phrases)
	assert.Equal(t, []int{5}, c.Lengths)
	assert.Equal(t, "", c.Pattern)
	assert.Equal(t, "", c.KnownAnswer)
}

func TestParse_HyphenatedLengthsAndPhrases(t *testing.T) {
	c, err := Parse("Be aware of nerd's flip-flop (3-4) k...... | ")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"be", "aware", "of", "nerds", "flip_flop"}, c.Phrases); diff != "" {
		t.Errorf("phrases mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{3, 4}, c.Lengths)
	assert.Equal(t, "k......", c.Pattern)
}

func TestParse_PunctuationAndStrayJoiners(t *testing.T) {
	c, err := Parse("Bottomless sea, stormy sea - waters' surface rises_and_falls (7) s.es...")
	require.NoError(t, err)
	assert.Equal(t, []string{"bottomless", "sea", "stormy", "sea", "waters", "surface", "rises_and_falls"}, c.Phrases)
	assert.Equal(t, "s.es...", c.Pattern)
}

func TestParse_LastParenthesisWins(t *testing.T) {
	c, err := Parse("Note (in brief) hidden (4)")
	require.NoError(t, err)
	assert.Equal(t, []string{"note", "in", "brief", "hidden"}, c.Phrases)
	assert.Equal(t, []int{4}, c.Lengths)
}

func TestParse_Malformed(t *testing.T) {
	for _, raw := range []string{
		"no length group here",
		"bad lengths (x)",
		"zero length (0)",
		"empty lengths ()",
		"negative (-3)",
		"unterminated (5",
		"two closers (5)) a",
		"two separators (5) a | b | c",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrMalformedClue), "got %v", err)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	cases := []struct {
		lengths []int
		pattern string
	}{
		{[]int{7}, ""},
		{[]int{8}, "n......."},
		{[]int{3, 4}, "..e...."},
		{[]int{1, 2, 3}, "......"},
	}
	for _, tc := range cases {
		enum := strings.Trim(strings.Join(strings.Fields(fmt.Sprint(tc.lengths)), ","), "[]")
		raw := fmt.Sprintf("x (%s) %s | ", enum, tc.pattern)
		c, err := Parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, tc.lengths, c.Lengths, raw)
		assert.Equal(t, strings.TrimSpace(tc.pattern), c.Pattern, raw)
	}
}

func TestConstraints_WithPhrases(t *testing.T) {
	c := Constraints{Phrases: []string{"a", "b"}, Lengths: []int{3}, Pattern: "..."}
	p := []string{"a_b"}
	d := c.WithPhrases(p)
	p[0] = "changed"

	assert.Equal(t, []string{"a_b"}, d.Phrases)
	assert.Equal(t, []string{"a", "b"}, c.Phrases)
	assert.Equal(t, c.Lengths, d.Lengths)
	assert.Equal(t, c.Pattern, d.Pattern)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "caf?", NormalizeAnswer("caf\u00e9"))
	assert.Equal(t, "a?b", NormalizeAnswer("a中b"))
	assert.Equal(t, "ice_cream", NormalizeAnswer("ice_cream"))
	assert.Equal(t, "ab", NormalizeText("a中b"))
	assert.Equal(t, "nave", NormalizeText("na\u00efve"))
	assert.Equal(t, "Spn", NormalizeText("Sp\u00edn"))
}
