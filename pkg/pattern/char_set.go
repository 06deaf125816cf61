package pattern

import (
	"math/bits"
	"strings"
)

// CharSet is a set of answer characters held in a single bitmask. It covers the
// joiner '_' through 'z'; anything else is never a member.
type CharSet uint32

const (
	minChar  = Joiner
	maxChar  = 'z'
	numChars = maxChar - minChar + 1
)

// FullCharSet holds every supported character.
const FullCharSet CharSet = 1<<numChars - 1

func bitOf(r rune) (CharSet, bool) {
	if r < minChar || r > maxChar {
		return 0, false
	}
	return 1 << uint(r-minChar), true
}

// Representable reports whether every character of s can be a CharSet member.
func Representable(s string) bool {
	for _, r := range s {
		if _, ok := bitOf(r); !ok {
			return false
		}
	}
	return true
}

// CharSetOf returns the set of supported characters in s.
func CharSetOf(s string) CharSet {
	var c CharSet
	for _, r := range s {
		c = c.With(r)
	}
	return c
}

// With returns c plus r. Unsupported characters leave c unchanged.
func (c CharSet) With(r rune) CharSet {
	b, _ := bitOf(r)
	return c | b
}

// Intersect returns the characters in both sets.
func (c CharSet) Intersect(other CharSet) CharSet {
	return c & other
}

// Contains reports whether r is in the set.
func (c CharSet) Contains(r rune) bool {
	b, ok := bitOf(r)
	return ok && c&b != 0
}

// ContainsAll reports whether every character of other is also in c.
func (c CharSet) ContainsAll(other CharSet) bool {
	return other&^c == 0
}

// Len returns the number of characters in the set.
func (c CharSet) Len() int {
	return bits.OnesCount32(uint32(c))
}

func (c CharSet) IsFull() bool {
	return c == FullCharSet
}

// String lists the members in order, e.g. "{_ a e}".
func (c CharSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for r := minChar; r <= maxChar; r++ {
		if !c.Contains(r) {
			continue
		}
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('}')
	return sb.String()
}
