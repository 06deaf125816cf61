package pattern

import "strings"

// Fill is a candidate answer as it would sit in the grid: its letters with the joiner
// markers removed, and the words those letters form.
type Fill struct {
	Letters []rune
	Words   []string
}

// SplitFill splits word on the joiner marker.
func SplitFill(word string) Fill {
	words := strings.Split(word, string(Joiner))
	return Fill{
		Letters: []rune(strings.Join(words, "")),
		Words:   words,
	}
}

// Length returns the number of letters in the fill.
func (f *Fill) Length() int {
	return len(f.Letters)
}

// Lengths returns the length of each word of the fill, in order.
func (f *Fill) Lengths() []int {
	lengths := make([]int, len(f.Words))
	for i, w := range f.Words {
		lengths[i] = len([]rune(w))
	}
	return lengths
}
