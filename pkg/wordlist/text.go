package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Parse reads a list in text form. Each line holds a word, optionally followed by a
// colon and comma-separated synonyms:
//
//	english: spin, british
//	needless
//
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) (*List, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, rest, hasSynonyms := strings.Cut(text, ":")
		if strings.TrimSpace(word) == "" {
			return nil, eris.Errorf("wordlist: line %d: missing word", line)
		}
		if !hasSynonyms {
			b.Add(word)
			continue
		}
		b.Add(word, strings.Split(rest, ",")...)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrap(err, "wordlist: read")
	}
	return b.Build(), nil
}

// LoadFile reads a text list from path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "wordlist: open %s", path)
	}
	defer f.Close()
	return Parse(f)
}
