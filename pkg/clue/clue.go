// Package clue solves cryptic crossword clues: it parses the raw clue text into
// constraints, tries every phrasing of the clue against a wordplay resolver, scores the
// answers it yields by how well they match the definition, and ranks the results.
//
// The grammar engine, the phrasing generator, the similarity oracle and the word list
// are collaborators passed in through the interfaces below.
package clue

import "iter"

// DefinitionLabel labels the definition subtree of a Clue.
const DefinitionLabel = "d"

// Subtree is one labeled part of a wordplay derivation, such as the definition, an
// indicator, or the fodder it acts on.
type Subtree struct {
	Label   string
	Phrases []string
}

// Clue is one wordplay interpretation of a phrasing.
type Clue interface {
	// Subtrees returns the labeled parts of the derivation in clue order. Exactly one
	// is labeled DefinitionLabel.
	Subtrees() []Subtree

	// Answers returns the literal answers the derivation yields. It returns an error
	// wrapping ErrClueUnsolvable when the derivation cannot be completed.
	Answers() ([]string, error)

	// Derivation renders a one-line explanation of how the clue yields answer.
	Derivation(answer string) string

	// LongDerivation renders a full sentence explanation including the confidence.
	LongDerivation(answer string, similarity float64) string
}

// Expander yields the phrasings to try for a clue. The first phrasing is the identity.
type Expander interface {
	Expand(phrases []string) [][]string
}

// Resolver enumerates the wordplay interpretations of one phrasing.
type Resolver interface {
	Resolve(c Constraints) []Clue
}

// Oracle scores how well answer matches a definition fragment, in [0,1].
type Oracle interface {
	Similarity(answer, definition string) float64
}

// WordList provides the candidate words scanned when the wordplay yields nothing.
type WordList interface {
	All() iter.Seq[string]
}
