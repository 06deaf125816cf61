package clue

import "github.com/rotisserie/eris"

var (
	// ErrMalformedClue is returned when the raw clue text has no enumeration group or
	// the enumeration cannot be parsed.
	ErrMalformedClue = eris.New("malformed clue")

	// ErrClueUnsolvable is returned by Clue.Answers when a derivation yields nothing.
	ErrClueUnsolvable = eris.New("clue unsolvable")

	// ErrInvalidState is returned when the solver is driven out of order.
	ErrInvalidState = eris.New("invalid solver state")
)
