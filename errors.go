package twisty

import "errors"

// Sentinel errors for the twisty package.
var (
	// ErrUnknownMove is returned when a move name is not registered in a
	// definition's move table.
	ErrUnknownMove = errors.New("twisty: unknown move")

	// ErrDefinition is returned when a definition's data is inconsistent,
	// e.g. a move sends a position outside the puzzle's position set.
	ErrDefinition = errors.New("twisty: invalid puzzle definition")

	// Registry errors
	ErrUnknownPuzzle = errors.New("twisty: unknown puzzle")
	ErrUnknownPreset = errors.New("twisty: unknown start preset")

	// Parsing errors
	ErrInvalidNotation = errors.New("twisty: invalid move notation")
)
