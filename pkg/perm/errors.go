package perm

import (
	"errors"
	"fmt"
)

// Sentinel errors for the perm package.
var (
	// ErrConstruction is the parent of every error returned when a
	// permutation cannot be built from its input.
	ErrConstruction = errors.New("perm: invalid permutation")

	// ErrDegenerateCycle is returned for a cycle holding a single position.
	ErrDegenerateCycle = fmt.Errorf("%w: degenerate cycle", ErrConstruction)

	// ErrInvalidCycle is returned for negative or repeated positions.
	ErrInvalidCycle = fmt.Errorf("%w: invalid cycle", ErrConstruction)

	// ErrNotBijection is returned when a one-line array is not a bijection.
	ErrNotBijection = fmt.Errorf("%w: one-line array is not a bijection", ErrConstruction)
)
