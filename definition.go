package twisty

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

// Definition describes one puzzle variant: its positions, its start and
// solved states, its legal moves and how its faces are named and drawn.
//
// Implementations build their move table once and never change it, so a
// Definition may be shared between puzzles and goroutines.
type Definition interface {
	// Name identifies the variant, e.g. "cube2x2".
	Name() string

	// SolvedState returns a fresh copy of the solved facelet map.
	SolvedState() State

	// StartState returns a fresh copy of the state new puzzles start from.
	// It may differ from the solved state.
	StartState() State

	// Permutation returns the move registered under name, or an error
	// wrapping ErrUnknownMove. It never falls back to the identity.
	Permutation(name string) (perm.Permutation, error)

	// MoveNames returns the registered move names in registration order.
	MoveNames() []string

	// FaceName returns the face a facelet label belongs to.
	FaceName(label int) string

	// Color returns the display color of a face.
	Color(face string) Color

	// Render draws the puzzle for a terminal.
	Render(r *lipgloss.Renderer, f Frame) string
}

// Frame is the read-only view of a puzzle handed to a renderer.
type Frame struct {
	Applied perm.Permutation
	Before  State
	Current State
	Solved  State
}

// Facelet returns the facelet label at pos.
func (f Frame) Facelet(pos int) (int, bool) {
	facelet, ok := f.Current[pos]
	return facelet, ok
}

// Changed reports whether the facelet at pos moved on the last rotation.
func (f Frame) Changed(pos int) bool {
	return f.Current[pos] != f.Before[pos]
}

// JustSolved reports whether the last rotation solved the puzzle.
func (f Frame) JustSolved() bool {
	return f.Current.Equal(f.Solved) && !f.Current.Equal(f.Before)
}

// MoveTable is an immutable set of named moves.
type MoveTable struct {
	moves map[string]perm.Permutation
	names []string
}

// NewMoveTable registers each move under its label. Duplicate labels are
// rejected with ErrDefinition.
func NewMoveTable(moves ...perm.Permutation) (*MoveTable, error) {
	t := &MoveTable{
		moves: make(map[string]perm.Permutation, len(moves)),
		names: make([]string, 0, len(moves)),
	}
	for _, m := range moves {
		if _, dup := t.moves[m.Label()]; dup {
			return nil, fmt.Errorf("%w: move %q registered twice", ErrDefinition, m.Label())
		}
		t.moves[m.Label()] = m
		t.names = append(t.names, m.Label())
	}
	return t, nil
}

func mustMoveTable(moves ...perm.Permutation) *MoveTable {
	t, err := NewMoveTable(moves...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the move registered under name.
func (t *MoveTable) Lookup(name string) (perm.Permutation, error) {
	m, ok := t.moves[name]
	if !ok {
		return perm.Permutation{}, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return m, nil
}

// Names returns the registered names in registration order.
func (t *MoveTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of registered moves.
func (t *MoveTable) Len() int {
	return len(t.names)
}

// Variant names accepted by Lookup.
const (
	Cube2x2Name     = "cube2x2"
	TetrahedronName = "tetrahedron3x3"
)

// Start presets. PresetSolved is supported by every definition.
const (
	PresetSolved         = "solved"
	PresetDiagonalFixed  = "diagonal-fixed"
	PresetFlippedCorners = "flipped-corners"
)

var registry = map[string]func(opts ...DefinitionOption) (Definition, error){
	Cube2x2Name: func(opts ...DefinitionOption) (Definition, error) {
		d, err := NewCube2x2(opts...)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
	TetrahedronName: func(opts ...DefinitionOption) (Definition, error) {
		d, err := NewTetrahedronInflated3x3(opts...)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
}

// Variants returns the names accepted by Lookup, sorted.
func Variants() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup constructs the definition registered under name.
func Lookup(name string, opts ...DefinitionOption) (Definition, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPuzzle, name)
	}
	return build(opts...)
}
