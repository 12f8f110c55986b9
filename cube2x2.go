package twisty

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

// Cube2x2 is the 2x2x2 cube: 6 faces of 4 facelets. Each face numbers its
// facelets clockwise from the top left:
//
//	1 2
//	4 3
type Cube2x2 struct {
	moves *MoveTable
	start State
}

// Technique is a named move sequence composed into a single move.
type Technique struct {
	Name     string
	Sequence []string
}

// Cube2x2Techniques lists the derived moves of the 2x2 cube. Each left
// technique mirrors the right one through the plane between l and r.
var Cube2x2Techniques = []Technique{
	{"a_tech_right", []string{"f", "di", "fi", "di", "ri", "d", "r"}},
	{"b_tech_right", []string{"f", "di", "fi", "di", "di", "ri", "d", "d", "r"}},
	{"c_tech_right", []string{"di", "fi", "d", "fi", "di", "f", "f", "d"}},
	{"d_tech_right", []string{"di", "fi", "fi", "d", "f", "di", "f", "d"}},
	{"a_tech_left", []string{"fi", "d", "f", "d", "l", "di", "li"}},
	{"b_tech_left", []string{"fi", "d", "f", "d", "d", "l", "di", "di", "li"}},
	{"c_tech_left", []string{"d", "f", "di", "f", "d", "fi", "fi", "di"}},
	{"d_tech_left", []string{"d", "f", "f", "di", "fi", "d", "fi", "di"}},
}

// cube2x2Moves is shared by every Cube2x2; it is never modified.
var cube2x2Moves = sync.OnceValue(func() *MoveTable {
	generators := []perm.Permutation{
		perm.MustFromCycles("f", [][]int{{1, 4, 3, 2}, {13, 42, 31, 24}, {14, 43, 32, 21}}),
		perm.MustFromCycles("u", [][]int{{1, 21, 51, 41}, {2, 22, 52, 42}, {11, 14, 13, 12}}),
		perm.MustFromCycles("r", [][]int{{2, 32, 54, 12}, {3, 33, 51, 13}, {21, 24, 23, 22}}),
		perm.MustFromCycles("d", [][]int{{3, 43, 53, 23}, {4, 44, 54, 24}, {31, 34, 33, 32}}),
		perm.MustFromCycles("l", [][]int{{1, 11, 53, 31}, {4, 14, 52, 34}, {41, 44, 43, 42}}),
		perm.MustFromCycles("b", [][]int{{11, 22, 33, 44}, {12, 23, 34, 41}, {51, 54, 53, 52}}),
	}

	return mustMoveTable(withTechniques(generators, Cube2x2Techniques)...)
})

// withTechniques returns the identity, the generators, their inverses and
// the composed techniques, in that order.
func withTechniques(generators []perm.Permutation, techniques []Technique) []perm.Permutation {
	byName := make(map[string]perm.Permutation, 2*len(generators))
	moves := []perm.Permutation{perm.Identity()}

	for _, g := range generators {
		byName[g.Label()] = g
		moves = append(moves, g)
	}
	for _, g := range generators {
		inv := g.Inverse()
		byName[inv.Label()] = inv
		moves = append(moves, inv)
	}

	for _, tech := range techniques {
		sequence := make([]perm.Permutation, len(tech.Sequence))
		for i, name := range tech.Sequence {
			m, ok := byName[name]
			if !ok {
				panic(fmt.Sprintf("twisty: technique %s uses unknown move %q", tech.Name, name))
			}
			sequence[i] = m
		}
		moves = append(moves, perm.Composition(tech.Name, sequence...))
	}

	return moves
}

// NewCube2x2 creates the 2x2 cube definition. Supported start presets are
// PresetSolved, PresetDiagonalFixed and PresetFlippedCorners.
func NewCube2x2(opts ...DefinitionOption) (*Cube2x2, error) {
	cfg := newDefinitionConfig(opts)

	var start State
	switch cfg.startPreset {
	case PresetSolved:
		start = cube2x2Solved()
	case PresetDiagonalFixed:
		start = cube2x2DiagonalFixed()
	case PresetFlippedCorners:
		start = cube2x2FlippedCorners()
	default:
		return nil, fmt.Errorf("%w: %s has no preset %q", ErrUnknownPreset, Cube2x2Name, cfg.startPreset)
	}

	return &Cube2x2{moves: cube2x2Moves(), start: start}, nil
}

func (c *Cube2x2) Name() string {
	return Cube2x2Name
}

func (c *Cube2x2) SolvedState() State {
	return cube2x2Solved()
}

func (c *Cube2x2) StartState() State {
	return c.start.Clone()
}

func (c *Cube2x2) Permutation(name string) (perm.Permutation, error) {
	return c.moves.Lookup(name)
}

func (c *Cube2x2) MoveNames() []string {
	return c.moves.Names()
}

func (c *Cube2x2) FaceName(label int) string {
	return DefaultFaceName(label)
}

func (c *Cube2x2) Color(face string) Color {
	return DefaultColor(face)
}

// Render draws the cube as an unfolded net with u on top and d below f.
func (c *Cube2x2) Render(r *lipgloss.Renderer, f Frame) string {
	p := newPainter(r, c, f)

	var b strings.Builder
	b.WriteString(p.header())
	b.WriteString("          +----+----+\n")
	fmt.Fprintf(&b, "          | %s | %s |\n", p.cells(11, 12)...)
	b.WriteString("          +--- u ---+\n")
	fmt.Fprintf(&b, "          | %s | %s |\n", p.cells(14, 13)...)
	b.WriteString("+----+----+----+----+----+----+----+----+\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n", p.cells(41, 42, 1, 2, 21, 22, 51, 52)...)
	b.WriteString("+--- l ---+--- f ---+--- r ---+--- b ---+\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n", p.cells(44, 43, 4, 3, 24, 23, 54, 53)...)
	b.WriteString("+----+----+----+----+----+----+----+----+\n")
	fmt.Fprintf(&b, "          | %s | %s |\n", p.cells(31, 32)...)
	b.WriteString("          +--- d ---+\n")
	fmt.Fprintf(&b, "          | %s | %s |\n", p.cells(34, 33)...)
	b.WriteString("          +----+----+\n")
	b.WriteString(p.banner())

	return b.String()
}

func cube2x2Solved() State {
	return IdentityState(facePositions([]int{0, 1, 2, 3, 4, 5}, 4)...)
}

// cube2x2DiagonalFixed has the two diagonal corners of d twisted in place.
func cube2x2DiagonalFixed() State {
	return State{
		// f
		1: 1, 2: 2, 3: 32, 4: 4,
		// u
		11: 11, 12: 12, 13: 13, 14: 14,
		// r
		21: 21, 22: 22, 23: 23, 24: 3,
		// d
		31: 31, 32: 24, 33: 33, 34: 53,
		// l
		41: 41, 42: 42, 43: 43, 44: 34,
		// b
		51: 51, 52: 52, 53: 44, 54: 54,
	}
}

// cube2x2FlippedCorners has the two right bottom corners exchanged.
func cube2x2FlippedCorners() State {
	return State{
		// f
		1: 1, 2: 2, 3: 54, 4: 4,
		// u
		11: 11, 12: 12, 13: 13, 14: 14,
		// r
		21: 21, 22: 22, 23: 32, 24: 33,
		// d
		31: 31, 32: 23, 33: 24, 34: 34,
		// l
		41: 41, 42: 42, 43: 43, 44: 44,
		// b
		51: 51, 52: 52, 53: 53, 54: 3,
	}
}
