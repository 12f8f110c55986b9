package twisty

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

// TetrahedronInflated3x3 is a tetrahedron with three layers per face, f r d
// and l, each showing 6 facelets:
//
//	   1
//	  2 3
//	 4 5 6
type TetrahedronInflated3x3 struct {
	moves *MoveTable
}

var tetrahedronMoves = sync.OnceValue(func() *MoveTable {
	generators := []perm.Permutation{
		perm.MustFromCycles("f", [][]int{{1, 6, 4}, {2, 3, 5}, {24, 34, 44}, {26, 36, 46}, {25, 35, 45}}),
		perm.MustFromCycles("l", [][]int{{41, 46, 44}, {42, 43, 45}, {1, 36, 21}, {2, 33, 22}, {4, 31, 24}}),
		perm.MustFromCycles("r", [][]int{{21, 26, 24}, {22, 23, 25}, {6, 46, 31}, {3, 43, 32}, {1, 41, 34}}),
		perm.MustFromCycles("d", [][]int{{31, 36, 34}, {32, 33, 35}, {4, 26, 41}, {5, 23, 42}, {6, 21, 44}}),
	}

	return mustMoveTable(withTechniques(generators, nil)...)
})

var tetrahedronColors = map[string]Color{
	"f": Red,
	"r": Green,
	"d": Yellow,
	"l": Blue,
}

// NewTetrahedronInflated3x3 creates the tetrahedron definition. Only
// PresetSolved is supported.
func NewTetrahedronInflated3x3(opts ...DefinitionOption) (*TetrahedronInflated3x3, error) {
	cfg := newDefinitionConfig(opts)
	if cfg.startPreset != PresetSolved {
		return nil, fmt.Errorf("%w: %s has no preset %q", ErrUnknownPreset, TetrahedronName, cfg.startPreset)
	}
	return &TetrahedronInflated3x3{moves: tetrahedronMoves()}, nil
}

func (t *TetrahedronInflated3x3) Name() string {
	return TetrahedronName
}

func (t *TetrahedronInflated3x3) SolvedState() State {
	return tetrahedronSolved()
}

func (t *TetrahedronInflated3x3) StartState() State {
	return tetrahedronSolved()
}

func (t *TetrahedronInflated3x3) Permutation(name string) (perm.Permutation, error) {
	return t.moves.Lookup(name)
}

func (t *TetrahedronInflated3x3) MoveNames() []string {
	return t.moves.Names()
}

func (t *TetrahedronInflated3x3) FaceName(label int) string {
	return DefaultFaceName(label)
}

func (t *TetrahedronInflated3x3) Color(face string) Color {
	if c, ok := tetrahedronColors[face]; ok {
		return c
	}
	return Grey
}

// Render draws f in the middle with l and r folded out to its sides and d
// below.
func (t *TetrahedronInflated3x3) Render(r *lipgloss.Renderer, f Frame) string {
	p := newPainter(r, t, f)

	var b strings.Builder
	b.WriteString(p.header())
	b.WriteString("\n")
	b.WriteString(`  \---------------------//------\\---------------------/` + "\n")
	fmt.Fprintf(&b, `   \  %s /  %s  /  %s  //   %s   \\  %s  \  %s  \ %s  /`+"\n", p.cells(41, 43, 46, 1, 24, 22, 21)...)
	b.WriteString(`    \   /  L   /      //----------\\      \   R  \   /` + "\n")
	fmt.Fprintf(&b, `     \ /      /      // %s   F  %s \\      \      \ /`+"\n", p.cells(2, 3)...)
	fmt.Fprintf(&b, `      \  %s  /  %s  //--------------\\  %s  \  %s  /`+"\n", p.cells(42, 45, 25, 23)...)
	fmt.Fprintf(&b, `       \    /      // %s    %s    %s \\      \    /`+"\n", p.cells(4, 5, 6)...)
	fmt.Fprintf(&b, `        \  /  %s  //                  \\  %s  \  /`+"\n", p.cells(44, 26)...)
	b.WriteString(`         \/      //====================\\      \/` + "\n")
	b.WriteString(`                 \                     /` + "\n")
	fmt.Fprintf(&b, `                  \   %s    %s    %s  /`+"\n", p.cells(36, 35, 34)...)
	b.WriteString(`                   \  -------------- /` + "\n")
	fmt.Fprintf(&b, `                    \   %s   D  %s  /`+"\n", p.cells(33, 32)...)
	b.WriteString(`                     \   --------  /` + "\n")
	fmt.Fprintf(&b, `                      \     %s    /`+"\n", p.cells(31)...)
	b.WriteString(`                       \  -----  /` + "\n")
	b.WriteString(p.banner())

	return b.String()
}

func tetrahedronSolved() State {
	return IdentityState(facePositions([]int{0, 2, 3, 4}, 6)...)
}
