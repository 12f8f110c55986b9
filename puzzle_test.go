package twisty

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

func newCube(t *testing.T, opts ...Option) *Puzzle {
	t.Helper()
	def, err := NewCube2x2()
	require.NoError(t, err)
	p, err := New(def, opts...)
	require.NoError(t, err)
	return p
}

func TestNewPuzzleIsSolved(t *testing.T) {
	p := newCube(t)

	assert.True(t, p.IsSolved())
	assert.Equal(t, "id", p.AppliedLabel())
	assert.True(t, p.Applied().IsIdentity())
	assert.Empty(t, p.Moves())
	assert.Len(t, p.Positions(), 24)
	assert.True(t, p.Current().Equal(p.Solved()))
}

func TestRotate_F(t *testing.T) {
	p := newCube(t)
	require.NoError(t, p.Rotate("f"))

	facelet, ok := p.FaceletAt(1)
	require.True(t, ok)
	assert.Equal(t, 4, facelet)
	assert.False(t, p.IsSolved())
	assert.Equal(t, "id * f", p.AppliedLabel())
	assert.Equal(t, []string{"f"}, p.Moves())

	var changed []int
	for _, pos := range p.Positions() {
		if p.Changed(pos) {
			changed = append(changed, pos)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 13, 14, 21, 24, 31, 32, 42, 43}, changed)
}

func TestRotate_FourQuarterTurnsSolve(t *testing.T) {
	for _, name := range []string{"f", "u", "r", "d", "l", "b", "fi", "ui", "ri", "di", "li", "bi"} {
		t.Run(name, func(t *testing.T) {
			p := newCube(t)
			for i := 1; i <= 3; i++ {
				require.NoError(t, p.Rotate(name))
				assert.False(t, p.IsSolved(), "solved after %d turns", i)
			}
			require.NoError(t, p.Rotate(name))
			assert.True(t, p.IsSolved())
		})
	}
}

func TestRotate_TechniqueOrderSolves(t *testing.T) {
	for _, tech := range Cube2x2Techniques {
		t.Run(tech.Name, func(t *testing.T) {
			p := newCube(t)
			move, err := p.Definition().Permutation(tech.Name)
			require.NoError(t, err)

			order := move.Order()
			require.Greater(t, order, 1)
			for i := 1; i < order; i++ {
				require.NoError(t, p.Rotate(tech.Name))
				assert.False(t, p.IsSolved(), "solved after %d applications", i)
			}
			require.NoError(t, p.Rotate(tech.Name))
			assert.True(t, p.IsSolved())
			assert.True(t, p.Applied().IsIdentity())
		})
	}
}

func TestRotate_GeneratorThenInverse(t *testing.T) {
	for _, name := range []string{"f", "u", "r", "d", "l", "b"} {
		t.Run(name, func(t *testing.T) {
			p := newCube(t)
			require.NoError(t, p.RotateMany("r", "u"))
			start := p.Current()
			applied := p.Applied()

			require.NoError(t, p.RotateMany(name, name+"i"))

			assert.True(t, p.Current().Equal(start))
			assert.True(t, p.Applied().SameEffect(applied))
			assert.False(t, p.Applied().Equal(applied), "labels keep accumulating")
		})
	}
}

func TestRotate_SequenceMatchesTechnique(t *testing.T) {
	for _, tech := range Cube2x2Techniques {
		t.Run(tech.Name, func(t *testing.T) {
			bySequence := newCube(t)
			require.NoError(t, bySequence.RotateMany(tech.Sequence...))

			byTechnique := newCube(t)
			require.NoError(t, byTechnique.Rotate(tech.Name))

			assert.True(t, bySequence.Current().Equal(byTechnique.Current()))
			assert.True(t, bySequence.Applied().SameEffect(byTechnique.Applied()))
		})
	}
}

func TestRotate_UnknownMove(t *testing.T) {
	p := newCube(t)
	require.NoError(t, p.Rotate("f"))
	before := p.Current()

	err := p.Rotate("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMove))
	assert.True(t, p.Current().Equal(before))
	assert.Equal(t, "id * f", p.AppliedLabel())
	assert.Equal(t, []string{"f"}, p.Moves())
}

func TestRotateMany_StopsAtFirstError(t *testing.T) {
	p := newCube(t)

	err := p.RotateMany("f", "nope", "r")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMove))
	assert.Contains(t, err.Error(), "move 2 of 3")

	// moves before the failure are kept
	assert.Equal(t, []string{"f"}, p.Moves())
	assert.Equal(t, "id * f", p.AppliedLabel())
}

func TestRotateSequence(t *testing.T) {
	p := newCube(t)
	require.NoError(t, p.RotateSequence("f2 f'"))
	assert.Equal(t, []string{"f", "f", "fi"}, p.Moves())

	q := newCube(t)
	require.NoError(t, q.Rotate("f"))
	assert.True(t, p.Current().Equal(q.Current()))

	err := p.RotateSequence("f3")
	assert.True(t, errors.Is(err, ErrInvalidNotation))
}

func TestReset(t *testing.T) {
	p := newCube(t)
	require.NoError(t, p.RotateMany("f", "r"))

	p.Reset()
	assert.True(t, p.IsSolved())
	assert.Equal(t, "id", p.AppliedLabel())
	assert.Empty(t, p.Moves())
	for _, pos := range p.Positions() {
		assert.False(t, p.Changed(pos))
	}
}

func TestWithMoveHistory(t *testing.T) {
	p := newCube(t, WithMoveHistory(false))
	require.NoError(t, p.RotateMany("f", "r"))

	assert.Empty(t, p.Moves())
	assert.Equal(t, "id * f * r", p.AppliedLabel())
}

func TestAccessorsReturnCopies(t *testing.T) {
	p := newCube(t)

	current := p.Current()
	current[1] = 99
	facelet, _ := p.FaceletAt(1)
	assert.Equal(t, 1, facelet)

	frame := p.Frame()
	frame.Current[1] = 99
	assert.True(t, p.IsSolved())

	moves := p.Moves()
	require.NoError(t, p.Rotate("f"))
	assert.Empty(t, moves)
}

func TestFaceAndColorAt(t *testing.T) {
	p := newCube(t)
	require.NoError(t, p.Rotate("u"))

	face, ok := p.FaceAt(1)
	require.True(t, ok)
	assert.Equal(t, "r", face)

	color, ok := p.ColorAt(1)
	require.True(t, ok)
	assert.Equal(t, Green, color)

	_, ok = p.FaceAt(99)
	assert.False(t, ok)
	color, ok = p.ColorAt(99)
	assert.False(t, ok)
	assert.Equal(t, Grey, color)
}

// brokenDefinition has a move that reaches outside its two positions.
type brokenDefinition struct {
	start State
	moves *MoveTable
}

func newBrokenDefinition(start State) *brokenDefinition {
	return &brokenDefinition{
		start: start,
		moves: mustMoveTable(
			perm.MustFromCycles("swap", [][]int{{1, 2}}),
			perm.MustFromCycles("escape", [][]int{{1, 5}}),
		),
	}
}

func (d *brokenDefinition) Name() string                            { return "broken" }
func (d *brokenDefinition) SolvedState() State                      { return IdentityState(1, 2) }
func (d *brokenDefinition) StartState() State                       { return d.start.Clone() }
func (d *brokenDefinition) MoveNames() []string                     { return d.moves.Names() }
func (d *brokenDefinition) FaceName(int) string                     { return "f" }
func (d *brokenDefinition) Color(string) Color                      { return Red }
func (d *brokenDefinition) Render(*lipgloss.Renderer, Frame) string { return "" }

func (d *brokenDefinition) Permutation(name string) (perm.Permutation, error) {
	return d.moves.Lookup(name)
}

func TestRotate_DefinitionError(t *testing.T) {
	p, err := New(newBrokenDefinition(IdentityState(1, 2)))
	require.NoError(t, err)

	require.NoError(t, p.Rotate("swap"))
	before := p.Current()

	err = p.Rotate("escape")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDefinition))
	assert.True(t, p.Current().Equal(before))
	assert.Equal(t, "id * swap", p.AppliedLabel())
}

func TestNew_StartStateMismatch(t *testing.T) {
	_, err := New(newBrokenDefinition(IdentityState(1, 2, 3)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDefinition))
}

func TestRender(t *testing.T) {
	p := newCube(t)

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Current permutation : id\n")
	assert.Contains(t, out, "| 11 | 12 |")
	assert.NotContains(t, out, "Solved")

	require.NoError(t, p.RotateMany("f", "f", "f"))
	require.NoError(t, p.Rotate("f"))
	buf.Reset()
	require.NoError(t, p.Render(&buf))
	out = buf.String()
	assert.Contains(t, out, "Current permutation : id * f * f * f * f\n")
	assert.Contains(t, out, "Solved")
}

func TestView_NilRenderer(t *testing.T) {
	p := newCube(t)
	out := p.View(nil)
	assert.True(t, strings.Contains(out, "Current permutation : id"))
}

func TestWithSolvedCallback(t *testing.T) {
	var solvedAt []string
	p := newCube(t, WithSolvedCallback(func(applied perm.Permutation) {
		solvedAt = append(solvedAt, applied.Label())
	}))

	require.NoError(t, p.Rotate("id"))
	assert.Empty(t, solvedAt, "already solved")

	require.NoError(t, p.RotateMany("f", "fi", "r", "r", "r", "r"))
	assert.Equal(t, []string{"id * id * f * fi", "id * id * f * fi * r * r * r * r"}, solvedAt)
}
