package twisty

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

func TestVariants(t *testing.T) {
	assert.Equal(t, []string{Cube2x2Name, TetrahedronName}, Variants())
}

func TestLookup(t *testing.T) {
	for _, name := range Variants() {
		t.Run(name, func(t *testing.T) {
			def, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, def.Name())
		})
	}

	_, err := Lookup("megaminx")
	assert.True(t, errors.Is(err, ErrUnknownPuzzle))

	def, err := Lookup(Cube2x2Name, WithStartPreset(PresetFlippedCorners))
	require.NoError(t, err)
	assert.Equal(t, 54, def.StartState()[3])

	def, err = Lookup(TetrahedronName, WithStartPreset(PresetFlippedCorners))
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	assert.Nil(t, def)
}

func TestMoveTable(t *testing.T) {
	f := perm.MustFromCycles("f", [][]int{{1, 2, 3}})

	table, err := NewMoveTable(perm.Identity(), f, f.Inverse())
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"id", "f", "fi"}, table.Names())

	got, err := table.Lookup("fi")
	require.NoError(t, err)
	assert.True(t, got.Equal(f.Inverse()))

	_, err = table.Lookup("g")
	assert.True(t, errors.Is(err, ErrUnknownMove))

	names := table.Names()
	names[0] = "changed"
	assert.Equal(t, "id", table.Names()[0])

	_, err = NewMoveTable(f, f)
	assert.True(t, errors.Is(err, ErrDefinition))
	assert.Panics(t, func() { mustMoveTable(f, f) })
}

func TestFrame(t *testing.T) {
	f := Frame{
		Applied: perm.Identity(),
		Before:  State{1: 1, 2: 2},
		Current: State{1: 2, 2: 1},
		Solved:  State{1: 1, 2: 2},
	}
	facelet, ok := f.Facelet(1)
	assert.True(t, ok)
	assert.Equal(t, 2, facelet)
	_, ok = f.Facelet(3)
	assert.False(t, ok)
	assert.True(t, f.Changed(1))
	assert.False(t, f.JustSolved())

	f.Before, f.Current = f.Current, f.Solved.Clone()
	assert.True(t, f.JustSolved())

	f.Before = f.Current.Clone()
	assert.False(t, f.JustSolved(), "unchanged solved frame")
}

func TestState(t *testing.T) {
	s := IdentityState(facePositions([]int{0, 2}, 3)...)
	assert.Equal(t, []int{1, 2, 3, 21, 22, 23}, s.Positions())

	c := s.Clone()
	assert.True(t, c.Equal(s))
	c[1] = 2
	assert.False(t, c.Equal(s))
	assert.True(t, c.SameKeys(s))
	assert.Equal(t, 1, s[1])

	delete(c, 1)
	c[4] = 4
	assert.False(t, c.SameKeys(s))
	assert.False(t, c.Equal(s))
}

func TestDefaultFaceNameAndColor(t *testing.T) {
	cases := []struct {
		label int
		face  string
		color Color
	}{
		{1, "f", Red},
		{14, "u", Yellow},
		{22, "r", Green},
		{33, "d", White},
		{41, "l", Blue},
		{54, "b", Magenta},
		{61, UnknownFace, Grey},
		{-1, UnknownFace, Grey},
	}
	for _, tc := range cases {
		face := DefaultFaceName(tc.label)
		assert.Equal(t, tc.face, face, "label %d", tc.label)
		assert.Equal(t, tc.color, DefaultColor(face), "label %d", tc.label)
	}
	assert.Equal(t, "magenta", Magenta.String())
	assert.Equal(t, "grey", Color(42).String())
}
