package twisty

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

func TestCube2x2_MoveNames(t *testing.T) {
	def, err := NewCube2x2()
	require.NoError(t, err)

	want := []string{
		"id",
		"f", "u", "r", "d", "l", "b",
		"fi", "ui", "ri", "di", "li", "bi",
		"a_tech_right", "b_tech_right", "c_tech_right", "d_tech_right",
		"a_tech_left", "b_tech_left", "c_tech_left", "d_tech_left",
	}
	assert.Equal(t, want, def.MoveNames())
}

func TestCube2x2_GeneratorsRegisteredUnderTheirNames(t *testing.T) {
	def, err := NewCube2x2()
	require.NoError(t, err)

	cases := map[string][][]int{
		"f": {{1, 4, 3, 2}, {13, 42, 31, 24}, {14, 43, 32, 21}},
		"u": {{1, 21, 51, 41}, {2, 22, 52, 42}, {11, 14, 13, 12}},
		"r": {{2, 32, 54, 12}, {3, 33, 51, 13}, {21, 24, 23, 22}},
		"d": {{3, 43, 53, 23}, {4, 44, 54, 24}, {31, 34, 33, 32}},
		"l": {{1, 11, 53, 31}, {4, 14, 52, 34}, {41, 44, 43, 42}},
		"b": {{11, 22, 33, 44}, {12, 23, 34, 41}, {51, 54, 53, 52}},
	}
	for name, cycles := range cases {
		t.Run(name, func(t *testing.T) {
			move, err := def.Permutation(name)
			require.NoError(t, err)
			assert.Equal(t, name, move.Label())
			assert.Equal(t, cycles, move.Cycles())

			inv, err := def.Permutation(name + "i")
			require.NoError(t, err)
			assert.True(t, perm.Compose(move, inv).IsIdentity())
		})
	}
}

func TestCube2x2_Techniques(t *testing.T) {
	def, err := NewCube2x2()
	require.NoError(t, err)

	cases := []struct {
		name   string
		cycles [][]int
	}{
		{"a_tech_right", [][]int{{3, 23, 32, 33, 24, 54}, {34, 53, 44}}},
		{"b_tech_right", [][]int{{3, 34, 23, 43}, {4, 24, 53, 54}, {31, 32, 44, 33}}},
		{"a_tech_left", [][]int{{4, 44, 31, 34, 43, 53}, {23, 33, 54}}},
		{"b_tech_left", [][]int{{3, 43, 54, 53}, {4, 33, 44, 24}, {23, 34, 32, 31}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			move, err := def.Permutation(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.name, move.Label())
			assert.Equal(t, tc.cycles, move.Cycles())
		})
	}
}

var mirrorMoves = map[string]string{
	"f": "fi", "fi": "f",
	"d": "di", "di": "d",
	"r": "li", "ri": "l",
	"l": "ri", "li": "r",
}

func TestCube2x2_LeftTechniquesMirrorRight(t *testing.T) {
	def, err := NewCube2x2()
	require.NoError(t, err)

	byName := make(map[string]Technique)
	for _, tech := range Cube2x2Techniques {
		byName[tech.Name] = tech
	}

	for _, letter := range []string{"a", "b", "c", "d"} {
		right := byName[letter+"_tech_right"]
		left := byName[letter+"_tech_left"]

		mirrored := make([]string, len(right.Sequence))
		for i, name := range right.Sequence {
			mirrored[i] = mirrorMoves[name]
		}
		assert.Equal(t, mirrored, left.Sequence, left.Name)

		rightMove, err := def.Permutation(right.Name)
		require.NoError(t, err)
		leftMove, err := def.Permutation(left.Name)
		require.NoError(t, err)
		assert.Equal(t, rightMove.Order(), leftMove.Order(), left.Name)
		assert.Equal(t, len(rightMove.Support()), len(leftMove.Support()), left.Name)
	}
}

func TestCube2x2_MoveTableIsShared(t *testing.T) {
	a, err := NewCube2x2()
	require.NoError(t, err)
	b, err := NewCube2x2(WithStartPreset(PresetFlippedCorners))
	require.NoError(t, err)

	assert.Same(t, a.moves, b.moves)
}

func TestCube2x2_Presets(t *testing.T) {
	cases := []struct {
		preset string
		moved  []int
	}{
		{PresetSolved, nil},
		{PresetDiagonalFixed, []int{3, 24, 32, 34, 44, 53}},
		{PresetFlippedCorners, []int{3, 23, 24, 32, 33, 54}},
	}
	for _, tc := range cases {
		t.Run(tc.preset, func(t *testing.T) {
			def, err := NewCube2x2(WithStartPreset(tc.preset))
			require.NoError(t, err)

			start := def.StartState()
			solved := def.SolvedState()
			require.True(t, start.SameKeys(solved))

			var moved []int
			seen := make(map[int]bool)
			for _, pos := range start.Positions() {
				if start[pos] != pos {
					moved = append(moved, pos)
				}
				seen[start[pos]] = true
			}
			assert.Equal(t, tc.moved, moved)
			assert.Len(t, seen, len(solved), "every facelet appears once")

			p, err := New(def)
			require.NoError(t, err)
			assert.Equal(t, tc.preset == PresetSolved, p.IsSolved())
		})
	}
}

func TestCube2x2_UnknownPreset(t *testing.T) {
	_, err := NewCube2x2(WithStartPreset("scrambled"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestCube2x2_StartStateIsACopy(t *testing.T) {
	def, err := NewCube2x2(WithStartPreset(PresetDiagonalFixed))
	require.NoError(t, err)

	s := def.StartState()
	s[3] = 3
	assert.Equal(t, 32, def.StartState()[3])
}

func TestCube2x2_Colors(t *testing.T) {
	def, err := NewCube2x2()
	require.NoError(t, err)

	assert.Equal(t, "l", def.FaceName(43))
	assert.Equal(t, Blue, def.Color("l"))
	assert.Equal(t, Magenta, def.Color("b"))
	assert.Equal(t, Grey, def.Color("?"))
}
