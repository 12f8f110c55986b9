package twisty

import "sort"

// State maps a position id to the label of the facelet sitting there.
type State map[int]int

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	clone := make(State, len(s))
	for pos, facelet := range s {
		clone[pos] = facelet
	}
	return clone
}

// Equal reports key-for-key equality.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for pos, facelet := range s {
		other, ok := o[pos]
		if !ok || other != facelet {
			return false
		}
	}
	return true
}

// SameKeys reports whether both states cover the same positions.
func (s State) SameKeys(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for pos := range s {
		if _, ok := o[pos]; !ok {
			return false
		}
	}
	return true
}

// Positions returns the positions in ascending order.
func (s State) Positions() []int {
	positions := make([]int, 0, len(s))
	for pos := range s {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// IdentityState returns the state in which every position holds the
// facelet with the same label.
func IdentityState(positions ...int) State {
	s := make(State, len(positions))
	for _, pos := range positions {
		s[pos] = pos
	}
	return s
}

// facePositions expands faces into face*10 + slot positions, slots from 1.
func facePositions(faces []int, slots int) []int {
	positions := make([]int, 0, len(faces)*slots)
	for _, face := range faces {
		for slot := 1; slot <= slots; slot++ {
			positions = append(positions, face*10+slot)
		}
	}
	return positions
}
