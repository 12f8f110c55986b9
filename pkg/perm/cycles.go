package perm

import "fmt"

// FromCycles builds a permutation from disjoint cycles. Each cycle maps
// every position to the next one and the last back to the first. Empty
// cycles contribute nothing; a single-position cycle is rejected with
// ErrDegenerateCycle.
func FromCycles(label string, cycles [][]int) (Permutation, error) {
	size := 0
	for _, cycle := range cycles {
		if len(cycle) == 1 {
			return Permutation{}, fmt.Errorf("%w: %v", ErrDegenerateCycle, cycle)
		}
		for _, pos := range cycle {
			if pos < 0 {
				return Permutation{}, fmt.Errorf("%w: negative position %d in %v", ErrInvalidCycle, pos, cycle)
			}
			size = max(size, pos+1)
		}
	}

	oneLine := make([]int, size)
	for i := range oneLine {
		oneLine[i] = i
	}

	seen := make([]bool, size)
	for _, cycle := range cycles {
		if len(cycle) == 0 {
			continue
		}
		for _, pos := range cycle {
			if seen[pos] {
				return Permutation{}, fmt.Errorf("%w: position %d repeated in %v", ErrInvalidCycle, pos, cycles)
			}
			seen[pos] = true
		}

		for k := 0; k < len(cycle)-1; k++ {
			oneLine[cycle[k]] = cycle[k+1]
		}
		oneLine[cycle[len(cycle)-1]] = cycle[0]
	}

	return newOneLine(label, oneLine), nil
}

// MustFromCycles is like FromCycles but panics on invalid input. It is
// meant for move tables written as literals.
func MustFromCycles(label string, cycles [][]int) Permutation {
	p, err := FromCycles(label, cycles)
	if err != nil {
		panic(err)
	}
	return p
}

// Cycles returns the disjoint cycles of p, each starting at its smallest
// position, ordered by that start. Fixed points are omitted.
func (p Permutation) Cycles() [][]int {
	cycles := [][]int{}
	seen := make([]bool, p.degree)

	for start := 0; start < p.degree; start++ {
		if seen[start] || p.oneLine[start] == start {
			seen[start] = true
			continue
		}

		var cycle []int
		for pos := start; !seen[pos]; pos = p.oneLine[pos] {
			seen[pos] = true
			cycle = append(cycle, pos)
		}
		cycles = append(cycles, cycle)
	}

	return cycles
}

// Support returns the moved positions in ascending order.
func (p Permutation) Support() []int {
	var support []int
	for i := 0; i < p.degree; i++ {
		if p.oneLine[i] != i {
			support = append(support, i)
		}
	}
	return support
}

// Order returns the smallest n > 0 with p^n equal to the identity.
func (p Permutation) Order() int {
	order := 1
	for _, cycle := range p.Cycles() {
		order = lcm(order, len(cycle))
	}
	return order
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
