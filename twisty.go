// Package twisty models twisty puzzles as permutation groups and simulates
// puzzle state as a sequence of applied moves.
//
// # Features
//
//   - Puzzle definitions with immutable move tables (2x2 cube, inflated
//     3x3 tetrahedron)
//   - A state engine that rewrites a facelet map through move permutations
//   - Move history as one accumulated permutation
//   - Solved and changed-facelet queries for renderers
//   - Colored text nets and a state export for authoring new definitions
//
// # Quick Start
//
//	def, err := twisty.NewCube2x2()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := twisty.New(def)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := p.RotateMany("f", "di", "fi", "di", "ri", "d", "r"); err != nil {
//	    log.Fatal(err)
//	}
//	p.Render(os.Stdout)
//
// # Positions
//
// Positions and facelet labels share the encoding face*10 + slot, so the
// face a facelet belongs to is its label divided by ten:
//
//	0 f   1 u   2 r   3 d   4 l   5 b
//
// # Composition order
//
// Moves accumulate with perm.Compose(applied, move). See package perm for
// why that reads "applied, then move".
package twisty
