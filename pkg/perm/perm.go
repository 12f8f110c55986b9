// Package perm implements finite permutations in one-line notation.
//
// Composition does not follow the textbook convention. Compose(f, g) is
// the permutation "f then g" as the puzzle engine applies it to a facelet
// map; as functions it evaluates f(g(i)):
//
//	f := perm.MustFromCycles("f", [][]int{{1, 4, 3, 2}, {13, 42, 31, 24}, {14, 43, 32, 21}})
//	l := perm.MustFromCycles("l", [][]int{{1, 11, 53, 31}, {4, 14, 52, 34}, {41, 44, 43, 42}})
//
//	fl := perm.Compose(f, l)
//	fmt.Println(fl)                // f * l
//	fmt.Println(fl.CyclesString()) // [[1, 11, 53, 24, 13, 42, 41, 44, 32, 21, 14, 52, 34, 3, 2], [4, 43, 31]]
//
// Every permutation is the identity outside its stored support, so
// permutations of different degree compose freely.
package perm

import "fmt"

// IdentityLabel is the label of the permutation returned by Identity.
const IdentityLabel = "id"

// Permutation is an immutable permutation of the non-negative integers
// that moves only finitely many points.
type Permutation struct {
	label    string
	oneLine  []int
	degree   int
	identity bool
}

// Identity returns the identity permutation.
func Identity() Permutation {
	return newOneLine(IdentityLabel, nil)
}

// FromOneLine builds a permutation from its one-line notation, where
// oneLine[i] is the image of i. The array must be a bijection on
// [0, len(oneLine)).
func FromOneLine(label string, oneLine []int) (Permutation, error) {
	seen := make([]bool, len(oneLine))
	for i, v := range oneLine {
		if v < 0 || v >= len(oneLine) || seen[v] {
			return Permutation{}, fmt.Errorf("%w: index %d maps to %d", ErrNotBijection, i, v)
		}
		seen[v] = true
	}

	return newOneLine(label, append([]int(nil), oneLine...)), nil
}

// MustFromOneLine is like FromOneLine but panics on invalid input.
func MustFromOneLine(label string, oneLine []int) Permutation {
	p, err := FromOneLine(label, oneLine)
	if err != nil {
		panic(err)
	}
	return p
}

// newOneLine takes ownership of oneLine, which must already be a bijection.
func newOneLine(label string, oneLine []int) Permutation {
	return Permutation{
		label:    label,
		oneLine:  oneLine,
		degree:   degreeOf(oneLine),
		identity: isIdentity(oneLine),
	}
}

// Label returns the display label.
func (p Permutation) Label() string {
	return p.label
}

// String returns the label.
func (p Permutation) String() string {
	return p.label
}

// Degree returns one plus the largest moved point, or 0 for the identity.
func (p Permutation) Degree() int {
	return p.degree
}

// IsIdentity reports whether the permutation fixes every point.
func (p Permutation) IsIdentity() bool {
	return p.identity
}

// OneLine returns a copy of the stored one-line array.
func (p Permutation) OneLine() []int {
	return append([]int(nil), p.oneLine...)
}

// Apply returns the image of i. Points at or beyond the degree are fixed.
func (p Permutation) Apply(i int) int {
	if i >= 0 && i < p.degree {
		return p.oneLine[i]
	}
	return i
}

// WithLabel returns the same permutation under a new label.
func (p Permutation) WithLabel(label string) Permutation {
	p.label = label
	return p
}

// Compose returns Compose(p, q).
func (p Permutation) Compose(q Permutation) Permutation {
	return Compose(p, q)
}

// Compose returns the permutation that maps i to p.Apply(q.Apply(i)),
// labelled "p * q". Read it as "apply p, then q" to a facelet map.
func Compose(p, q Permutation) Permutation {
	n := max(p.degree, q.degree)
	oneLine := make([]int, n)
	for i := 0; i < n; i++ {
		oneLine[i] = p.Apply(q.Apply(i))
	}

	return newOneLine(p.label+" * "+q.label, oneLine)
}

// ComposeN left-folds Compose over ps. It returns Identity for no
// arguments and a copy of ps[0] for one.
func ComposeN(ps ...Permutation) Permutation {
	if len(ps) == 0 {
		return Identity()
	}

	result := newOneLine(ps[0].label, ps[0].OneLine())
	for _, q := range ps[1:] {
		result = Compose(result, q)
	}
	return result
}

// Composition returns ComposeN(ps...) labelled with label.
func Composition(label string, ps ...Permutation) Permutation {
	return ComposeN(ps...).WithLabel(label)
}

// Inverse returns the inverse permutation, labelled with an "i" suffix.
// The identity is its own inverse and keeps its label.
func (p Permutation) Inverse() Permutation {
	if p.identity {
		return p
	}

	inv := make([]int, len(p.oneLine))
	for i, v := range p.oneLine {
		inv[v] = i
	}
	return newOneLine(p.label+"i", inv)
}

// Conjugate returns p * q * p⁻¹ in this package's composition order.
func (p Permutation) Conjugate(q Permutation) Permutation {
	return ComposeN(p, q, p.Inverse())
}

// Commutator returns q * p * q⁻¹ * p⁻¹ in this package's composition order.
func (p Permutation) Commutator(q Permutation) Permutation {
	return ComposeN(q, p, q.Inverse(), p.Inverse())
}

// Power returns p composed with itself n times. Negative n powers the
// inverse; zero returns Identity.
func (p Permutation) Power(n int) Permutation {
	if n < 0 {
		return p.Inverse().Power(-n)
	}

	result := Identity()
	for i := 0; i < n; i++ {
		result = Compose(result, p)
	}
	if n > 0 {
		result.label = fmt.Sprintf("%s^%d", p.label, n)
	}
	return result
}

// Equal reports structural equality: label, one-line array, identity flag
// and degree all match. Two permutations with the same effect but
// different labels are not equal; see SameEffect.
func (p Permutation) Equal(q Permutation) bool {
	if p.label != q.label || p.identity != q.identity || p.degree != q.degree {
		return false
	}
	if len(p.oneLine) != len(q.oneLine) {
		return false
	}
	for i := range p.oneLine {
		if p.oneLine[i] != q.oneLine[i] {
			return false
		}
	}
	return true
}

// SameEffect reports whether p and q map every point to the same image,
// ignoring labels and trailing fixed points.
func (p Permutation) SameEffect(q Permutation) bool {
	if p.degree != q.degree {
		return false
	}
	for i := 0; i < p.degree; i++ {
		if p.oneLine[i] != q.oneLine[i] {
			return false
		}
	}
	return true
}

// degreeOf returns the largest index i with oneLine[i] != i, plus one.
func degreeOf(oneLine []int) int {
	i := len(oneLine) - 1
	for i >= 0 && oneLine[i] == i {
		i--
	}
	return i + 1
}

func isIdentity(oneLine []int) bool {
	for i, v := range oneLine {
		if v != i {
			return false
		}
	}
	return true
}
