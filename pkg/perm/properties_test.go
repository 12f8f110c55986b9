package perm

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPermutation shuffles [0, n) with a fixed source so failures reproduce.
func randomPermutation(rng *rand.Rand, label string, n int) Permutation {
	return MustFromOneLine(label, rng.Perm(n))
}

func TestProperty_CyclesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		p := randomPermutation(rng, "p", 1+rng.Intn(60))

		q, err := FromCycles("p", p.Cycles())
		require.NoError(t, err)
		require.Equal(t, p.Degree(), q.Degree())
		for x := 0; x < p.Degree(); x++ {
			assert.Equal(t, p.OneLine()[x], q.OneLine()[x])
		}
		assert.True(t, p.SameEffect(q))
	}
}

func TestProperty_ComposeWithInverseIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		p := randomPermutation(rng, "p", 1+rng.Intn(60))

		id := Compose(p, p.Inverse())
		assert.True(t, id.IsIdentity())
		assert.Equal(t, 0, id.Degree())
		for x := 0; x < 70; x++ {
			assert.Equal(t, x, id.Apply(x))
		}

		assert.True(t, Compose(p.Inverse(), p).IsIdentity())
	}
}

func TestProperty_Associativity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a := randomPermutation(rng, "a", 1+rng.Intn(40))
		b := randomPermutation(rng, "b", 1+rng.Intn(40))
		c := randomPermutation(rng, "c", 1+rng.Intn(40))

		left := Compose(Compose(a, b), c)
		right := Compose(a, Compose(b, c))
		assert.True(t, left.SameEffect(right))
		assert.Equal(t, left.Label(), right.Label())
	}
}

func TestProperty_DisjointSupportsUnionCycles(t *testing.T) {
	f, _, _, _, _, b := generators()

	want := append(f.Cycles(), b.Cycles()...)
	sort.Slice(want, func(i, j int) bool { return want[i][0] < want[j][0] })

	assert.Equal(t, want, Compose(f, b).Cycles())
	assert.Equal(t, want, Compose(b, f).Cycles())
}

func TestProperty_ConjugateKeepsCycleType(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 20; i++ {
		p := randomPermutation(rng, "p", 30)
		q := randomPermutation(rng, "q", 30)

		assert.Equal(t, cycleType(q), cycleType(p.Conjugate(q)))
		assert.Equal(t, q.Order(), p.Conjugate(q).Order())
	}
}

func cycleType(p Permutation) []int {
	var lengths []int
	for _, c := range p.Cycles() {
		lengths = append(lengths, len(c))
	}
	sort.Ints(lengths)
	return lengths
}
