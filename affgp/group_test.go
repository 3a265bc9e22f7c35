// SPDX-License-Identifier: MIT

// Package affgp_test contains unit tests for group construction,
// canonicalization and element sampling.
package affgp_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ademarov/affine/affgp"
	"github.com/ademarov/affine/linalg"
	"github.com/ademarov/affine/ring"
)

// mustGroup builds Aff_d(R) or aborts the test.
func mustGroup(t *testing.T, degree int, base ring.Ring, opts ...affgp.Option) *affgp.Group {
	t.Helper()
	g, err := affgp.New(degree, base, opts...)
	if err != nil {
		t.Fatalf("New(%d, %s): %v", degree, base.Name(), err)
	}

	return g
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	if _, err := affgp.New(-1, ring.Rationals()); !errors.Is(err, affgp.ErrBadDegree) {
		t.Fatalf("negative degree: got %v, want ErrBadDegree", err)
	}
	if _, err := affgp.New(3, nil); !errors.Is(err, affgp.ErrNilRing) {
		t.Fatalf("nil ring: got %v, want ErrNilRing", err)
	}

	// Degree 0 is a legal, if trivial, group.
	g := mustGroup(t, 0, ring.Rationals())
	require.True(t, g.One().IsOne())
}

func TestGroupCanonical(t *testing.T) {
	t.Parallel()

	g1 := mustGroup(t, 3, ring.Rationals())
	g2 := mustGroup(t, 3, ring.Rationals())
	require.Same(t, g1, g2)

	require.NotSame(t, g1, mustGroup(t, 2, ring.Rationals()))
	require.NotSame(t, g1, mustGroup(t, 3, ring.Integers()))
}

func TestGroupSubgroupNotCanonical(t *testing.T) {
	t.Parallel()

	reject := func(a *linalg.Matrix, b *linalg.Vector) error { return nil }
	plain := mustGroup(t, 2, ring.Rationals())
	hooked := mustGroup(t, 2, ring.Rationals(), affgp.WithElementCheck(reject))
	require.NotSame(t, plain, hooked)

	// And two hooked groups are distinct from each other too.
	hooked2 := mustGroup(t, 2, ring.Rationals(), affgp.WithElementCheck(reject))
	require.NotSame(t, hooked, hooked2)
}

func TestNewFiniteField(t *testing.T) {
	t.Parallel()

	g, err := affgp.NewFiniteField(2, 4)
	require.NoError(t, err)
	require.Equal(t, 2, g.Degree())
	require.Equal(t, "Finite Field in a of size 2^2", g.BaseRing().Name())

	_, err = affgp.NewFiniteField(2, 6)
	require.ErrorIs(t, err, ring.ErrNotPrimePower)
}

func TestFromSpace(t *testing.T) {
	t.Parallel()

	gf4, err := ring.FiniteField(4)
	require.NoError(t, err)
	md, err := linalg.NewModule(gf4, 2)
	require.NoError(t, err)

	fromModule, err := affgp.FromSpace(md)
	require.NoError(t, err)
	direct, err := affgp.NewFiniteField(2, 4)
	require.NoError(t, err)
	require.Same(t, direct, fromModule)

	// Re-wrapping a group is the identity.
	again, err := affgp.FromSpace(fromModule)
	require.NoError(t, err)
	require.Same(t, fromModule, again)
}

func TestDerivedSpaces(t *testing.T) {
	t.Parallel()

	g := mustGroup(t, 3, ring.Rationals())

	require.Equal(t, 3, g.MatrixSpace().Rows())
	require.Equal(t, 3, g.MatrixSpace().Cols())
	require.Equal(t, 3, g.VectorSpace().Dimension())
	require.Equal(t, 4, g.LinearSpace().Rows())
	require.Equal(t, 4, g.LinearSpace().Cols())

	// Memoized: repeated calls return the identical space.
	require.Same(t, g.MatrixSpace(), g.MatrixSpace())
}

func TestOne(t *testing.T) {
	t.Parallel()

	g := mustGroup(t, 3, ring.Integers())
	one := g.One()
	require.True(t, one.IsOne())

	v, err := g.VectorSpace().FromInts(4, 5, 6)
	require.NoError(t, err)
	img, err := one.Apply(v)
	require.NoError(t, err)
	require.True(t, img.Equal(v))
}

func TestRandomInvertible(t *testing.T) {
	t.Parallel()

	// Over a field almost every sample is invertible, so the resampling
	// loop terminates fast. ZZ is excluded: unimodular integer matrices
	// are rare enough that sampling there is expected to exhaust budgets.
	rnd := rand.New(rand.NewSource(99))
	g := mustGroup(t, 3, ring.Rationals())
	for i := 0; i < 8; i++ {
		e, err := g.Random(rnd)
		if err != nil {
			t.Fatalf("%s: Random: %v", g, err)
		}
		if !e.A().IsInvertible() {
			t.Fatalf("%s: Random returned a singular linear part:\n%s", g, e.A())
		}
	}
}

func TestRandomOverFiniteField(t *testing.T) {
	t.Parallel()

	g, err := affgp.NewFiniteField(2, 4)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(5))
	e, err := g.Random(rnd)
	require.NoError(t, err)
	require.True(t, e.A().IsInvertible())
}

func TestSamplingExhausted(t *testing.T) {
	t.Parallel()

	// A hooked group bypasses the canonical cache, so the tight attempt
	// budget is guaranteed to apply to this instance. Random 5x5 integer
	// matrices are essentially never unimodular, so a single draw over ZZ
	// exhausts the budget.
	pass := func(a *linalg.Matrix, b *linalg.Vector) error { return nil }
	g, err := affgp.New(5, ring.Integers(), affgp.WithMaxAttempts(1), affgp.WithElementCheck(pass))
	require.NoError(t, err)

	_, err = g.Random(rand.New(rand.NewSource(3)))
	require.ErrorIs(t, err, affgp.ErrSamplingExhausted)

	// The matrix space's deterministic example is singular too, so the
	// cached-example path runs the same bounded loop and gives up as well.
	_, err = g.AnElement()
	require.ErrorIs(t, err, affgp.ErrSamplingExhausted)
}

// Sampling guarantees invertibility only: the subgroup hook guards
// coercing construction, not Random.
func TestRandomSkipsElementCheck(t *testing.T) {
	t.Parallel()

	rejectAll := func(a *linalg.Matrix, b *linalg.Vector) error { return errors.New("rejected") }
	g, err := affgp.New(2, ring.Rationals(), affgp.WithElementCheck(rejectAll))
	require.NoError(t, err)

	e, err := g.Random(rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	require.True(t, e.A().IsInvertible())
}

func TestAnElement(t *testing.T) {
	t.Parallel()

	g := mustGroup(t, 3, ring.Rationals())
	e, err := g.AnElement()
	require.NoError(t, err)
	require.True(t, e.A().IsInvertible())

	// Cached: the exact same element comes back.
	again, err := g.AnElement()
	require.NoError(t, err)
	require.Same(t, e, again)
}

func TestGroupDisplay(t *testing.T) {
	t.Parallel()

	g := mustGroup(t, 3, ring.Rationals())
	require.Equal(t, "Affine Group of degree 3 over Rational Field", g.String())
	require.Equal(t, `\mathrm{Aff}_{3}(\Bold{Q})`, g.Latex())
}
