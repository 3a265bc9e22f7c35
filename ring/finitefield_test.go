// SPDX-License-Identifier: MIT

// Package ring_test: prime-power finite fields, from the prime-field fast
// path through the GF(p^k) polynomial quotient representation.
package ring_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ademarov/affine/ring"
)

func TestFiniteFieldPrime(t *testing.T) {
	t.Parallel()

	f5, err := ring.FiniteField(5)
	require.NoError(t, err)
	require.True(t, f5.IsField())
	require.Equal(t, "Finite Field of size 5", f5.Name())

	// 7 ≡ 2 (mod 5); negative representatives normalize too.
	require.True(t, f5.FromInt(7).Equal(f5.FromInt(2)))
	require.True(t, f5.FromInt(-1).Equal(f5.FromInt(4)))

	// 2·3 = 6 ≡ 1, so 2 and 3 are mutually inverse.
	inv, err := f5.FromInt(2).Inv()
	require.NoError(t, err)
	require.True(t, inv.Equal(f5.FromInt(3)))

	_, err = f5.Zero().Inv()
	require.ErrorIs(t, err, ring.ErrDivisionByZero)
}

func TestFiniteFieldNotPrimePower(t *testing.T) {
	t.Parallel()

	for _, order := range []uint64{0, 1, 6, 12, 100} {
		if _, err := ring.FiniteField(order); !errors.Is(err, ring.ErrNotPrimePower) {
			t.Fatalf("FiniteField(%d): got %v, want ErrNotPrimePower", order, err)
		}
	}
}

func TestFiniteFieldGF4(t *testing.T) {
	t.Parallel()

	f4, err := ring.FiniteField(4)
	require.NoError(t, err)
	require.Equal(t, "Finite Field in a of size 2^2", f4.Name())

	// The only irreducible quadratic over GF(2) is x^2 + x + 1, so the
	// generator satisfies a^2 = a + 1.
	a := f4.AnElement()
	require.Equal(t, "a", a.String())
	require.True(t, a.Mul(a).Equal(a.Add(f4.One())))
	require.Equal(t, "a + 1", a.Mul(a).String())

	// a^3 = a·a^2 = a^2 + a = 1: the generator has multiplicative order 3.
	require.True(t, a.Mul(a).Mul(a).IsOne())

	inv, err := a.Inv()
	require.NoError(t, err)
	require.True(t, inv.Mul(a).IsOne())
}

func TestFiniteFieldExtensionFromString(t *testing.T) {
	t.Parallel()

	f8, err := ring.FiniteField(8)
	if err != nil {
		t.Fatalf("FiniteField(8): %v", err)
	}

	// String forms must parse back to the same element.
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 32; i++ {
		e := f8.Random(rnd)
		back, perr := f8.FromString(e.String())
		if perr != nil {
			t.Fatalf("FromString(%q): %v", e.String(), perr)
		}
		if !back.Equal(e) {
			t.Fatalf("round trip of %q produced %q", e.String(), back.String())
		}
	}

	if _, err = f8.FromString("a^9"); !errors.Is(err, ring.ErrBadLiteral) {
		t.Fatalf("out-of-range degree: got %v, want ErrBadLiteral", err)
	}
	if _, err = f8.FromString("b + 1"); !errors.Is(err, ring.ErrBadLiteral) {
		t.Fatalf("unknown generator: got %v, want ErrBadLiteral", err)
	}
}

func TestFiniteFieldAxioms(t *testing.T) {
	t.Parallel()

	for _, order := range []uint64{9, 25, 27} {
		f, err := ring.FiniteField(order)
		if err != nil {
			t.Fatalf("FiniteField(%d): %v", order, err)
		}
		rnd := rand.New(rand.NewSource(int64(order)))
		for i := 0; i < 16; i++ {
			x := f.Random(rnd)
			if x.IsZero() {
				continue
			}
			inv, ierr := x.Inv()
			if ierr != nil {
				t.Fatalf("GF(%d): Inv(%s): %v", order, x, ierr)
			}
			if !x.Mul(inv).IsOne() {
				t.Fatalf("GF(%d): %s · %s != 1", order, x, inv)
			}
			if !x.Sub(x).IsZero() {
				t.Fatalf("GF(%d): %s - %s != 0", order, x, x)
			}
		}
	}
}

func TestFiniteFieldCanonical(t *testing.T) {
	t.Parallel()

	a1, err := ring.FiniteField(9)
	require.NoError(t, err)
	a2, err := ring.FiniteField(9)
	require.NoError(t, err)
	require.Same(t, a1, a2)

	// A different generator name is a different printing convention, hence
	// a different canonical instance.
	b, err := ring.FiniteField(9, ring.WithVar("b"))
	require.NoError(t, err)
	require.NotSame(t, a1, b)
	require.Equal(t, "Finite Field in b of size 3^2", b.Name())
}

// Elements of distinct rings must never compare coefficient-wise, even
// when they share a dynamic type; mixing rings panics.
func TestEqualAcrossRingsPanics(t *testing.T) {
	t.Parallel()

	fa, err := ring.FiniteField(4)
	require.NoError(t, err)
	fb, err := ring.FiniteField(4, ring.WithVar("b"))
	require.NoError(t, err)
	require.Panics(t, func() { fa.One().Equal(fb.One()) })

	f5, err := ring.FiniteField(5)
	require.NoError(t, err)
	f7, err := ring.FiniteField(7)
	require.NoError(t, err)
	require.Panics(t, func() { f5.FromInt(2).Equal(f7.FromInt(2)) })
}

func TestLookup(t *testing.T) {
	t.Parallel()

	f5, err := ring.FiniteField(5)
	require.NoError(t, err)

	got, err := ring.Lookup(f5.Name())
	require.NoError(t, err)
	require.Same(t, f5, got)

	_, err = ring.Lookup("Finite Field of size 1844674407")
	require.ErrorIs(t, err, ring.ErrUnknownRing)
}
