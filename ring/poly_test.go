// SPDX-License-Identifier: MIT

// White-box tests for the GF(p)[x] kernels behind the extension field.
package ring

import (
	"reflect"
	"testing"
)

func TestPolyDeg(t *testing.T) {
	t.Parallel()

	if d := polyDeg(nil); d != -1 {
		t.Fatalf("deg(0) = %d, want -1", d)
	}
	if d := polyDeg([]uint64{0, 0, 0}); d != -1 {
		t.Fatalf("deg(0) with leading zeros = %d, want -1", d)
	}
	if d := polyDeg([]uint64{1, 0, 3, 0}); d != 2 {
		t.Fatalf("deg = %d, want 2", d)
	}
}

func TestPolyMulMod(t *testing.T) {
	t.Parallel()

	const p = 5

	// (x + 1)(x + 4) = x^2 + 5x + 4 = x^2 + 4 over GF(5).
	prod := polyMul([]uint64{1, 1}, []uint64{4, 1}, p)
	if !reflect.DeepEqual(prod, []uint64{4, 0, 1}) {
		t.Fatalf("product = %v", prod)
	}

	// Reduce x^2 + 4 modulo x^2 + 2: remainder 2.
	rem := polyMod(prod, []uint64{2, 0, 1}, p)
	if !reflect.DeepEqual(rem, []uint64{2}) {
		t.Fatalf("remainder = %v", rem)
	}
}

func TestPolyQuoRem(t *testing.T) {
	t.Parallel()

	const p = 7

	// x^3 + 2x + 5 = (x^2 + 3x + 4)·(x + 4) + 3 over GF(7).
	a := []uint64{5, 2, 0, 1}
	b := []uint64{4, 1}
	q, r := polyQuoRem(a, b, p)
	if !reflect.DeepEqual(q[:polyDeg(q)+1], []uint64{4, 3, 1}) {
		t.Fatalf("quotient = %v", q)
	}
	check := polySub(a, polyMul(q, b, p), p)
	if !reflect.DeepEqual(check[:polyDeg(check)+1], r[:polyDeg(r)+1]) {
		t.Fatalf("remainder mismatch: %v vs %v", check, r)
	}
}

func TestPolyInvMod(t *testing.T) {
	t.Parallel()

	// Inverses in GF(2)[x]/(x^2+x+1) and GF(3)[x]/(x^2+1): a·a^{-1} ≡ 1.
	for _, tc := range []struct {
		p   uint64
		mod []uint64
	}{
		{2, []uint64{1, 1, 1}},
		{3, []uint64{1, 0, 1}},
	} {
		count := tc.p * tc.p
		for idx := uint64(1); idx < count; idx++ {
			a := []uint64{idx % tc.p, idx / tc.p}
			inv := polyInvMod(a, tc.mod, tc.p)
			prod := polyMod(polyMul(a, inv, tc.p), tc.mod, tc.p)
			if !reflect.DeepEqual(prod, []uint64{1}) {
				t.Fatalf("GF(%d): %v · %v = %v mod %v", tc.p, a, inv, prod, tc.mod)
			}
		}
	}
}

func TestFindIrreducible(t *testing.T) {
	t.Parallel()

	// The lexicographic scan lands on the classical minimal moduli.
	if got := findIrreducible(2, 2); !reflect.DeepEqual(got, []uint64{1, 1, 1}) {
		t.Fatalf("GF(4) modulus = %v, want x^2+x+1", got)
	}
	if got := findIrreducible(3, 2); !reflect.DeepEqual(got, []uint64{1, 0, 1}) {
		t.Fatalf("GF(9) modulus = %v, want x^2+1", got)
	}

	// Any returned modulus must actually be irreducible.
	for _, tc := range []struct {
		p uint64
		k int
	}{{2, 3}, {2, 8}, {5, 3}, {7, 2}} {
		m := findIrreducible(tc.p, tc.k)
		if polyDeg(m) != tc.k {
			t.Fatalf("GF(%d^%d): modulus %v has wrong degree", tc.p, tc.k, m)
		}
		if !isIrreducible(m, tc.p) {
			t.Fatalf("GF(%d^%d): modulus %v is reducible", tc.p, tc.k, m)
		}
	}
}
