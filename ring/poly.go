// SPDX-License-Identifier: MIT

// Package ring: polynomial arithmetic over GF(p) used by the extension
// field. Polynomials are little-endian []uint64 coefficient vectors with
// entries already reduced modulo p; leading zeros are permitted and
// ignored via polyDeg.

package ring

// polyDeg returns the degree of a, or -1 for the zero polynomial.
func polyDeg(a []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}

	return -1
}

// polyMul returns the product a*b over GF(p).
func polyMul(a, b []uint64, p uint64) []uint64 {
	da, db := polyDeg(a), polyDeg(b)
	if da < 0 || db < 0 {
		return nil
	}
	out := make([]uint64, da+db+1)
	for i := 0; i <= da; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j <= db; j++ {
			out[i+j] = (out[i+j] + a[i]*b[j]) % p
		}
	}

	return out
}

// polyMod returns the remainder of a modulo a non-constant divisor m.
// The divisor's leading coefficient need not be 1; it is inverted mod p.
func polyMod(a, m []uint64, p uint64) []uint64 {
	dm := polyDeg(m)
	rem := make([]uint64, len(a))
	copy(rem, a)
	leadInv := scalarInv(m[dm], p)
	for d := polyDeg(rem); d >= dm; d = polyDeg(rem) {
		factor := (rem[d] * leadInv) % p
		shift := d - dm
		for i := 0; i <= dm; i++ {
			rem[i+shift] = (rem[i+shift] + p - (factor*m[i])%p) % p
		}
	}
	if polyDeg(rem) < 0 {
		return nil
	}

	return rem[:polyDeg(rem)+1]
}

// polyScale returns c*a over GF(p).
func polyScale(a []uint64, c, p uint64) []uint64 {
	out := make([]uint64, len(a))
	for i, ai := range a {
		out[i] = (ai * c) % p
	}

	return out
}

// polySub returns a-b over GF(p), sized to hold both operands.
func polySub(a, b []uint64, p uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	for i := range out {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = (av + p - bv) % p
	}

	return out
}

// polyInvMod returns a^{-1} modulo the irreducible monic m via the
// extended Euclidean algorithm. a must be non-zero modulo m.
func polyInvMod(a, m []uint64, p uint64) []uint64 {
	// Invariants: r0 = s0*a (mod m), r1 = s1*a (mod m).
	r0, r1 := append([]uint64(nil), m...), append([]uint64(nil), a...)
	s0, s1 := []uint64{0}, []uint64{1}

	for polyDeg(r1) > 0 {
		q, r := polyQuoRem(r0, r1, p)
		r0, r1 = r1, r
		s0, s1 = s1, polySub(s0, polyMul(q, s1, p), p)
	}

	// r1 is a non-zero scalar gcd (m is irreducible); normalize it to 1.
	inv := scalarInv(r1[0], p)
	res := polyScale(s1, inv, p)

	return polyMod(res, m, p)
}

// polyQuoRem returns quotient and remainder of a divided by b over GF(p).
func polyQuoRem(a, b []uint64, p uint64) (q, r []uint64) {
	db := polyDeg(b)
	r = append([]uint64(nil), a...)
	da := polyDeg(r)
	if da < db {
		return []uint64{0}, r
	}
	q = make([]uint64, da-db+1)
	leadInv := scalarInv(b[db], p)
	for d := polyDeg(r); d >= db; d = polyDeg(r) {
		factor := (r[d] * leadInv) % p
		shift := d - db
		q[shift] = factor
		for i := 0; i <= db; i++ {
			r[i+shift] = (r[i+shift] + p - (factor*b[i])%p) % p
		}
	}

	return q, r
}

// scalarInv returns x^{-1} mod p for prime p via Fermat exponentiation.
func scalarInv(x, p uint64) uint64 {
	return scalarPow(x%p, p-2, p)
}

func scalarPow(x, e, p uint64) uint64 {
	result := uint64(1)
	base := x % p
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = (result * base) % p
		}
		base = (base * base) % p
	}

	return result
}

// findIrreducible returns the lexicographically smallest monic irreducible
// polynomial of degree k over GF(p): candidates are scanned by their lower
// coefficient vector read as a base-p number, and each is trial-divided by
// every monic polynomial of degree 1..k/2. The scan always terminates:
// irreducible polynomials of every degree exist over every prime field.
func findIrreducible(p uint64, k int) []uint64 {
	for idx := uint64(0); ; idx++ {
		cand := digitsPlusMonic(idx, p, k)
		if isIrreducible(cand, p) {
			return cand
		}
	}
}

// digitsPlusMonic expands idx base p into the k lower coefficients and
// appends a monic leading 1.
func digitsPlusMonic(idx, p uint64, k int) []uint64 {
	out := make([]uint64, k+1)
	for i := 0; i < k; i++ {
		out[i] = idx % p
		idx /= p
	}
	out[k] = 1

	return out
}

func isIrreducible(m []uint64, p uint64) bool {
	k := polyDeg(m)
	for e := 1; e <= k/2; e++ {
		count := scalarPowCount(p, e)
		for idx := uint64(0); idx < count; idx++ {
			d := digitsPlusMonic(idx, p, e)
			if polyDeg(polyMod(m, d, p)) < 0 {
				return false
			}
		}
	}

	return true
}

// scalarPowCount returns p^e without modular reduction (small inputs only:
// e <= k/2 and p^k fits a uint64 by construction).
func scalarPowCount(p uint64, e int) uint64 {
	out := uint64(1)
	for i := 0; i < e; i++ {
		out *= p
	}

	return out
}
