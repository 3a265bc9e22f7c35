// SPDX-License-Identifier: MIT

// Package ring: the extension field GF(p^k), k > 1, in its polynomial
// quotient representation GF(p)[x]/(m) for a deterministically chosen
// irreducible monic modulus m. Coefficient vectors are little-endian
// []uint64 slices reduced modulo p; the characteristic of any order that
// fits a uint64 satisfies p < 2^32 when k > 1, so coefficient products
// never overflow.

package ring

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

type extField struct {
	p    uint64   // characteristic
	k    int      // extension degree, >= 2
	mod  []uint64 // monic irreducible modulus, little-endian, len k+1
	varn string   // generator name used for printing and parsing
	name string
}

func newExtField(p uint64, k int, varn string) Ring {
	name := fmt.Sprintf("Finite Field in %s of size %d^%d", varn, p, k)

	return canonicalize(name, func() Ring {
		return &extField{p: p, k: k, mod: findIrreducible(p, k), varn: varn, name: name}
	})
}

func (f *extField) elem(c []uint64) extElem {
	out := make([]uint64, f.k)
	copy(out, c)

	return extElem{f: f, c: out}
}

func (f *extField) Zero() Element { return f.elem(nil) }

func (f *extField) One() Element { return f.elem([]uint64{1}) }

func (f *extField) FromInt(n int64) Element {
	r := n % int64(f.p)
	if r < 0 {
		r += int64(f.p)
	}

	return f.elem([]uint64{uint64(r)})
}

// Random draws uniformly: each coefficient is uniform over GF(p).
func (f *extField) Random(rnd *rand.Rand) Element {
	c := make([]uint64, f.k)
	for i := range c {
		c[i] = uint64(rnd.Int63n(int64(f.p)))
	}

	return extElem{f: f, c: c}
}

// AnElement returns the generator of the quotient representation.
func (f *extField) AnElement() Element { return f.elem([]uint64{0, 1}) }

func (f *extField) IsField() bool { return true }
func (f *extField) Name() string  { return f.name }
func (f *extField) Latex() string { return fmt.Sprintf(`\Bold{F}_{%d^{%d}}`, f.p, f.k) }

// FromString parses the canonical "c*a^i + ... + c" form emitted by
// extElem.String.
func (f *extField) FromString(s string) (Element, error) {
	c := make([]uint64, f.k)
	s = strings.TrimSpace(s)
	if s == "0" {
		return extElem{f: f, c: c}, nil
	}
	for _, term := range strings.Split(s, " + ") {
		coeff, deg, err := f.parseTerm(term)
		if err != nil {
			return nil, err
		}
		if deg >= f.k {
			return nil, fmt.Errorf("%q: degree %d out of range: %w", s, deg, ErrBadLiteral)
		}
		c[deg] = (c[deg] + coeff) % f.p
	}

	return extElem{f: f, c: c}, nil
}

// parseTerm handles "7", "a", "a^3", "2*a", and "2*a^3".
func (f *extField) parseTerm(term string) (coeff uint64, deg int, err error) {
	coeff = 1
	rest := term
	if base, exp, found := strings.Cut(term, "*"); found {
		n, perr := strconv.ParseUint(base, 10, 64)
		if perr != nil {
			return 0, 0, fmt.Errorf("%q: %w", term, ErrBadLiteral)
		}
		coeff, rest = n%f.p, exp
	}
	switch {
	case rest == f.varn:
		deg = 1
	case strings.HasPrefix(rest, f.varn+"^"):
		d, perr := strconv.Atoi(strings.TrimPrefix(rest, f.varn+"^"))
		if perr != nil || d < 0 {
			return 0, 0, fmt.Errorf("%q: %w", term, ErrBadLiteral)
		}
		deg = d
	default:
		n, perr := strconv.ParseUint(rest, 10, 64)
		if perr != nil {
			return 0, 0, fmt.Errorf("%q: %w", term, ErrBadLiteral)
		}
		coeff, deg = (coeff*(n%f.p))%f.p, 0
	}

	return coeff, deg, nil
}

// extElem is an immutable element of GF(p^k): a coefficient vector of
// length k over GF(p), little-endian in the generator.
type extElem struct {
	f *extField
	c []uint64
}

func (e extElem) Add(b Element) Element {
	o := b.(extElem)
	c := make([]uint64, e.f.k)
	for i := range c {
		c[i] = (e.c[i] + o.c[i]) % e.f.p
	}

	return extElem{f: e.f, c: c}
}

func (e extElem) Sub(b Element) Element {
	o := b.(extElem)
	c := make([]uint64, e.f.k)
	for i := range c {
		c[i] = (e.c[i] + e.f.p - o.c[i]) % e.f.p
	}

	return extElem{f: e.f, c: c}
}

func (e extElem) Neg() Element {
	c := make([]uint64, e.f.k)
	for i := range c {
		c[i] = (e.f.p - e.c[i]) % e.f.p
	}

	return extElem{f: e.f, c: c}
}

func (e extElem) Mul(b Element) Element {
	o := b.(extElem)
	prod := polyMul(e.c, o.c, e.f.p)
	rem := polyMod(prod, e.f.mod, e.f.p)

	return e.f.elem(rem)
}

func (e extElem) Div(b Element) (Element, error) {
	inv, err := b.Inv()
	if err != nil {
		return nil, err
	}

	return e.Mul(inv), nil
}

// Inv runs the extended Euclidean algorithm in GF(p)[x] against the
// irreducible modulus; the gcd is a non-zero scalar, and the Bézout
// coefficient scaled by its inverse is the field inverse.
func (e extElem) Inv() (Element, error) {
	if e.IsZero() {
		return nil, ErrDivisionByZero
	}
	inv := polyInvMod(e.c, e.f.mod, e.f.p)

	return e.f.elem(inv), nil
}

func (e extElem) IsZero() bool {
	for _, c := range e.c {
		if c != 0 {
			return false
		}
	}

	return true
}

func (e extElem) IsOne() bool {
	if e.c[0] != 1 {
		return false
	}
	for _, c := range e.c[1:] {
		if c != 0 {
			return false
		}
	}

	return true
}

func (e extElem) IsUnit() bool { return !e.IsZero() }

func (e extElem) Equal(b Element) bool {
	o := b.(extElem)
	if e.f != o.f {
		panic("ring: comparing elements of distinct rings")
	}
	for i := range e.c {
		if e.c[i] != o.c[i] {
			return false
		}
	}

	return true
}

// String renders highest degree first, e.g. "2*a^2 + a + 1"; zero is "0".
func (e extElem) String() string {
	var terms []string
	for i := e.f.k - 1; i >= 0; i-- {
		c := e.c[i]
		if c == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, strconv.FormatUint(c, 10))
		case i == 1 && c == 1:
			terms = append(terms, e.f.varn)
		case i == 1:
			terms = append(terms, fmt.Sprintf("%d*%s", c, e.f.varn))
		case c == 1:
			terms = append(terms, fmt.Sprintf("%s^%d", e.f.varn, i))
		default:
			terms = append(terms, fmt.Sprintf("%d*%s^%d", c, e.f.varn, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}
