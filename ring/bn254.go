// SPDX-License-Identifier: MIT

// Package ring: the BN254 scalar field Fr as a Ring backend. Arithmetic is
// delegated to gnark-crypto's Montgomery-form fr.Element, which keeps the
// hot paths allocation-free; the big.Int escape hatch is used only for
// parsing and random draws.

package ring

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const bn254Name = "BN254 Scalar Field"

// BN254Scalars returns the canonical scalar field of the BN254 curve, a
// prime field of ~254-bit order. It is interchangeable with any other
// Ring in this module while running fixed-modulus arithmetic at
// gnark-crypto speed.
func BN254Scalars() Ring {
	return canonicalize(bn254Name, func() Ring { return bnRing{} })
}

type bnRing struct{}

func (bnRing) Zero() Element {
	var z fr.Element

	return bnElem{v: z}
}

func (bnRing) One() Element {
	var z fr.Element
	z.SetOne()

	return bnElem{v: z}
}

func (bnRing) FromInt(n int64) Element {
	v := new(big.Int).Mod(big.NewInt(n), fr.Modulus())
	var z fr.Element
	z.SetBigInt(v)

	return bnElem{v: z}
}

func (bnRing) FromString(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrBadLiteral)
	}
	var z fr.Element
	z.SetBigInt(v.Mod(v, fr.Modulus()))

	return bnElem{v: z}, nil
}

// Random draws uniformly from [0, r) using the supplied source rather
// than crypto/rand, keeping seeded sampling reproducible.
func (bnRing) Random(rnd *rand.Rand) Element {
	v := new(big.Int).Rand(rnd, fr.Modulus())
	var z fr.Element
	z.SetBigInt(v)

	return bnElem{v: z}
}

func (bnRing) AnElement() Element { return bnRing{}.One() }
func (bnRing) IsField() bool      { return true }
func (bnRing) Name() string       { return bn254Name }
func (bnRing) Latex() string      { return `\Bold{F}_{r}` }

// bnElem is an immutable Fr element in Montgomery form.
type bnElem struct {
	v fr.Element
}

func (e bnElem) Add(b Element) Element {
	o := b.(bnElem)
	var z fr.Element
	z.Add(&e.v, &o.v)

	return bnElem{v: z}
}

func (e bnElem) Sub(b Element) Element {
	o := b.(bnElem)
	var z fr.Element
	z.Sub(&e.v, &o.v)

	return bnElem{v: z}
}

func (e bnElem) Neg() Element {
	var z fr.Element
	z.Neg(&e.v)

	return bnElem{v: z}
}

func (e bnElem) Mul(b Element) Element {
	o := b.(bnElem)
	var z fr.Element
	z.Mul(&e.v, &o.v)

	return bnElem{v: z}
}

func (e bnElem) Div(b Element) (Element, error) {
	inv, err := b.Inv()
	if err != nil {
		return nil, err
	}

	return e.Mul(inv), nil
}

func (e bnElem) Inv() (Element, error) {
	if e.v.IsZero() {
		return nil, ErrDivisionByZero
	}
	var z fr.Element
	z.Inverse(&e.v)

	return bnElem{v: z}, nil
}

func (e bnElem) IsZero() bool { return e.v.IsZero() }
func (e bnElem) IsOne() bool  { return e.v.IsOne() }
func (e bnElem) IsUnit() bool { return !e.v.IsZero() }

func (e bnElem) Equal(b Element) bool {
	o := b.(bnElem)

	return e.v.Equal(&o.v)
}

func (e bnElem) String() string { return e.v.String() }
