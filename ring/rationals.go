// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"math/rand"
)

const rationalsName = "Rational Field"

// Rationals returns the canonical field of rational numbers QQ.
func Rationals() Ring {
	return canonicalize(rationalsName, func() Ring { return ratRing{} })
}

type ratRing struct{}

func (ratRing) Zero() Element           { return ratElem{v: new(big.Rat)} }
func (ratRing) One() Element            { return ratElem{v: big.NewRat(1, 1)} }
func (ratRing) FromInt(n int64) Element { return ratElem{v: big.NewRat(n, 1)} }
func (ratRing) IsField() bool           { return true }
func (ratRing) Name() string            { return rationalsName }
func (ratRing) Latex() string           { return `\Bold{Q}` }

// AnElement returns 1/2, a fixed non-integral representative.
func (ratRing) AnElement() Element { return ratElem{v: big.NewRat(1, 2)} }

// Random draws num/den with num in [-span, span] and den in [1, span].
func (ratRing) Random(rnd *rand.Rand) Element {
	num := rnd.Int63n(2*randomIntSpan+1) - randomIntSpan
	den := 1 + rnd.Int63n(randomIntSpan)

	return ratElem{v: big.NewRat(num, den)}
}

func (ratRing) FromString(s string) (Element, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrBadLiteral)
	}

	return ratElem{v: v}, nil
}

// ratElem is an immutable arbitrary-precision rational.
type ratElem struct {
	v *big.Rat
}

func (e ratElem) Add(b Element) Element { return ratElem{v: new(big.Rat).Add(e.v, b.(ratElem).v)} }
func (e ratElem) Sub(b Element) Element { return ratElem{v: new(big.Rat).Sub(e.v, b.(ratElem).v)} }
func (e ratElem) Neg() Element          { return ratElem{v: new(big.Rat).Neg(e.v)} }
func (e ratElem) Mul(b Element) Element { return ratElem{v: new(big.Rat).Mul(e.v, b.(ratElem).v)} }

func (e ratElem) Div(b Element) (Element, error) {
	bv := b.(ratElem).v
	if bv.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return ratElem{v: new(big.Rat).Quo(e.v, bv)}, nil
}

func (e ratElem) Inv() (Element, error) {
	if e.v.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return ratElem{v: new(big.Rat).Inv(e.v)}, nil
}

func (e ratElem) IsZero() bool { return e.v.Sign() == 0 }
func (e ratElem) IsOne() bool  { return e.v.Cmp(big.NewRat(1, 1)) == 0 }
func (e ratElem) IsUnit() bool { return e.v.Sign() != 0 }

func (e ratElem) Equal(b Element) bool { return e.v.Cmp(b.(ratElem).v) == 0 }

// String renders "p/q" in lowest terms, or just "p" for integral values.
func (e ratElem) String() string { return e.v.RatString() }
