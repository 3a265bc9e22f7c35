// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"math/rand"
)

const integersName = "Integer Ring"

// randomIntSpan bounds the support of Integers().Random to [-span, span].
// Small magnitudes keep randomized matrix entries readable in failures.
const randomIntSpan = 9

// Integers returns the canonical ring of integers ZZ.
func Integers() Ring {
	return canonicalize(integersName, func() Ring { return intRing{} })
}

type intRing struct{}

func (intRing) Zero() Element            { return intElem{v: new(big.Int)} }
func (intRing) One() Element             { return intElem{v: big.NewInt(1)} }
func (intRing) FromInt(n int64) Element  { return intElem{v: big.NewInt(n)} }
func (intRing) IsField() bool            { return false }
func (intRing) Name() string             { return integersName }
func (intRing) Latex() string            { return `\Bold{Z}` }
func (intRing) AnElement() Element       { return intElem{v: big.NewInt(1)} }

func (intRing) Random(rnd *rand.Rand) Element {
	return intElem{v: big.NewInt(rnd.Int63n(2*randomIntSpan+1) - randomIntSpan)}
}

func (intRing) FromString(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrBadLiteral)
	}

	return intElem{v: v}, nil
}

// intElem is an immutable arbitrary-precision integer.
type intElem struct {
	v *big.Int
}

func (e intElem) Add(b Element) Element { return intElem{v: new(big.Int).Add(e.v, b.(intElem).v)} }
func (e intElem) Sub(b Element) Element { return intElem{v: new(big.Int).Sub(e.v, b.(intElem).v)} }
func (e intElem) Neg() Element          { return intElem{v: new(big.Int).Neg(e.v)} }
func (e intElem) Mul(b Element) Element { return intElem{v: new(big.Int).Mul(e.v, b.(intElem).v)} }

// Div returns the exact quotient. Callers in this module only divide by
// values that divide the receiver exactly (Bareiss pivots, unit
// determinants); a non-exact division is reported as ErrNotUnit.
func (e intElem) Div(b Element) (Element, error) {
	bv := b.(intElem).v
	if bv.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(e.v, bv, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("%s / %s is not an integer: %w", e.v, bv, ErrNotUnit)
	}

	return intElem{v: q}, nil
}

func (e intElem) Inv() (Element, error) {
	if e.v.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if !e.IsUnit() {
		return nil, fmt.Errorf("%s: %w", e.v, ErrNotUnit)
	}

	// The only units of ZZ are ±1, each its own inverse.
	return intElem{v: new(big.Int).Set(e.v)}, nil
}

func (e intElem) IsZero() bool { return e.v.Sign() == 0 }
func (e intElem) IsOne() bool  { return e.v.Cmp(big.NewInt(1)) == 0 }
func (e intElem) IsUnit() bool { return e.v.CmpAbs(big.NewInt(1)) == 0 }

func (e intElem) Equal(b Element) bool { return e.v.Cmp(b.(intElem).v) == 0 }
func (e intElem) String() string       { return e.v.String() }
