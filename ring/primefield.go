// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"math/rand"
)

// primeField is GF(p) for a prime p, with elements represented by their
// canonical residues in [0, p).
type primeField struct {
	p    *big.Int
	name string
}

func newPrimeField(p uint64) Ring {
	name := fmt.Sprintf("Finite Field of size %d", p)

	return canonicalize(name, func() Ring {
		return &primeField{p: new(big.Int).SetUint64(p), name: name}
	})
}

func (f *primeField) Zero() Element { return pfElem{f: f, v: new(big.Int)} }
func (f *primeField) One() Element  { return pfElem{f: f, v: big.NewInt(1)} }

func (f *primeField) FromInt(n int64) Element {
	v := new(big.Int).Mod(big.NewInt(n), f.p)

	return pfElem{f: f, v: v}
}

func (f *primeField) FromString(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrBadLiteral)
	}

	return pfElem{f: f, v: v.Mod(v, f.p)}, nil
}

// Random draws uniformly from [0, p).
func (f *primeField) Random(rnd *rand.Rand) Element {
	return pfElem{f: f, v: new(big.Int).Rand(rnd, f.p)}
}

func (f *primeField) AnElement() Element { return f.One() }
func (f *primeField) IsField() bool      { return true }
func (f *primeField) Name() string       { return f.name }
func (f *primeField) Latex() string      { return fmt.Sprintf(`\Bold{F}_{%s}`, f.p) }

// pfElem is an immutable residue modulo the field characteristic.
type pfElem struct {
	f *primeField
	v *big.Int
}

func (e pfElem) wrap(v *big.Int) pfElem { return pfElem{f: e.f, v: v.Mod(v, e.f.p)} }

func (e pfElem) Add(b Element) Element { return e.wrap(new(big.Int).Add(e.v, b.(pfElem).v)) }
func (e pfElem) Sub(b Element) Element { return e.wrap(new(big.Int).Sub(e.v, b.(pfElem).v)) }
func (e pfElem) Neg() Element          { return e.wrap(new(big.Int).Neg(e.v)) }
func (e pfElem) Mul(b Element) Element { return e.wrap(new(big.Int).Mul(e.v, b.(pfElem).v)) }

func (e pfElem) Div(b Element) (Element, error) {
	inv, err := b.Inv()
	if err != nil {
		return nil, err
	}

	return e.Mul(inv), nil
}

func (e pfElem) Inv() (Element, error) {
	if e.v.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return pfElem{f: e.f, v: new(big.Int).ModInverse(e.v, e.f.p)}, nil
}

func (e pfElem) IsZero() bool { return e.v.Sign() == 0 }
func (e pfElem) IsOne() bool  { return e.v.Cmp(big.NewInt(1)) == 0 }
func (e pfElem) IsUnit() bool { return e.v.Sign() != 0 }

func (e pfElem) Equal(b Element) bool {
	o := b.(pfElem)
	if e.f != o.f {
		panic("ring: comparing elements of distinct rings")
	}

	return e.v.Cmp(o.v) == 0
}
func (e pfElem) String() string       { return e.v.String() }
