// SPDX-License-Identifier: MIT

// Package affgp: the special element constructors (general linear
// transformations, translations, Householder reflections). Each returns
// an element of the receiver group with an invertible linear part, or a
// sentinel error.

package affgp

import (
	"fmt"

	"github.com/ademarov/affine/linalg"
	"github.com/ademarov/affine/ring"
)

// Linear returns the general linear transformation x ↦ A·x (zero
// translation). A must lie in the group's matrix space and be
// invertible; the subgroup hook, if any, also applies.
func (g *Group) Linear(a *linalg.Matrix) (*Element, error) {
	return g.NewElement(a, g.VectorSpace().Zero())
}

// LinearFromInts coerces flat row-major integer data into the matrix
// space and builds the linear transformation it determines.
func (g *Group) LinearFromInts(vals ...int64) (*Element, error) {
	a, err := g.MatrixSpace().FromInts(vals...)
	if err != nil {
		return nil, err
	}

	return g.Linear(a)
}

// Translation returns the translation x ↦ x + b. The identity linear
// part is always invertible, so translations never fail membership; b
// only needs to lie in the vector space.
func (g *Group) Translation(b *linalg.Vector) (*Element, error) {
	if !g.VectorSpace().Contains(b) {
		return nil, ErrWrongSpace
	}
	id, err := g.MatrixSpace().Identity()
	if err != nil {
		return nil, err
	}

	return &Element{g: g, a: id, b: b}, nil
}

// TranslationFromInts coerces integer data into the vector space and
// builds the translation it determines.
func (g *Group) TranslationFromInts(vals ...int64) (*Element, error) {
	b, err := g.VectorSpace().FromInts(vals...)
	if err != nil {
		return nil, err
	}

	return g.Translation(b)
}

// Reflection returns the Householder reflection at the hyperplane
// perpendicular to v:
//
//	A = I − (2/⟨v,v⟩)·v·vᵀ,  zero translation.
//
// It fails with ErrZeroNorm when ⟨v,v⟩ = 0 (the normalization factor is
// undefined) and propagates the base ring's error when 2/⟨v,v⟩ does not
// exist in the ring (e.g. a non-unit norm over ZZ). The resulting matrix
// is validated like any other element.
func (g *Group) Reflection(v *linalg.Vector) (*Element, error) {
	if !g.VectorSpace().Contains(v) {
		return nil, ErrWrongSpace
	}
	norm, err := v.Dot(v)
	if err != nil {
		return nil, err
	}
	if norm.IsZero() {
		return nil, ErrZeroNorm
	}
	factor, err := g.base.FromInt(2).Div(norm)
	if err != nil {
		return nil, fmt.Errorf("normalization 2/⟨v,v⟩: %w", err)
	}

	d := g.degree
	data := make([]ring.Element, 0, d*d)
	for i := 0; i < d; i++ {
		vi, aerr := v.At(i)
		if aerr != nil {
			return nil, aerr
		}
		for j := 0; j < d; j++ {
			vj, aerr := v.At(j)
			if aerr != nil {
				return nil, aerr
			}
			entry := vi.Mul(vj).Mul(factor).Neg()
			if i == j {
				entry = entry.Add(g.base.One())
			}
			data = append(data, entry)
		}
	}
	a, err := g.MatrixSpace().New(data)
	if err != nil {
		return nil, err
	}

	return g.NewElement(a, g.VectorSpace().Zero())
}

// ReflectionFromInts coerces integer data into the vector space and
// builds the Householder reflection it determines.
func (g *Group) ReflectionFromInts(vals ...int64) (*Element, error) {
	v, err := g.VectorSpace().FromInts(vals...)
	if err != nil {
		return nil, err
	}

	return g.Reflection(v)
}
