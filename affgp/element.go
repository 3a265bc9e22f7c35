// SPDX-License-Identifier: MIT

package affgp

import (
	"fmt"
	"strings"

	"github.com/ademarov/affine/linalg"
	"github.com/ademarov/affine/ring"
)

// Element is an affine transformation x ↦ A·x + b owned by exactly one
// group. Elements are immutable once constructed, and every element ever
// returned by this package has an invertible linear part.
type Element struct {
	g *Group
	a *linalg.Matrix
	b *linalg.Vector
}

// NewElement coerces an (A, b) pair into a group element. A must lie in
// the group's matrix space and b in its vector space (ErrWrongSpace),
// A must be invertible (ErrNotInvertible), and any subgroup hook
// installed with WithElementCheck must accept the pair.
func (g *Group) NewElement(a *linalg.Matrix, b *linalg.Vector) (*Element, error) {
	if !g.MatrixSpace().Contains(a) || !g.VectorSpace().Contains(b) {
		return nil, ErrWrongSpace
	}
	if err := g.checkElement(a, b); err != nil {
		return nil, err
	}

	return &Element{g: g, a: a, b: b}, nil
}

// NewElementFromInts coerces flat row-major matrix data and vector data
// through the base ring, then validates as NewElement does.
func (g *Group) NewElementFromInts(aVals []int64, bVals []int64) (*Element, error) {
	a, err := g.MatrixSpace().FromInts(aVals...)
	if err != nil {
		return nil, err
	}
	b, err := g.VectorSpace().FromInts(bVals...)
	if err != nil {
		return nil, err
	}

	return g.NewElement(a, b)
}

// checkElement is the membership pipeline: the unconditional
// invertibility requirement first, then the optional subgroup hook.
// The hook can reject further but never bypasses the invertibility check.
func (g *Group) checkElement(a *linalg.Matrix, b *linalg.Vector) error {
	if !a.IsInvertible() {
		return ErrNotInvertible
	}
	if g.check != nil {
		if err := g.check(a, b); err != nil {
			return fmt.Errorf("affgp: element check: %w", err)
		}
	}

	return nil
}

// Group returns the owning group.
func (e *Element) Group() *Group { return e.g }

// A returns the linear part. The matrix is immutable; the returned
// pointer is shared, not copied.
func (e *Element) A() *linalg.Matrix { return e.a }

// B returns the translation part.
func (e *Element) B() *linalg.Vector { return e.b }

// Mul returns the composition e∘o: first apply o, then e, i.e.
// (A1, b1)·(A2, b2) = (A1·A2, A1·b2 + b1). Both elements must be owned
// by the same group. The product of invertible linear parts is
// invertible, so no re-validation is performed.
func (e *Element) Mul(o *Element) (*Element, error) {
	if e.g != o.g {
		return nil, ErrMismatchedGroups
	}
	a, err := e.a.Mul(o.a)
	if err != nil {
		return nil, err
	}
	ab, err := e.a.MulVec(o.b)
	if err != nil {
		return nil, err
	}
	b, err := ab.Add(e.b)
	if err != nil {
		return nil, err
	}

	return &Element{g: e.g, a: a, b: b}, nil
}

// Inverse returns the group inverse (A⁻¹, -A⁻¹·b).
func (e *Element) Inverse() (*Element, error) {
	ainv, err := e.a.Inverse()
	if err != nil {
		return nil, err
	}
	bimg, err := ainv.MulVec(e.b)
	if err != nil {
		return nil, err
	}

	return &Element{g: e.g, a: ainv, b: bimg.Neg()}, nil
}

// Apply returns the image A·x + b of a vector from the group's vector
// space.
func (e *Element) Apply(x *linalg.Vector) (*linalg.Vector, error) {
	if !e.g.VectorSpace().Contains(x) {
		return nil, ErrWrongSpace
	}
	img, err := e.a.MulVec(x)
	if err != nil {
		return nil, err
	}

	return img.Add(e.b)
}

// Matrix returns the homogeneous representation [[A, b], [0, 1]] in the
// group's LinearSpace: applied to the lifted vector (x, 1) it reproduces
// (A·x + b, 1).
func (e *Element) Matrix() (*linalg.Matrix, error) {
	d := e.g.degree
	data := make([]ring.Element, 0, (d+1)*(d+1))
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			entry, err := e.a.At(i, j)
			if err != nil {
				return nil, err
			}
			data = append(data, entry)
		}
		entry, err := e.b.At(i)
		if err != nil {
			return nil, err
		}
		data = append(data, entry)
	}
	for j := 0; j < d; j++ {
		data = append(data, e.g.base.Zero())
	}
	data = append(data, e.g.base.One())

	return e.g.LinearSpace().New(data)
}

// IsOne reports whether e is the identity transformation.
func (e *Element) IsOne() bool { return e.Equal(e.g.One()) }

// Equal reports whether e and o are the same transformation of the same
// group.
func (e *Element) Equal(o *Element) bool {
	return o != nil && e.g == o.g && e.a.Equal(o.a) && e.b.Equal(o.b)
}

// String renders the transformation in block form:
//
//	      [1 2 3]     [10]
//	x |-> [4 5 6] x + [11]
//	      [7 8 0]     [12]
//
// Degree-0 elements render as "x |-> x".
func (e *Element) String() string {
	d := e.g.degree
	if d == 0 {
		return "x |-> x"
	}
	rowsA := e.a.RowStrings()
	rowsB := e.b.ColumnStrings()
	mid := d / 2

	const arrow = "x |-> "
	lines := make([]string, d)
	for i := 0; i < d; i++ {
		if i == mid {
			lines[i] = arrow + rowsA[i] + " x + " + rowsB[i]

			continue
		}
		lines[i] = strings.Repeat(" ", len(arrow)) + rowsA[i] + "     " + rowsB[i]
	}

	return strings.Join(lines, "\n")
}

// Latex returns the typeset form x \mapsto A x + b with A and b rendered
// as pmatrix blocks. Degree-0 elements render as the identity.
func (e *Element) Latex() string {
	d := e.g.degree
	if d == 0 {
		return `x \mapsto x`
	}
	rowsA := make([]string, d)
	rowsB := make([]string, d)
	for i := 0; i < d; i++ {
		cells := make([]string, d)
		for j := 0; j < d; j++ {
			entry, _ := e.a.At(i, j)
			cells[j] = entry.String()
		}
		rowsA[i] = strings.Join(cells, " & ")
		entry, _ := e.b.At(i)
		rowsB[i] = entry.String()
	}

	return fmt.Sprintf(`x \mapsto \begin{pmatrix}%s\end{pmatrix} x + \begin{pmatrix}%s\end{pmatrix}`,
		strings.Join(rowsA, ` \\ `), strings.Join(rowsB, ` \\ `))
}
