// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/ademarov/affine/ring"
)

// Inverse returns m⁻¹. Fails with ErrNonSquare for non-square input and
// ErrSingular when the determinant is not a unit of the base ring.
//
// Over a field the inverse is computed by Gauss–Jordan elimination with
// partial (first-non-zero) pivoting, O(n^3) ring operations. Over other
// rings (e.g. ZZ) it falls back to the adjugate divided by the unit
// determinant, which stays exact at O(n^5), acceptable at the small
// degrees affine groups are used with.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.sp.rows != m.sp.cols {
		return nil, fmt.Errorf("%dx%d: %w", m.sp.rows, m.sp.cols, ErrNonSquare)
	}
	if m.sp.base.IsField() {
		return m.inverseGaussJordan()
	}

	return m.inverseAdjugate()
}

func (m *Matrix) inverseGaussJordan() (*Matrix, error) {
	n := m.sp.rows

	b := make([]ring.Element, len(m.data))
	copy(b, m.data)
	inv, err := m.sp.Identity()
	if err != nil {
		return nil, err
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !b[r*n+col].IsZero() {
				pivot = r

				break
			}
		}
		if pivot < 0 {
			return nil, ErrSingular
		}
		if pivot != col {
			for j := 0; j < n; j++ {
				b[col*n+j], b[pivot*n+j] = b[pivot*n+j], b[col*n+j]
				inv.data[col*n+j], inv.data[pivot*n+j] = inv.data[pivot*n+j], inv.data[col*n+j]
			}
		}

		// Normalize the pivot row.
		pinv, ierr := b[col*n+col].Inv()
		if ierr != nil {
			return nil, ErrSingular
		}
		for j := 0; j < n; j++ {
			b[col*n+j] = pinv.Mul(b[col*n+j])
			inv.data[col*n+j] = pinv.Mul(inv.data[col*n+j])
		}

		// Eliminate the column everywhere else.
		for r := 0; r < n; r++ {
			if r == col || b[r*n+col].IsZero() {
				continue
			}
			factor := b[r*n+col]
			for j := 0; j < n; j++ {
				b[r*n+j] = b[r*n+j].Sub(factor.Mul(b[col*n+j]))
				inv.data[r*n+j] = inv.data[r*n+j].Sub(factor.Mul(inv.data[col*n+j]))
			}
		}
	}

	return inv, nil
}

func (m *Matrix) inverseAdjugate() (*Matrix, error) {
	n := m.sp.rows
	det, err := m.Det()
	if err != nil {
		return nil, err
	}
	detInv, err := det.Inv()
	if err != nil {
		return nil, ErrSingular
	}
	if n == 0 {
		return m.sp.Identity()
	}

	inv := m.sp.Zero()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minorDet, derr := m.minor(j, i).Det()
			if derr != nil {
				return nil, derr
			}
			if (i+j)%2 == 1 {
				minorDet = minorDet.Neg()
			}
			inv.data[i*n+j] = minorDet.Mul(detInv)
		}
	}

	return inv, nil
}

// minor returns the (n-1)×(n-1) matrix with row i and column j removed.
func (m *Matrix) minor(i, j int) *Matrix {
	n := m.sp.rows
	out := &Space{base: m.sp.base, rows: n - 1, cols: n - 1}
	data := make([]ring.Element, 0, (n-1)*(n-1))
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		for c := 0; c < n; c++ {
			if c == j {
				continue
			}
			data = append(data, m.data[r*n+c])
		}
	}

	return &Matrix{sp: out, data: data}
}
