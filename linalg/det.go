// SPDX-License-Identifier: MIT

// Package linalg: exact determinant via the Bareiss fraction-free scheme.
// Bareiss keeps every intermediate value in the base ring (the divisions
// by the previous pivot are exact over any integral domain), so the same
// kernel serves ZZ, QQ and finite fields without a fraction-field detour.

package linalg

import (
	"fmt"

	"github.com/ademarov/affine/ring"
)

// Det returns the determinant. Fails with ErrNonSquare for non-square
// matrices. The 0×0 determinant is 1 (empty product), so the 0×0 matrix
// counts as invertible. Complexity O(n^3) ring operations.
func (m *Matrix) Det() (ring.Element, error) {
	if m.sp.rows != m.sp.cols {
		return nil, fmt.Errorf("%dx%d: %w", m.sp.rows, m.sp.cols, ErrNonSquare)
	}
	n := m.sp.rows
	base := m.sp.base
	if n == 0 {
		return base.One(), nil
	}

	// Working copy; rows are swapped in place during pivoting.
	b := make([]ring.Element, len(m.data))
	copy(b, m.data)

	negate := false
	prev := base.One()
	for k := 0; k < n-1; k++ {
		// Pivot: first row at or below k with a non-zero entry in column k.
		if b[k*n+k].IsZero() {
			swap := -1
			for r := k + 1; r < n; r++ {
				if !b[r*n+k].IsZero() {
					swap = r

					break
				}
			}
			if swap < 0 {
				return base.Zero(), nil
			}
			for j := 0; j < n; j++ {
				b[k*n+j], b[swap*n+j] = b[swap*n+j], b[k*n+j]
			}
			negate = !negate
		}

		pivot := b[k*n+k]
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := b[i*n+j].Mul(pivot).Sub(b[i*n+k].Mul(b[k*n+j]))
				// Exact by the Bareiss identity; an inexact quotient here
				// would mean corrupted input, so surface it.
				q, err := num.Div(prev)
				if err != nil {
					return nil, fmt.Errorf("bareiss step (%d,%d): %w", i, j, err)
				}
				b[i*n+j] = q
			}
		}
		prev = pivot
	}

	det := b[(n-1)*n+(n-1)]
	if negate {
		det = det.Neg()
	}

	return det, nil
}

// IsInvertible reports whether the determinant is a unit of the base
// ring: over a field, simply non-zero; over ZZ, ±1.
func (m *Matrix) IsInvertible() bool {
	det, err := m.Det()
	if err != nil {
		return false
	}

	return det.IsUnit()
}
