// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math/rand"

	"github.com/ademarov/affine/ring"
)

// Space is the space of rows×cols dense matrices over a base ring. It is
// the factory for Matrix values: matrices remember their space, and
// binary operations require both operands to come from equal spaces
// (same shape, identical base ring).
type Space struct {
	base ring.Ring
	rows int
	cols int
}

// NewSpace returns the rows×cols matrix space over base. Negative
// dimensions fail with ErrBadShape; zero dimensions are legal and yield
// empty matrices (the 0×0 identity is vacuously invertible).
func NewSpace(base ring.Ring, rows, cols int) (*Space, error) {
	if base == nil {
		return nil, ErrNilRing
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}

	return &Space{base: base, rows: rows, cols: cols}, nil
}

// BaseRing returns the coefficient ring.
func (s *Space) BaseRing() ring.Ring { return s.base }

// Rows returns the row count of matrices in this space.
func (s *Space) Rows() int { return s.rows }

// Cols returns the column count of matrices in this space.
func (s *Space) Cols() int { return s.cols }

// Equal reports whether o describes the same space: equal shape over the
// identical (canonical) base ring.
func (s *Space) Equal(o *Space) bool {
	return o != nil && s.base == o.base && s.rows == o.rows && s.cols == o.cols
}

// Contains reports whether m is an element of this space.
func (s *Space) Contains(m *Matrix) bool { return m != nil && s.Equal(m.sp) }

// Zero returns the zero matrix.
func (s *Space) Zero() *Matrix {
	data := make([]ring.Element, s.rows*s.cols)
	for i := range data {
		data[i] = s.base.Zero()
	}

	return &Matrix{sp: s, data: data}
}

// Identity returns the identity matrix. Fails with ErrNonSquare on
// non-square spaces.
func (s *Space) Identity() (*Matrix, error) {
	if s.rows != s.cols {
		return nil, fmt.Errorf("%dx%d: %w", s.rows, s.cols, ErrNonSquare)
	}
	m := s.Zero()
	for i := 0; i < s.rows; i++ {
		m.data[i*s.cols+i] = s.base.One()
	}

	return m, nil
}

// New coerces a flat row-major element slice into this space. The data
// length must be exactly rows*cols (ErrDimensionMismatch otherwise); the
// slice is copied, never aliased.
func (s *Space) New(data []ring.Element) (*Matrix, error) {
	if len(data) != s.rows*s.cols {
		return nil, fmt.Errorf("got %d entries, want %d: %w", len(data), s.rows*s.cols, ErrDimensionMismatch)
	}
	out := make([]ring.Element, len(data))
	copy(out, data)

	return &Matrix{sp: s, data: out}, nil
}

// FromInts coerces flat row-major integer data through the base ring's
// canonical map ZZ -> R.
func (s *Space) FromInts(vals ...int64) (*Matrix, error) {
	if len(vals) != s.rows*s.cols {
		return nil, fmt.Errorf("got %d entries, want %d: %w", len(vals), s.rows*s.cols, ErrDimensionMismatch)
	}
	data := make([]ring.Element, len(vals))
	for i, v := range vals {
		data[i] = s.base.FromInt(v)
	}

	return &Matrix{sp: s, data: data}, nil
}

// FromRows coerces row-slices of integers; every row must have exactly
// cols entries.
func (s *Space) FromRows(rows [][]int64) (*Matrix, error) {
	if len(rows) != s.rows {
		return nil, fmt.Errorf("got %d rows, want %d: %w", len(rows), s.rows, ErrDimensionMismatch)
	}
	data := make([]ring.Element, 0, s.rows*s.cols)
	for i, row := range rows {
		if len(row) != s.cols {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), s.cols, ErrDimensionMismatch)
		}
		for _, v := range row {
			data = append(data, s.base.FromInt(v))
		}
	}

	return &Matrix{sp: s, data: data}, nil
}

// Random returns a matrix with entries drawn independently from the base
// ring's Random. Invertibility is not guaranteed; callers that need an
// invertible sample must resample (see affgp).
func (s *Space) Random(rnd *rand.Rand) *Matrix {
	data := make([]ring.Element, s.rows*s.cols)
	for i := range data {
		data[i] = s.base.Random(rnd)
	}

	return &Matrix{sp: s, data: data}
}

// AnElement returns a fixed, cheap representative: entry (i,j) is the
// image of its flat index under ZZ -> R. Deterministic, not guaranteed
// invertible.
func (s *Space) AnElement() *Matrix {
	data := make([]ring.Element, s.rows*s.cols)
	for i := range data {
		data[i] = s.base.FromInt(int64(i))
	}

	return &Matrix{sp: s, data: data}
}

// String follows the base ring's display convention, e.g.
// "Full MatrixSpace of 3 by 3 dense matrices over Rational Field".
func (s *Space) String() string {
	return fmt.Sprintf("Full MatrixSpace of %d by %d dense matrices over %s", s.rows, s.cols, s.base.Name())
}
