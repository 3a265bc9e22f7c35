// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"strings"

	"github.com/ademarov/affine/ring"
)

// Matrix is a dense matrix over its space's base ring, stored row-major
// in a flat slice. Matrices are immutable: every operation returns a
// freshly allocated result and operands are never modified.
type Matrix struct {
	sp   *Space
	data []ring.Element
}

// Space returns the matrix space this matrix belongs to.
func (m *Matrix) Space() *Space { return m.sp }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.sp.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.sp.cols }

// At returns the element at (i, j), or ErrOutOfRange for invalid indices.
func (m *Matrix) At(i, j int) (ring.Element, error) {
	if i < 0 || i >= m.sp.rows || j < 0 || j >= m.sp.cols {
		return nil, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.sp.rows, m.sp.cols, ErrOutOfRange)
	}

	return m.data[i*m.sp.cols+j], nil
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]ring.Element, len(m.data))
	copy(data, m.data)

	return &Matrix{sp: m.sp, data: data}
}

// Add returns m + o. Operands must come from equal spaces.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if !m.sp.Equal(o.sp) {
		return nil, ErrMismatchedSpaces
	}
	data := make([]ring.Element, len(m.data))
	for i := range data {
		data[i] = m.data[i].Add(o.data[i])
	}

	return &Matrix{sp: m.sp, data: data}, nil
}

// Sub returns m - o. Operands must come from equal spaces.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	if !m.sp.Equal(o.sp) {
		return nil, ErrMismatchedSpaces
	}
	data := make([]ring.Element, len(m.data))
	for i := range data {
		data[i] = m.data[i].Sub(o.data[i])
	}

	return &Matrix{sp: m.sp, data: data}, nil
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	data := make([]ring.Element, len(m.data))
	for i := range data {
		data[i] = m.data[i].Neg()
	}

	return &Matrix{sp: m.sp, data: data}
}

// Scale returns c·m for a scalar c of the base ring.
func (m *Matrix) Scale(c ring.Element) *Matrix {
	data := make([]ring.Element, len(m.data))
	for i := range data {
		data[i] = c.Mul(m.data[i])
	}

	return &Matrix{sp: m.sp, data: data}
}

// Mul returns the matrix product m·o. The operands must share a base
// ring and have compatible inner dimensions; the result lives in the
// (m.Rows × o.Cols) space over the same ring. Fixed i→k→j loop order,
// zero-skip on the left operand. Complexity O(r·n·c) ring operations.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.sp.base != o.sp.base {
		return nil, ErrMismatchedSpaces
	}
	if m.sp.cols != o.sp.rows {
		return nil, fmt.Errorf("%dx%d by %dx%d: %w", m.sp.rows, m.sp.cols, o.sp.rows, o.sp.cols, ErrDimensionMismatch)
	}
	out, err := NewSpace(m.sp.base, m.sp.rows, o.sp.cols)
	if err != nil {
		return nil, err
	}
	res := out.Zero()
	rows, inner, cols := m.sp.rows, m.sp.cols, o.sp.cols
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			mik := m.data[i*inner+k]
			if mik.IsZero() {
				continue
			}
			for j := 0; j < cols; j++ {
				res.data[i*cols+j] = res.data[i*cols+j].Add(mik.Mul(o.data[k*cols+j]))
			}
		}
	}

	return res, nil
}

// MulVec returns the image m·x. The vector's rank must equal the column
// count; the result is a vector of rank m.Rows over the same ring.
func (m *Matrix) MulVec(x *Vector) (*Vector, error) {
	if m.sp.base != x.mod.base {
		return nil, ErrMismatchedSpaces
	}
	if x.mod.rank != m.sp.cols {
		return nil, fmt.Errorf("rank %d against %d columns: %w", x.mod.rank, m.sp.cols, ErrDimensionMismatch)
	}
	out, err := NewModule(m.sp.base, m.sp.rows)
	if err != nil {
		return nil, err
	}
	y := out.Zero()
	for i := 0; i < m.sp.rows; i++ {
		acc := m.sp.base.Zero()
		for j := 0; j < m.sp.cols; j++ {
			acc = acc.Add(m.data[i*m.sp.cols+j].Mul(x.data[j]))
		}
		y.data[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ in the (cols × rows) space over the same ring.
func (m *Matrix) Transpose() *Matrix {
	out := &Space{base: m.sp.base, rows: m.sp.cols, cols: m.sp.rows}
	data := make([]ring.Element, len(m.data))
	for i := 0; i < m.sp.rows; i++ {
		for j := 0; j < m.sp.cols; j++ {
			data[j*m.sp.rows+i] = m.data[i*m.sp.cols+j]
		}
	}

	return &Matrix{sp: out, data: data}
}

// Equal reports entry-wise equality of matrices from equal spaces.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || !m.sp.Equal(o.sp) {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// RowStrings renders each row as a bracketed, column-aligned string,
// e.g. "[1 2 3]". Used by String and by the affine element display.
func (m *Matrix) RowStrings() []string {
	widths := make([]int, m.sp.cols)
	cells := make([]string, len(m.data))
	for i := 0; i < m.sp.rows; i++ {
		for j := 0; j < m.sp.cols; j++ {
			s := m.data[i*m.sp.cols+j].String()
			cells[i*m.sp.cols+j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	rows := make([]string, m.sp.rows)
	var b strings.Builder
	for i := 0; i < m.sp.rows; i++ {
		b.Reset()
		b.WriteByte('[')
		for j := 0; j < m.sp.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			s := cells[i*m.sp.cols+j]
			for pad := widths[j] - len(s); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(s)
		}
		b.WriteByte(']')
		rows[i] = b.String()
	}

	return rows
}

// String renders the matrix one bracketed row per line.
func (m *Matrix) String() string {
	if m.sp.rows == 0 || m.sp.cols == 0 {
		return "[]"
	}

	return strings.Join(m.RowStrings(), "\n")
}
