// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set. All fallible operations return these
// sentinels, optionally wrapped with context via fmt.Errorf and %w; tests
// and callers match them with errors.Is. No kernel panics on user input.

package linalg

import "errors"

var (
	// ErrNilRing indicates that a nil base ring was passed to a space or
	// module constructor.
	ErrNilRing = errors.New("linalg: base ring is nil")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows, columns or rank).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers return this, they do not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, or element data whose length does not match its space.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned by Inverse when the matrix determinant is
	// not a unit of the base ring.
	ErrSingular = errors.New("linalg: matrix is not invertible")

	// ErrMismatchedSpaces indicates that operands belong to different
	// spaces (distinct base rings or shapes).
	ErrMismatchedSpaces = errors.New("linalg: operands from different spaces")
)
