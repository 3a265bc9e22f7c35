// SPDX-License-Identifier: MIT
// Package affgp: sentinel error set. Constructors fail fast and return
// these sentinels (possibly wrapped with context); callers and tests
// match them with errors.Is. Nothing in this package panics on user input.

package affgp

import "errors"

var (
	// ErrBadDegree is returned when a negative degree is requested.
	ErrBadDegree = errors.New("affgp: degree must be a non-negative integer")

	// ErrNilRing is returned when the base ring is nil.
	ErrNilRing = errors.New("affgp: base ring is nil")

	// ErrNotInvertible rejects an element whose linear part A is not
	// invertible over the base ring (validation error: such a pair is not
	// a group element).
	ErrNotInvertible = errors.New("affgp: A must be invertible")

	// ErrZeroNorm rejects a Householder reflection across a vector of
	// zero norm (domain error: the normalization factor is undefined).
	ErrZeroNorm = errors.New("affgp: v has norm zero")

	// ErrWrongSpace rejects matrix or vector data that does not lie in
	// the group's matrix space / vector space.
	ErrWrongSpace = errors.New("affgp: operand outside the group's spaces")

	// ErrMismatchedGroups rejects binary operations on elements owned by
	// different groups.
	ErrMismatchedGroups = errors.New("affgp: elements from different groups")

	// ErrSamplingExhausted is returned by Random and AnElement when no
	// invertible matrix was found within the attempt budget (possible
	// over degenerate rings where invertible matrices are rare).
	ErrSamplingExhausted = errors.New("affgp: no invertible matrix found within attempt budget")

	// ErrUnknownRing is returned by gob decoding when the encoded base
	// ring has not been constructed in this process.
	ErrUnknownRing = errors.New("affgp: decoded ring not constructed in this process")
)
