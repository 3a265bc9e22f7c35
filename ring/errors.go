// SPDX-License-Identifier: MIT
// Package ring: sentinel error set. All fallible operations in this package
// return these sentinels (possibly wrapped with context via fmt.Errorf and
// %w); tests and callers match them with errors.Is. Panics are reserved for
// programmer errors (mixing elements of distinct rings).

package ring

import "errors"

var (
	// ErrNotPrimePower is returned by FiniteField when the requested order
	// is not of the form p^k for a prime p and k >= 1.
	ErrNotPrimePower = errors.New("ring: order is not a prime power")

	// ErrDivisionByZero is returned by Div and Inv when the divisor is the
	// zero element.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrNotUnit is returned by Div and Inv when the divisor is non-zero
	// but has no multiplicative inverse in the ring (e.g. 2 in ZZ).
	ErrNotUnit = errors.New("ring: element is not a unit")

	// ErrBadLiteral is returned by FromString when the input does not parse
	// as an element of the ring.
	ErrBadLiteral = errors.New("ring: malformed element literal")

	// ErrUnknownRing is returned by Lookup when no ring with the given
	// canonical name has been constructed in this process.
	ErrUnknownRing = errors.New("ring: unknown ring name")
)
