// SPDX-License-Identifier: MIT

// Package ring: the Ring and Element interfaces. Implementations live in
// dedicated files (integers.go, rationals.go, primefield.go, extfield.go,
// bn254.go); the canonical registry lives in registry.go.

package ring

import "math/rand"

// Element is an immutable element of a commutative ring. All arithmetic
// methods return a fresh Element; receivers and operands are never
// mutated. Operands must belong to the same ring as the receiver;
// mixing rings is a programmer error and panics.
type Element interface {
	// Add returns receiver + b.
	Add(b Element) Element

	// Sub returns receiver - b.
	Sub(b Element) Element

	// Neg returns the additive inverse of the receiver.
	Neg() Element

	// Mul returns receiver * b.
	Mul(b Element) Element

	// Div returns receiver / b. It fails with ErrDivisionByZero when b is
	// zero and with ErrNotUnit when b is non-zero but not invertible.
	// Over ZZ the quotient must be exact; a non-exact quotient of a unit
	// divisor cannot occur there (units are ±1).
	Div(b Element) (Element, error)

	// Inv returns the multiplicative inverse of the receiver, failing with
	// ErrDivisionByZero (zero receiver) or ErrNotUnit (non-unit receiver).
	Inv() (Element, error)

	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool

	// IsOne reports whether the receiver is the multiplicative identity.
	IsOne() bool

	// IsUnit reports whether the receiver has a multiplicative inverse.
	IsUnit() bool

	// Equal reports whether the receiver and b are the same element.
	Equal(b Element) bool

	// String returns the canonical textual form of the element. The form
	// round-trips through the owning ring's FromString.
	String() string
}

// Ring is a commutative ring with identity. Implementations returned by
// the constructors in this package are canonical: equal parameters yield
// the identical instance, so rings compare with ==.
type Ring interface {
	// Zero returns the additive identity.
	Zero() Element

	// One returns the multiplicative identity.
	One() Element

	// FromInt returns the image of n under the canonical map ZZ -> R.
	FromInt(n int64) Element

	// FromString parses the canonical textual form produced by
	// Element.String. Fails with ErrBadLiteral on malformed input.
	FromString(s string) (Element, error)

	// Random draws an element using rnd as the randomness source. The
	// distribution is implementation-defined but covers a spanning set of
	// small elements; finite rings draw uniformly.
	Random(rnd *rand.Rand) Element

	// AnElement returns a fixed, cheap, representative element. It is a
	// deterministic sample, not guaranteed to be a unit.
	AnElement() Element

	// IsField reports whether every non-zero element is a unit.
	IsField() bool

	// Name returns the canonical display name, e.g. "Rational Field" or
	// "Finite Field in a of size 2^2". Name doubles as the registry key.
	Name() string

	// Latex returns the typeset form of the ring, e.g. `\Bold{Q}`.
	Latex() string
}
