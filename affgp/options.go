// SPDX-License-Identifier: MIT

// Package affgp: functional configuration for group construction.
// Default* constants are the single source of truth; WithX setters
// validate eagerly and panic only on nonsensical values (programmer
// error); gatherOptions resolves setters in order, last-writer-wins.

package affgp

import (
	"github.com/ademarov/affine/linalg"
)

const (
	// DefaultMaxAttempts bounds the resample-until-invertible loops in
	// Random and AnElement. Over reasonable rings a random matrix is
	// invertible with high probability, so the bound is generous; it
	// exists to turn a pathological ring into ErrSamplingExhausted
	// instead of a hang.
	DefaultMaxAttempts = 256

	// DefaultVar is the finite-field generator name used by
	// NewFiniteField when no WithVar option is supplied.
	DefaultVar = "a"
)

// CheckFunc validates a prospective element beyond invertibility. It is
// called with A and b already confirmed to lie in the group's matrix and
// vector spaces and with A already confirmed invertible; returning a
// non-nil error rejects the element. Subgroup hooks narrow membership,
// they can never widen it.
type CheckFunc func(a *linalg.Matrix, b *linalg.Vector) error

// Option mutates group construction parameters.
type Option func(*options)

type options struct {
	maxAttempts int
	varName     string
	check       CheckFunc
}

// WithMaxAttempts overrides the resampling budget of Random and
// AnElement. Non-positive values panic (programmer error).
func WithMaxAttempts(n int) Option {
	if n <= 0 {
		panic("affgp: WithMaxAttempts: attempt budget must be positive")
	}

	return func(o *options) { o.maxAttempts = n }
}

// WithVar sets the generator name used when NewFiniteField constructs an
// extension field. Empty names panic (programmer error).
func WithVar(name string) Option {
	if name == "" {
		panic("affgp: WithVar: generator name must be non-empty")
	}

	return func(o *options) { o.varName = name }
}

// WithElementCheck installs a subgroup membership hook. A group built
// with a hook is a specialized subgroup and is NOT canonicalized: it is
// a fresh instance distinct from the plain Aff_d(R) parent.
//
// The hook guards coercing construction (NewElement and the Linear and
// Reflection constructors). Translation bypasses it, as does sampling
// via Random and AnElement: those draw from the full matrix and vector
// spaces and guarantee invertibility only, so over a proper subgroup
// they may emit elements the hook would reject.
func WithElementCheck(check CheckFunc) Option {
	if check == nil {
		panic("affgp: WithElementCheck: check must be non-nil")
	}

	return func(o *options) { o.check = check }
}

func gatherOptions(opts ...Option) options {
	o := options{maxAttempts: DefaultMaxAttempts, varName: DefaultVar}
	for _, set := range opts {
		set(&o)
	}

	return o
}
