// SPDX-License-Identifier: MIT

// Package ring: functional configuration for the FiniteField constructor.
// Mirrors the module-wide convention: Default* constants as the single
// source of truth, WithX setters, and an internal gather step.

package ring

// DefaultVar is the generator name used for extension fields when no
// WithVar option is supplied.
const DefaultVar = "a"

// Option mutates FiniteField construction parameters.
type Option func(*options)

type options struct {
	varName string
}

// WithVar sets the generator name used to print and parse elements of an
// extension field GF(p^k), k > 1. Prime fields ignore it. The name
// participates in the ring's canonical Name, so GF(4,"a") and GF(4,"b")
// are distinct canonical rings. Empty names panic (programmer error).
func WithVar(name string) Option {
	if name == "" {
		panic("ring: WithVar: generator name must be non-empty")
	}

	return func(o *options) { o.varName = name }
}

func gatherOptions(opts ...Option) options {
	o := options{varName: DefaultVar}
	for _, set := range opts {
		set(&o)
	}

	return o
}
