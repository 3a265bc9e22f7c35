// Package ring defines the base-ring abstraction consumed by the rest of
// the module and ships the standard coefficient rings:
//
//   - Integers()    — the ring of integers ZZ (arbitrary precision)
//   - Rationals()   — the field of rational numbers QQ
//   - FiniteField(q) — GF(p) for prime q, GF(p^k) for a prime power q
//     (polynomial quotient representation, configurable generator name)
//   - BN254Scalars() — the BN254 scalar field Fr, backed by gnark-crypto
//     for workloads that want a fast fixed-modulus prime field
//
// Elements are immutable values: every arithmetic method returns a fresh
// Element and never mutates its operands. Division and inversion are the
// only fallible operations and return sentinel errors; mixing elements of
// different rings is a programmer error and panics.
//
// Every constructor canonicalizes through a process-wide registry: two
// calls with equal parameters return the identical Ring instance, so ring
// identity can be compared with ==. Lookup resolves a previously built
// ring from its canonical Name, which is what the affgp codec relies on
// to re-attach decoded elements to their canonical parent.
package ring
