// Package affgp implements affine groups: for a degree d and a base ring
// R, the group Aff_d(R) of invertible affine transformations
//
//	x ↦ A·x + b
//
// of the rank-d free module over R, where A is an invertible d×d matrix
// and b a translation vector. The general linear group and the
// translations generate Aff_d(R) as a semidirect product GL_d(R) ⋉ R^d,
// and every element embeds into the (d+1)×(d+1) homogeneous
// representation [[A, b], [0, 1]] acting on lifted coordinates (x, 1).
//
// Groups are canonical parents: New with equal (degree, ring) parameters
// returns the identical *Group instance, process-wide and thread-safe, so
// group identity is pointer identity. Elements are immutable (A, b)
// pairs owned by exactly one group; every public constructor guarantees
// the linear part is invertible, failing with ErrNotInvertible otherwise.
//
// Element constructors:
//
//   - NewElement — coerce an (A, b) pair, with full membership validation
//   - Linear     — x ↦ A·x (zero translation)
//   - Translation — x ↦ x + b (identity linear part, always valid)
//   - Reflection — the Householder reflection across the hyperplane
//     orthogonal to v (ErrZeroNorm for zero-norm v)
//   - Random / AnElement — sampling with a bounded resample-until-
//     invertible loop (ErrSamplingExhausted if the bound is hit)
//
// Specialized subgroups narrow membership through WithElementCheck: the
// injected hook runs after the unconditional invertibility check, so it
// can only reject further, never widen the accepted set.
//
// Elements gob-encode; decoding re-attaches them to the canonical parent
// group for their (degree, ring) pair, provided the ring has been
// constructed in the decoding process.
package affgp
