// Package linalg offers dense matrix spaces and free modules generic over
// any ring.Ring, with exact arithmetic throughout.
//
// The linalg package provides:
//
//   - Space: an r×c matrix space over a base ring, acting as the factory
//     (and membership test) for Matrix values: zero, identity, coercion
//     from integer data, random sampling and a canonical example element.
//   - Matrix: immutable dense matrices with exact Add/Sub/Mul/Transpose,
//     a fraction-free Bareiss determinant, and inversion (Gauss–Jordan
//     over fields, adjugate over rings whose determinant is a unit).
//   - Module: a rank-n free module with Vector values supporting exact
//     addition, scaling and dot products.
//
// Matrices are stored row-major in a flat slice and never mutated after
// construction; every operation allocates its result. Dimensions are
// validated fail-fast and reported through package sentinel errors.
//
// Exactness is the design constraint: all kernels run over ring.Element
// values, so QQ, GF(p^k) and ZZ behave identically up to their unit
// groups. There is no epsilon anywhere in this package.
package linalg
