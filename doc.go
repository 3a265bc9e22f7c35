// Package affine is an in-memory toolkit for exact affine-transformation
// groups over commutative rings: build a base ring, lift it into matrix
// spaces and free modules, and work with the group of invertible maps
// x ↦ A·x + b.
//
// What is affine?
//
//	A small, exact (no floating point) library that brings together:
//		• Base rings: the integers, the rationals, prime fields GF(p),
//		  extension fields GF(p^k), and a fast BN254 scalar-field backend
//		• Matrix spaces and free modules generic over any base ring,
//		  with exact determinants, inversion and sampling
//		• Affine groups Aff_d(R): canonicalized parents, element
//		  construction (linear, translation, Householder reflection,
//		  random, canonical example), composition, inversion and the
//		  homogeneous (d+1)×(d+1) linear representation
//
// Why choose affine?
//
//   - Exact arithmetic – every kernel runs over ring elements, never floats
//   - Canonical parents – equal parameters yield the identical group
//     instance, process-wide and thread-safe
//   - Minimal API – element constructors validate invertibility up front
//     and return sentinel errors, never panic on user input
//
// Everything is organized under three subpackages:
//
//	ring/   — Ring and Element interfaces plus the shipped base rings
//	linalg/ — dense matrix spaces and free modules over a ring
//	affgp/  — the affine group factory and its element algebra
//
// Quick example:
//
//	G, _ := affgp.New(3, ring.Rationals())
//	g, _ := G.LinearFromInts(1, 2, 3, 4, 5, 6, 7, 8, 0)
//	t, _ := G.TranslationFromInts(10, 11, 12)
//	h, _ := g.Mul(t) // x ↦ A·(x + b)
//
// Dive into the subpackage docs for the full API surface.
//
//	go get github.com/ademarov/affine
package affine
