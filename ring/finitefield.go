// SPDX-License-Identifier: MIT

package ring

import "fmt"

// FiniteField returns the canonical finite field of the given order.
//
// The order must be a prime power p^k. For k == 1 the field is the prime
// field GF(p); for k > 1 it is the extension field GF(p^k) in its
// polynomial quotient representation, printed in terms of a generator
// whose name defaults to "a" (see WithVar).
//
// Construction fails with ErrNotPrimePower for orders that are not prime
// powers (including 0 and 1). Repeated calls with equal parameters return
// the identical Ring instance.
func FiniteField(order uint64, opts ...Option) (Ring, error) {
	o := gatherOptions(opts...)

	p, k, err := factorPrimePower(order)
	if err != nil {
		return nil, err
	}
	if k == 1 {
		return newPrimeField(p), nil
	}

	return newExtField(p, k, o.varName), nil
}

// factorPrimePower writes order as p^k for a prime p, or fails with
// ErrNotPrimePower. Orders fit in uint64, so trial division suffices.
func factorPrimePower(order uint64) (p uint64, k int, err error) {
	if order < 2 {
		return 0, 0, fmt.Errorf("order %d: %w", order, ErrNotPrimePower)
	}

	p = smallestPrimeFactor(order)
	for n := order; n > 1; n /= p {
		if n%p != 0 {
			return 0, 0, fmt.Errorf("order %d: %w", order, ErrNotPrimePower)
		}
		k++
	}

	return p, k, nil
}

func smallestPrimeFactor(n uint64) uint64 {
	if n%2 == 0 {
		return 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}

	return n
}
