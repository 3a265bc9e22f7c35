// SPDX-License-Identifier: MIT

package ring

import "github.com/ademarov/affine/internal/canonical"

// registry canonicalizes ring instances by Name so that equal construction
// parameters yield the identical Ring (unique representation). All ring
// constructors in this package funnel through it.
var registry = canonical.New[Ring]()

// Lookup resolves a previously constructed ring from its canonical name.
// It fails with ErrUnknownRing when no such ring was built in this
// process. Lookup never constructs rings itself: decoding paths that rely
// on it must construct the ring (or have it constructed) first.
func Lookup(name string) (Ring, error) {
	r, ok := registry.Get(name)
	if !ok {
		return nil, ErrUnknownRing
	}

	return r, nil
}

// canonicalize stores-or-returns the unique instance for the given name.
// build must produce a ring whose Name() equals name.
func canonicalize(name string, build func() Ring) Ring {
	r, _ := registry.GetOrCreate(name, func() (Ring, error) { return build(), nil })

	return r
}
