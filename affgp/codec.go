// SPDX-License-Identifier: MIT

// Package affgp: gob serialization for elements. The wire form carries
// only the group parameters (degree, ring name) plus the element data as
// ring-native strings; decoding rebuilds the element inside the
// canonical group, so an element round-tripped through gob is owned by
// the identical *Group it started from.

package affgp

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/ademarov/affine/ring"
)

// elementWire is the gob payload of an Element. Entries travel as the
// base ring's String form and are re-parsed with FromString on decode,
// so the format is stable across processes regardless of the concrete
// element representation.
type elementWire struct {
	Degree int
	Ring   string
	A      []string
	B      []string
}

// GobEncode implements gob.GobEncoder.
func (e *Element) GobEncode() ([]byte, error) {
	d := e.g.degree
	w := elementWire{
		Degree: d,
		Ring:   e.g.base.Name(),
		A:      make([]string, 0, d*d),
		B:      make([]string, 0, d),
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			entry, err := e.a.At(i, j)
			if err != nil {
				return nil, err
			}
			w.A = append(w.A, entry.String())
		}
		entry, err := e.b.At(i)
		if err != nil {
			return nil, err
		}
		w.B = append(w.B, entry.String())
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, fmt.Errorf("affgp: encode element: %w", err)
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. The base ring is resolved by its
// canonical name, so the decoding process must have constructed the same
// ring beforehand (ErrUnknownRing otherwise). The decoded pair passes
// through the full NewElement validation and the element re-attaches to
// the canonical group for its parameters.
func (e *Element) GobDecode(data []byte) error {
	var w elementWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("affgp: decode element: %w", err)
	}

	base, err := ring.Lookup(w.Ring)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownRing, w.Ring)
	}
	g, err := New(w.Degree, base)
	if err != nil {
		return err
	}

	aData := make([]ring.Element, 0, len(w.A))
	for _, s := range w.A {
		entry, perr := base.FromString(s)
		if perr != nil {
			return fmt.Errorf("affgp: decode matrix entry %q: %w", s, perr)
		}
		aData = append(aData, entry)
	}
	bData := make([]ring.Element, 0, len(w.B))
	for _, s := range w.B {
		entry, perr := base.FromString(s)
		if perr != nil {
			return fmt.Errorf("affgp: decode vector entry %q: %w", s, perr)
		}
		bData = append(bData, entry)
	}

	a, err := g.MatrixSpace().New(aData)
	if err != nil {
		return err
	}
	b, err := g.VectorSpace().New(bData)
	if err != nil {
		return err
	}
	decoded, err := g.NewElement(a, b)
	if err != nil {
		return err
	}
	*e = *decoded

	return nil
}
