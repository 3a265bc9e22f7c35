// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ademarov/affine/ring"
)

// Module is the rank-n free module R^n over a base ring, the factory and
// membership test for Vector values.
type Module struct {
	base ring.Ring
	rank int
}

// NewModule returns the rank-n free module over base. Negative ranks fail
// with ErrBadShape; rank 0 is legal.
func NewModule(base ring.Ring, rank int) (*Module, error) {
	if base == nil {
		return nil, ErrNilRing
	}
	if rank < 0 {
		return nil, fmt.Errorf("rank %d: %w", rank, ErrBadShape)
	}

	return &Module{base: base, rank: rank}, nil
}

// BaseRing returns the coefficient ring.
func (md *Module) BaseRing() ring.Ring { return md.base }

// Dimension returns the rank of the module.
func (md *Module) Dimension() int { return md.rank }

// Equal reports whether o is the same module: equal rank over the
// identical base ring.
func (md *Module) Equal(o *Module) bool {
	return o != nil && md.base == o.base && md.rank == o.rank
}

// Contains reports whether v is an element of this module.
func (md *Module) Contains(v *Vector) bool { return v != nil && md.Equal(v.mod) }

// Zero returns the zero vector.
func (md *Module) Zero() *Vector {
	data := make([]ring.Element, md.rank)
	for i := range data {
		data[i] = md.base.Zero()
	}

	return &Vector{mod: md, data: data}
}

// New coerces an element slice into this module; the length must match
// the rank and the slice is copied.
func (md *Module) New(data []ring.Element) (*Vector, error) {
	if len(data) != md.rank {
		return nil, fmt.Errorf("got %d entries, want %d: %w", len(data), md.rank, ErrDimensionMismatch)
	}
	out := make([]ring.Element, len(data))
	copy(out, data)

	return &Vector{mod: md, data: out}, nil
}

// FromInts coerces integer data through the canonical map ZZ -> R.
func (md *Module) FromInts(vals ...int64) (*Vector, error) {
	if len(vals) != md.rank {
		return nil, fmt.Errorf("got %d entries, want %d: %w", len(vals), md.rank, ErrDimensionMismatch)
	}
	data := make([]ring.Element, len(vals))
	for i, v := range vals {
		data[i] = md.base.FromInt(v)
	}

	return &Vector{mod: md, data: data}, nil
}

// Random returns a vector with entries drawn independently from the base
// ring's Random.
func (md *Module) Random(rnd *rand.Rand) *Vector {
	data := make([]ring.Element, md.rank)
	for i := range data {
		data[i] = md.base.Random(rnd)
	}

	return &Vector{mod: md, data: data}
}

// AnElement returns the first standard basis vector (1, 0, ..., 0), or
// the empty vector at rank 0.
func (md *Module) AnElement() *Vector {
	v := md.Zero()
	if md.rank > 0 {
		v.data[0] = md.base.One()
	}

	return v
}

// String follows the display convention of the base ring, e.g.
// "Free module of rank 3 over Rational Field".
func (md *Module) String() string {
	return fmt.Sprintf("Free module of rank %d over %s", md.rank, md.base.Name())
}

// Vector is an immutable element of a free module.
type Vector struct {
	mod  *Module
	data []ring.Element
}

// Module returns the free module this vector belongs to.
func (v *Vector) Module() *Module { return v.mod }

// Len returns the rank of the owning module.
func (v *Vector) Len() int { return v.mod.rank }

// At returns the entry at index i, or ErrOutOfRange.
func (v *Vector) At(i int) (ring.Element, error) {
	if i < 0 || i >= v.mod.rank {
		return nil, fmt.Errorf("index %d of rank %d: %w", i, v.mod.rank, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Add returns v + o from the same module.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if !v.mod.Equal(o.mod) {
		return nil, ErrMismatchedSpaces
	}
	data := make([]ring.Element, len(v.data))
	for i := range data {
		data[i] = v.data[i].Add(o.data[i])
	}

	return &Vector{mod: v.mod, data: data}, nil
}

// Sub returns v - o from the same module.
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if !v.mod.Equal(o.mod) {
		return nil, ErrMismatchedSpaces
	}
	data := make([]ring.Element, len(v.data))
	for i := range data {
		data[i] = v.data[i].Sub(o.data[i])
	}

	return &Vector{mod: v.mod, data: data}, nil
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	data := make([]ring.Element, len(v.data))
	for i := range data {
		data[i] = v.data[i].Neg()
	}

	return &Vector{mod: v.mod, data: data}
}

// Scale returns c·v for a scalar c of the base ring.
func (v *Vector) Scale(c ring.Element) *Vector {
	data := make([]ring.Element, len(v.data))
	for i := range data {
		data[i] = c.Mul(v.data[i])
	}

	return &Vector{mod: v.mod, data: data}
}

// Dot returns the bilinear form Σ v_i·o_i of vectors from the same module.
func (v *Vector) Dot(o *Vector) (ring.Element, error) {
	if !v.mod.Equal(o.mod) {
		return nil, ErrMismatchedSpaces
	}
	acc := v.mod.base.Zero()
	for i := range v.data {
		acc = acc.Add(v.data[i].Mul(o.data[i]))
	}

	return acc, nil
}

// Equal reports entry-wise equality of vectors from the same module.
func (v *Vector) Equal(o *Vector) bool {
	if o == nil || !v.mod.Equal(o.mod) {
		return false
	}
	for i := range v.data {
		if !v.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// ColumnStrings renders each entry as a bracketed, width-aligned line,
// e.g. ["[10]", "[11]", "[12]"]. Used by the affine element display.
func (v *Vector) ColumnStrings() []string {
	width := 0
	cells := make([]string, len(v.data))
	for i, e := range v.data {
		cells[i] = e.String()
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}
	out := make([]string, len(cells))
	for i, s := range cells {
		out[i] = "[" + strings.Repeat(" ", width-len(s)) + s + "]"
	}

	return out
}

// String renders the vector in tuple form, e.g. "(1, 0, 0)".
func (v *Vector) String() string {
	parts := make([]string, len(v.data))
	for i, e := range v.data {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
