// SPDX-License-Identifier: MIT

package affgp

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/ademarov/affine/internal/canonical"
	"github.com/ademarov/affine/linalg"
	"github.com/ademarov/affine/ring"
)

// anElementSeed feeds the deterministic resampling source behind
// AnElement, so the canonical example element is stable across runs.
const anElementSeed = 1

// groups canonicalizes plain affine groups by (degree, ring): equal
// normalized parameters yield the identical *Group, process-wide.
// Specialized subgroups (WithElementCheck) bypass this cache.
var groups = canonical.New[*Group]()

// Group is the affine group Aff_d(R) of invertible affine
// transformations x ↦ A·x + b of the rank-d free module over R.
//
// Plain groups are canonical: New with equal (degree, ring) parameters
// returns the identical instance, so groups compare with ==. A Group is
// immutable apart from its memoized derived spaces and is safe for
// concurrent use.
type Group struct {
	degree int
	base   ring.Ring

	maxAttempts int
	check       CheckFunc

	matOnce sync.Once
	matSp   *linalg.Space
	vecOnce sync.Once
	vecMod  *linalg.Module
	linOnce sync.Once
	linSp   *linalg.Space

	anOnce sync.Once
	anElem *Element
	anErr  error
}

// DimensionedSpace is anything that exposes a dimension over a base
// ring: a free module, an affine space wrapper, or a Group itself.
// FromSpace normalizes any of these into group parameters.
type DimensionedSpace interface {
	Dimension() int
	BaseRing() ring.Ring
}

// New returns the affine group of the given degree over base.
//
// Plain groups are canonicalized: repeated calls with equal parameters
// return the identical instance (the first call's WithMaxAttempts budget
// wins). Groups built with WithElementCheck are specialized subgroups
// and are returned as fresh, non-canonical instances.
//
// Fails with ErrBadDegree for negative degrees and ErrNilRing for a nil
// base ring.
func New(degree int, base ring.Ring, opts ...Option) (*Group, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree %d: %w", degree, ErrBadDegree)
	}
	if base == nil {
		return nil, ErrNilRing
	}
	o := gatherOptions(opts...)

	build := func() *Group {
		return &Group{degree: degree, base: base, maxAttempts: o.maxAttempts, check: o.check}
	}
	if o.check != nil {
		return build(), nil
	}
	key := fmt.Sprintf("%d|%s", degree, base.Name())
	g, err := groups.GetOrCreate(key, func() (*Group, error) { return build(), nil })
	if err != nil {
		return nil, err
	}

	return g, nil
}

// NewFiniteField is the prime-power shorthand: NewFiniteField(2, 4) is
// the affine group of degree 2 over GF(4). The generator name of an
// extension field defaults to "a" and follows WithVar. Fails with
// ring.ErrNotPrimePower for orders that are not prime powers.
func NewFiniteField(degree int, order uint64, opts ...Option) (*Group, error) {
	o := gatherOptions(opts...)
	base, err := ring.FiniteField(order, ring.WithVar(o.varName))
	if err != nil {
		return nil, err
	}

	return New(degree, base, opts...)
}

// FromSpace builds the affine group of a dimensioned space: the degree
// is the space's dimension and the base ring its coefficient ring.
// Passing an existing *Group returns it unchanged (idempotent
// re-wrapping).
func FromSpace(s DimensionedSpace, opts ...Option) (*Group, error) {
	if g, ok := s.(*Group); ok {
		return g, nil
	}

	return New(s.Dimension(), s.BaseRing(), opts...)
}

// Degree returns the dimension of the affine space the group acts on.
func (g *Group) Degree() int { return g.degree }

// Dimension is an alias for Degree, satisfying DimensionedSpace.
func (g *Group) Dimension() int { return g.degree }

// BaseRing returns the coefficient ring.
func (g *Group) BaseRing() ring.Ring { return g.base }

// MatrixSpace returns the d×d matrix space holding the linear parts A.
// Computed once and memoized.
func (g *Group) MatrixSpace() *linalg.Space {
	g.matOnce.Do(func() {
		sp, err := linalg.NewSpace(g.base, g.degree, g.degree)
		if err != nil {
			panic("affgp: matrix space: " + err.Error())
		}
		g.matSp = sp
	})

	return g.matSp
}

// VectorSpace returns the rank-d free module holding the translation
// parts b. Computed once and memoized.
func (g *Group) VectorSpace() *linalg.Module {
	g.vecOnce.Do(func() {
		md, err := linalg.NewModule(g.base, g.degree)
		if err != nil {
			panic("affgp: vector space: " + err.Error())
		}
		g.vecMod = md
	})

	return g.vecMod
}

// LinearSpace returns the (d+1)×(d+1) matrix space of the homogeneous
// representation, where (A, b) embeds as [[A, b], [0, 1]] acting on the
// lifted vector (x, 1). Computed once and memoized.
func (g *Group) LinearSpace() *linalg.Space {
	g.linOnce.Do(func() {
		sp, err := linalg.NewSpace(g.base, g.degree+1, g.degree+1)
		if err != nil {
			panic("affgp: linear space: " + err.Error())
		}
		g.linSp = sp
	})

	return g.linSp
}

// One returns the identity element x ↦ x.
func (g *Group) One() *Element {
	id, err := g.MatrixSpace().Identity()
	if err != nil {
		panic("affgp: identity: " + err.Error())
	}

	return &Element{g: g, a: id, b: g.VectorSpace().Zero()}
}

// Random returns a uniformly random group element: the linear part is
// resampled from the matrix space until invertible (bounded by the
// group's attempt budget), the translation is a single draw from the
// vector space. The returned element needs no re-validation. Termination
// of the resampling loop is probabilistic, not guaranteed; exhausting
// the budget yields ErrSamplingExhausted.
func (g *Group) Random(rnd *rand.Rand) (*Element, error) {
	ms := g.MatrixSpace()
	for attempt := 0; attempt < g.attemptBudget(); attempt++ {
		a := ms.Random(rnd)
		if a.IsInvertible() {
			return &Element{g: g, a: a, b: g.VectorSpace().Random(rnd)}, nil
		}
	}

	return nil, ErrSamplingExhausted
}

// AnElement returns the canonical example element, computed once per
// group and cached. The linear part starts from the matrix space's
// deterministic example and, when that is singular (the generic example
// usually is), falls back to the same bounded resampling strategy as
// Random seeded deterministically, so the result is stable across runs.
func (g *Group) AnElement() (*Element, error) {
	g.anOnce.Do(func() {
		a := g.MatrixSpace().AnElement()
		if !a.IsInvertible() {
			rnd := rand.New(rand.NewSource(anElementSeed))
			ms := g.MatrixSpace()
			found := false
			for attempt := 0; attempt < g.attemptBudget(); attempt++ {
				a = ms.Random(rnd)
				if a.IsInvertible() {
					found = true

					break
				}
			}
			if !found {
				g.anErr = ErrSamplingExhausted

				return
			}
		}
		g.anElem = &Element{g: g, a: a, b: g.VectorSpace().AnElement()}
	})

	return g.anElem, g.anErr
}

func (g *Group) attemptBudget() int {
	if g.maxAttempts > 0 {
		return g.maxAttempts
	}

	return DefaultMaxAttempts
}

// String returns the short-form label, e.g.
// "Affine Group of degree 3 over Rational Field".
func (g *Group) String() string {
	return fmt.Sprintf("Affine Group of degree %d over %s", g.degree, g.base.Name())
}

// Latex returns the typeset form Aff_d(R).
func (g *Group) Latex() string {
	return fmt.Sprintf(`\mathrm{Aff}_{%d}(%s)`, g.degree, g.base.Latex())
}
