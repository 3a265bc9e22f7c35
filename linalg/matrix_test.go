// SPDX-License-Identifier: MIT

// Package linalg_test contains unit tests for matrix spaces and dense
// matrix arithmetic over exact rings.
package linalg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ademarov/affine/linalg"
	"github.com/ademarov/affine/ring"
)

// mustSpace builds a matrix space or aborts the test.
func mustSpace(t *testing.T, base ring.Ring, rows, cols int) *linalg.Space {
	t.Helper()
	sp, err := linalg.NewSpace(base, rows, cols)
	if err != nil {
		t.Fatalf("NewSpace(%d, %d): %v", rows, cols, err)
	}

	return sp
}

func TestNewSpaceValidation(t *testing.T) {
	t.Parallel()

	if _, err := linalg.NewSpace(nil, 2, 2); !errors.Is(err, linalg.ErrNilRing) {
		t.Fatalf("nil ring: got %v, want ErrNilRing", err)
	}
	if _, err := linalg.NewSpace(ring.Integers(), -1, 2); !errors.Is(err, linalg.ErrBadShape) {
		t.Fatalf("negative rows: got %v, want ErrBadShape", err)
	}

	// Zero dimensions are legal.
	sp := mustSpace(t, ring.Integers(), 0, 0)
	if got := sp.Zero().String(); got != "[]" {
		t.Fatalf("empty matrix renders %q, want []", got)
	}
}

func TestSpaceEqualAndContains(t *testing.T) {
	t.Parallel()

	zz33 := mustSpace(t, ring.Integers(), 3, 3)
	qq33 := mustSpace(t, ring.Rationals(), 3, 3)

	require.True(t, zz33.Equal(mustSpace(t, ring.Integers(), 3, 3)))
	require.False(t, zz33.Equal(qq33))
	require.False(t, zz33.Equal(mustSpace(t, ring.Integers(), 3, 2)))

	m, err := zz33.Identity()
	require.NoError(t, err)
	require.True(t, zz33.Contains(m))
	require.False(t, qq33.Contains(m))
}

func TestIdentityNonSquare(t *testing.T) {
	t.Parallel()

	sp := mustSpace(t, ring.Integers(), 2, 3)
	if _, err := sp.Identity(); !errors.Is(err, linalg.ErrNonSquare) {
		t.Fatalf("Identity on 2x3: got %v, want ErrNonSquare", err)
	}
}

func TestFromIntsDimensionMismatch(t *testing.T) {
	t.Parallel()

	sp := mustSpace(t, ring.Integers(), 2, 2)
	if _, err := sp.FromInts(1, 2, 3); !errors.Is(err, linalg.ErrDimensionMismatch) {
		t.Fatalf("3 entries into 2x2: got %v, want ErrDimensionMismatch", err)
	}
	if _, err := sp.FromRows([][]int64{{1, 2}, {3}}); !errors.Is(err, linalg.ErrDimensionMismatch) {
		t.Fatalf("ragged rows: got %v, want ErrDimensionMismatch", err)
	}
}

func TestMatrixArithmetic(t *testing.T) {
	t.Parallel()

	sp := mustSpace(t, ring.Rationals(), 2, 2)
	a, err := sp.FromInts(1, 2, 3, 4)
	require.NoError(t, err)
	b, err := sp.FromInts(5, 6, 7, 8)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	wantSum, err := sp.FromInts(6, 8, 10, 12)
	require.NoError(t, err)
	require.True(t, sum.Equal(wantSum))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	wantDiff, err := sp.FromInts(4, 4, 4, 4)
	require.NoError(t, err)
	require.True(t, diff.Equal(wantDiff))

	neg := a.Neg()
	wantNeg, err := sp.FromInts(-1, -2, -3, -4)
	require.NoError(t, err)
	require.True(t, neg.Equal(wantNeg))

	twice := a.Scale(sp.BaseRing().FromInt(2))
	wantTwice, err := sp.FromInts(2, 4, 6, 8)
	require.NoError(t, err)
	require.True(t, twice.Equal(wantTwice))
}

func TestMatrixMul(t *testing.T) {
	t.Parallel()

	zz := ring.Integers()
	left, err := mustSpace(t, zz, 2, 3).FromInts(
		1, 2, 3,
		4, 5, 6,
	)
	require.NoError(t, err)
	right, err := mustSpace(t, zz, 3, 2).FromInts(
		7, 8,
		9, 10,
		11, 12,
	)
	require.NoError(t, err)

	prod, err := left.Mul(right)
	require.NoError(t, err)
	want, err := mustSpace(t, zz, 2, 2).FromInts(
		58, 64,
		139, 154,
	)
	require.NoError(t, err)
	require.True(t, prod.Equal(want))

	// Incompatible inner dimensions.
	_, err = left.Mul(left)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestMatrixMulVec(t *testing.T) {
	t.Parallel()

	zz := ring.Integers()
	m, err := mustSpace(t, zz, 2, 3).FromInts(
		1, 2, 3,
		4, 5, 6,
	)
	require.NoError(t, err)
	md, err := linalg.NewModule(zz, 3)
	require.NoError(t, err)
	x, err := md.FromInts(1, 0, -1)
	require.NoError(t, err)

	y, err := m.MulVec(x)
	require.NoError(t, err)
	wantMod, err := linalg.NewModule(zz, 2)
	require.NoError(t, err)
	want, err := wantMod.FromInts(-2, -2)
	require.NoError(t, err)
	require.True(t, y.Equal(want))

	short, err := wantMod.FromInts(1, 2)
	require.NoError(t, err)
	_, err = m.MulVec(short)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestMatrixTranspose(t *testing.T) {
	t.Parallel()

	m, err := mustSpace(t, ring.Integers(), 2, 3).FromInts(
		1, 2, 3,
		4, 5, 6,
	)
	require.NoError(t, err)
	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())

	got, err := tr.At(2, 1)
	require.NoError(t, err)
	require.True(t, got.Equal(ring.Integers().FromInt(6)))
}

func TestMatrixAtOutOfRange(t *testing.T) {
	t.Parallel()

	m := mustSpace(t, ring.Integers(), 2, 2).Zero()
	if _, err := m.At(2, 0); !errors.Is(err, linalg.ErrOutOfRange) {
		t.Fatalf("At(2,0) on 2x2: got %v, want ErrOutOfRange", err)
	}
}

func TestMatrixString(t *testing.T) {
	t.Parallel()

	m, err := mustSpace(t, ring.Integers(), 2, 2).FromInts(
		1, -20,
		300, 4,
	)
	require.NoError(t, err)

	// Entries align per column.
	want := "[  1 -20]\n[300   4]"
	require.Equal(t, want, m.String())
}

func TestMismatchedSpaces(t *testing.T) {
	t.Parallel()

	a := mustSpace(t, ring.Integers(), 2, 2).Zero()
	b := mustSpace(t, ring.Rationals(), 2, 2).Zero()
	if _, err := a.Add(b); !errors.Is(err, linalg.ErrMismatchedSpaces) {
		t.Fatalf("ZZ + QQ: got %v, want ErrMismatchedSpaces", err)
	}
	if _, err := a.Mul(b); !errors.Is(err, linalg.ErrMismatchedSpaces) {
		t.Fatalf("ZZ · QQ: got %v, want ErrMismatchedSpaces", err)
	}
}
