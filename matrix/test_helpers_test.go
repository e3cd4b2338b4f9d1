// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep random data finite and seeded so failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrix2d/matrix"
	"github.com/katalvlaran/matrix2d/numeric"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Kernels see a non-*Dense operand and take the At-based fallback path.
type hide[T numeric.Number] struct{ matrix.Matrix[T] }

// failingAt is a Matrix whose At always fails; it exercises error
// propagation from foreign implementations.
type failingAt[T numeric.Number] struct {
	matrix.Matrix[T]
	err error
}

func (f failingAt[T]) At(int, int) (T, error) { return numeric.Zero[T](), f.err }

// MustRows builds a *Dense from nested rows or fails the test.
func MustRows[T numeric.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense[T numeric.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T numeric.Number](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	require.NoError(t, err)

	return m
}

// RandFloatDense returns an r×c matrix with values in [-10, 10) from a fixed seed.
func RandFloatDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*20 - 10
	}
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// RandDiagDominant returns an n×n float matrix whose diagonal dominates its
// row, so every leading principal minor is non-zero and LU needs no pivoting.
func RandDiagDominant(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	m := RandFloatDense(t, n, n, seed)
	rows := m.RowsData()
	for i := range rows {
		sum := 0.0
		for j, v := range rows[i] {
			if j != i {
				if v < 0 {
					v = -v
				}
				sum += v
			}
		}
		rows[i][i] = sum + 1
	}

	return MustRows(t, rows)
}

// RequireEqualMatrix asserts exact structural equality via matrix.Equal.
func RequireEqualMatrix[T numeric.Number](t testing.TB, want, got matrix.Matrix[T]) {
	t.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// RequireClose asserts element-wise closeness within default tolerances.
func RequireClose(t testing.TB, want, got matrix.Matrix[float64]) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, matrix.DefaultRTol, matrix.DefaultATol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// RequireUnitLowerTriangular checks L[i,i]==1 and L[i,j]==0 for j>i.
func RequireUnitLowerTriangular[T numeric.Number](t testing.TB, L *matrix.Dense[T]) {
	t.Helper()
	rows := L.RowsData()
	for i := range rows {
		require.Equalf(t, numeric.One[T](), rows[i][i], "L[%d,%d]", i, i)
		for j := i + 1; j < len(rows[i]); j++ {
			require.Equalf(t, numeric.Zero[T](), rows[i][j], "L[%d,%d]", i, j)
		}
	}
}

// RequireUpperTriangular checks U[i,j]==0 for j<i.
func RequireUpperTriangular[T numeric.Number](t testing.TB, U *matrix.Dense[T]) {
	t.Helper()
	rows := U.RowsData()
	for i := range rows {
		for j := 0; j < i; j++ {
			require.Equalf(t, numeric.Zero[T](), rows[i][j], "U[%d,%d]", i, j)
		}
	}
}
