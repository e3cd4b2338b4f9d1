// SPDX-License-Identifier: MIT
// Package matrix: square-only kernels — Doolittle LU and the determinant built on it.
//
// Numeric policy:
//   - No pivoting and no zero-pivot guard. A zero U[i,i] reaches the division
//     unchanged: float kinds produce ±Inf/NaN, integer kinds panic with Go's
//     runtime "integer divide by zero". Inputs with a zero leading principal
//     minor therefore fail even when non-singular.
//   - Callers needing robustness use a float kind and post-check with AllFinite.
//   - Integer kinds divide with truncation, so L is exact only when every
//     multiplier is a whole number.

package matrix

import "github.com/katalvlaran/matrix2d/numeric"

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate zero L,U.
//   - Stage 2: For i=0..n-1, build row i of U (columns i..n-1), then column i
//     of L (rows i..n-1): L[i,i] = 1, L[k,i] = (A[k,i] − Σ_{j<i} L[k,j]U[j,i]) / U[i,i].
//
// Behavior highlights:
//   - Entries outside the triangles keep their initial zero and are never written.
//   - The input is read once into a flat snapshot and never mutated.
//
// Returns:
//   - *Dense: L (unit lower triangular).
//   - *Dense: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed i→{k≥i} for U, then {k>i}→i for L; sums accumulate j=0..i-1.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU[T numeric.Number](m Matrix[T]) (*Dense[T], *Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := flatten(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	L, err := NewDense[T](n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense[T](n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	l, u := L.data, U.data
	var i, j, k int
	var sum, pivot T
	for i = 0; i < n; i++ {
		// Upper: row i, columns i..n-1.
		for k = i; k < n; k++ {
			sum = numeric.Zero[T]()
			for j = 0; j < i; j++ {
				sum += l[i*n+j] * u[j*n+k]
			}
			u[i*n+k] = a[i*n+k] - sum
		}

		// Lower: column i, rows i..n-1.
		pivot = u[i*n+i]
		for k = i; k < n; k++ {
			if k == i {
				l[i*n+i] = numeric.One[T]()
				continue
			}
			sum = numeric.Zero[T]()
			for j = 0; j < i; j++ {
				sum += l[k*n+j] * u[j*n+i]
			}
			l[k*n+i] = (a[k*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// diagProduct multiplies the diagonal of an n×n row-major buffer, starting from one.
func diagProduct[T numeric.Number](data []T, n int) T {
	prod := numeric.One[T]()
	for i := 0; i < n; i++ {
		prod *= data[i*n+i]
	}

	return prod
}

// DiagProduct returns the product of the main diagonal of a square matrix,
// which is the determinant when m is triangular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: Time O(n), Space O(1) for *Dense.
func DiagProduct[T numeric.Number](m Matrix[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Zero[T](), matrixErrorf(opDiagProduct, err)
	}
	data, err := flatten(m)
	if err != nil {
		return numeric.Zero[T](), matrixErrorf(opDiagProduct, err)
	}

	return diagProduct(data, m.Rows()), nil
}

// Determinant returns det(m) for a square matrix.
// Implementation:
//   - Stage 1: Validate m (not nil, square).
//   - Stage 2: n == 1 returns the sole element; no decomposition runs.
//   - Stage 3: otherwise factor m = L*U and return det(L) * det(U), each the
//     product of its triangular diagonal.
//
// Behavior highlights:
//   - det(L) is computed explicitly even though Doolittle fixes diag(L) to one.
//   - Inherits every limitation of LU: a zero pivot yields ±Inf/NaN for float
//     kinds and a runtime panic for integer kinds.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant[T numeric.Number](m Matrix[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Zero[T](), matrixErrorf(opDeterminant, err)
	}
	if m.Rows() == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return numeric.Zero[T](), matrixErrorf(opDeterminant, err)
		}

		return v, nil
	}

	L, U, err := LU(m)
	if err != nil {
		return numeric.Zero[T](), matrixErrorf(opDeterminant, err)
	}
	n := m.Rows()

	return diagProduct(L.data, n) * diagProduct(U.data, n), nil
}
