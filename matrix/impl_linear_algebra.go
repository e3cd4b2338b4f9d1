// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix×vector and matrix×matrix
// multiplication, transpose, scalar scaling and trace. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - One canonical kernel per operation, running on flat row-major slices.
//   - *Dense operands are read in place; any other Matrix is snapshotted once
//     through At (see flatten), so there is a single loop body per kernel.
//
// Notes:
//   - Inputs are never mutated; every result is a freshly allocated Dense.
//   - Accumulations start from numeric.Zero[T]() and run left to right.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matrix2d/numeric"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opTrace       = "Trace"
	opLU          = "LU"
	opDeterminant = "Determinant"
	opDiagProduct = "DiagProduct"
	opAllClose    = "AllClose"
	opAllFinite   = "AllFinite"
	opEqual       = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flatten returns the row-major contents of a validated, non-nil m.
// MAIN DESCRIPTION:
//   - Fast path: *Dense hands out its live buffer. Callers treat it as read-only.
//   - Fallback: any other Matrix is copied once via At in fixed i→j order.
//
// Errors:
//   - Whatever the foreign At returns, wrapped with coordinates.
//
// Complexity:
//   - Fast path O(1); fallback Time O(r*c), Space O(r*c).
func flatten[T numeric.Number](m Matrix[T]) ([]T, error) {
	if d, ok := m.(*Dense[T]); ok {
		return d.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]T, rows*cols)
	var i, j int
	var v T
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + b (negate=false) or a - b (negate=true).
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1 over both snapshots.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - A bool, not a ±1 factor, selects the operation: unsigned kinds have no -1.
func addSub[T numeric.Number](a, b Matrix[T], negate bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	av, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bv, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense[T](a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if negate {
		for idx := range res.data {
			res.data[idx] = av[idx] - bv[idx]
		}
	} else {
		for idx := range res.data {
			res.data[idx] = av[idx] + bv[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Behavior highlights:
//   - Commutative and associative for every numeric kind (wrapping for
//     integers is symmetric too); A + Zeros == A.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T numeric.Number](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Unsigned kinds wrap on underflow, as Go defines.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub[T numeric.Number](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, true, opSub)
}

// matVecFlat computes y[i] = Σ_j data[i*cols+j]*x[j] for a rows×cols buffer.
// Accumulation starts at zero and walks j left to right.
func matVecFlat[T numeric.Number](data []T, rows, cols int, x []T) []T {
	y := make([]T, rows)
	var i, j, base int
	var acc T
	for i = 0; i < rows; i++ {
		acc = numeric.Zero[T]()
		base = i * cols
		for j = 0; j < cols; j++ {
			acc += data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols(); len(y) == m.Rows().
// Each y[i] is the dot product of row i with x, accumulated from zero in
// column order. x is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec[T numeric.Number](m Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return matVecFlat(data, m.Rows(), m.Cols(), x), nil
}

// Mul performs matrix multiplication C = A × B for A (L×S) and B (S×N).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For each column k of B: extract column k, multiply A by it
//     (the MatVec kernel), write the product into column k of C.
//
// Behavior highlights:
//   - C[i][k] = Σ_j A[i][j]*B[j][k], accumulated from zero in j order, so Mul
//     and MatVec agree bit-for-bit on every column.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(L*S*N), Space O(L*N) plus one O(S) column buffer per column.
func Mul[T numeric.Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, shared, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	src := &Dense[T]{r: shared, c: bCols, data: bd} // read-only view for Column
	var col, prod []T
	for k := 0; k < bCols; k++ {
		if col, err = src.Column(k); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		prod = matVecFlat(ad, aRows, shared, col)
		if err = res.SetColumn(k, prod); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose[T numeric.Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = data[i*cols+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T numeric.Number](m Matrix[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Trace[T numeric.Number](m Matrix[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Zero[T](), matrixErrorf(opTrace, err)
	}
	data, err := flatten(m)
	if err != nil {
		return numeric.Zero[T](), matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	sum := numeric.Zero[T]()
	for i := 0; i < n; i++ {
		sum += data[i*n+i]
	}

	return sum, nil
}
