// SPDX-License-Identifier: MIT

// Package matrix: domain types used by every operation.
// This file contains ONLY the public Matrix interface. Errors live in
// errors.go, the concrete storage in impl_dense.go.
package matrix

import "github.com/katalvlaran/matrix2d/numeric"

// Matrix represents a two-dimensional mutable array of T values.
// Every operation in this package accepts a Matrix and takes a flat fast
// path when the operand is a *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T numeric.Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix[T]
}
