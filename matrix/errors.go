// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag and
// tests match them via errors.Is. No operation panics on a shape or index
// error; the one documented panic is integer division by a zero pivot in
// LU/Determinant, which is the scalar's own behaviour.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap with matrixErrorf(op, ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> invalid dimensions -> dimension mismatch / non-square -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Column) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add of different shapes, Mul where a.Cols != b.Rows, or a vector
	// whose length differs from the matrix column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadTolerance is returned by AllClose for NaN or ±Inf tolerances.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite")
)

// ErrNonSquare signals that a square matrix was required but the input wasn't.
// It wraps ErrDimensionMismatch, so both errors.Is checks succeed.
var ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)
