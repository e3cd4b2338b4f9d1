// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for construction with intention-revealing names.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

import "github.com/katalvlaran/matrix2d/numeric"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new rows×cols matrix with every element equal to
// numeric.Zero[T](). It is a thin alias of NewDense.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T numeric.Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n: numeric.One[T]() on the main diagonal and
// numeric.Zero[T]() elsewhere. It takes a single size, so a non-square
// identity cannot be requested.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity[T numeric.Number](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	one := numeric.One[T]()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Returns nil for a nil input.
func CloneMatrix[T numeric.Number](m Matrix[T]) Matrix[T] {
	if isNil(m) {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T numeric.Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewZeros[T](m.Rows(), m.Cols())
}

// IdentityLike returns the identity with the shape of a square m.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T numeric.Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity[T](m.Rows())
}
