// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparisons and sanitizing checks: Equal, AllClose, AllFinite.
//   - Keep all loops deterministic and flat over row-major snapshots.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/matrix2d/numeric"
)

// Default tolerances for AllClose in float64 round trips (e.g. L*U vs A).
const (
	DefaultRTol = 1e-9
	DefaultATol = 1e-12
)

// Equal reports structural equality: same shape and identical elements.
// Float NaN never equals itself, so a matrix holding NaN is not Equal to its clone.
//
// Errors:
//   - ErrNilMatrix. Shape differences are reported as false, not as an error.
//
// Complexity: Time O(r*c).
func Equal[T numeric.Number](a, b Matrix[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	av, err := flatten(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	bv, err := flatten(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range av {
		if av[idx] != bv[idx] {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise closeness within an absolute or relative tolerance,
// as defined by gonum's scalar.EqualWithinAbsOrRel.
// Returns (true,nil) if every element pair is close; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//   - Elements widen to float64 before comparison, so integer kinds work too.
//
// Errors:
//   - ErrBadTolerance, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c). Early exit on the first violation.
func AllClose[T numeric.Number](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	av, err := flatten(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bv, err := flatten(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range av {
		if !scalar.EqualWithinAbsOrRel(float64(av[idx]), float64(bv[idx]), atol, rtol) {
			return false, nil
		}
	}

	return true, nil
}

// AllFinite reports whether every element of m is finite.
// This is the post-check for LU/Determinant on float kinds, where a zero
// pivot surfaces as ±Inf or NaN. Integer kinds are always finite.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: Time O(r*c); O(1) for integer kinds.
func AllFinite[T numeric.Number](m Matrix[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opAllFinite, err)
	}
	if !numeric.IsFloat[T]() {
		return true, nil
	}
	data, err := flatten(m)
	if err != nil {
		return false, matrixErrorf(opAllFinite, err)
	}
	for _, v := range data {
		if numeric.IsNonFinite(v) {
			return false, nil
		}
	}

	return true, nil
}
