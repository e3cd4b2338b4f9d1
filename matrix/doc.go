// Package matrix offers a generic, row-major 2-D matrix over any scalar that
// satisfies numeric.Number, and the algebra built on it.
//
// The matrix package provides:
//
//   - Dense[T]: an owned row-major buffer with bounds-checked At/Set, Row,
//     Column/SetColumn, Clone and String.
//   - Construction: NewDense, NewZeros, NewIdentity, NewFromRows, NewFromData.
//   - Algebra: Add, Sub, MatVec, Mul, Transpose, Scale, Trace.
//   - Square-only kernels: LU (Doolittle, no pivoting), Determinant, DiagProduct.
//   - Comparisons: Equal, AllClose, AllFinite.
//
// Shapes are runtime values. Every operation validates them once on entry
// and returns ErrDimensionMismatch, ErrNonSquare or ErrInvalidDimensions
// instead of truncating or indexing out of bounds. Results are always freshly
// allocated; inputs are never mutated, so concurrent readers need no locks.
//
// LU and Determinant do not pivot. A zero pivot yields ±Inf/NaN for float
// kinds (detect it with AllFinite) and a runtime divide-by-zero panic for
// integer kinds.
//
// See the examples in this package for usage patterns.
package matrix
