// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Own the buffer outright: constructors copy caller slices, accessors return copies.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Column: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matrix2d/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxColumn    = "Column"    // method tag used in error wrappers
	ctxSetColumn = "SetColumn" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T numeric.Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Every cell holds numeric.Zero[T](), which is Go's zero value.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T numeric.Number](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFromData builds an r×c Dense from a flat row-major slice.
// The slice is copied; later writes to data do not reach the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromData[T numeric.Number](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData: %d values for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewFromRows builds a Dense from nested row slices, copying every row.
// MAIN DESCRIPTION:
//   - Literal-friendly constructor: NewFromRows([][]int{{1, 2}, {3, 4}}).
//
// Implementation:
//   - Stage 1: take the column count from rows[0].
//   - Stage 2: reject ragged rows before copying anything.
//   - Stage 3: copy rows into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when a row length differs from the first.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T numeric.Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}
	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return numeric.Zero[T](), denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer). Mutations of the clone do not
// affect the original. The dynamic type of the result is *Dense[T].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() Matrix[T] { return m.clone() }

// clone is the concrete-typed Clone used by kernels.
func (m *Dense[T]) clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j as a vector of exactly Rows() entries.
// MAIN DESCRIPTION:
//   - Column extraction used by Mul to feed MatVec one column at a time.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()).
//
// Complexity:
//   - Time O(r), Space O(r). Strided read over the row-major buffer.
func (m *Dense[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetColumn overwrites column j with v, which must hold exactly Rows() entries.
// The check runs before any write, so a failed call leaves m untouched.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()).
//   - ErrDimensionMismatch when len(v) != Rows().
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense[T]) SetColumn(j int, v []T) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetColumn, 0, j, ErrOutOfRange)
	}
	if len(v) != m.r {
		return denseErrorf(ctxSetColumn, len(v), j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// RowsData returns a deep copy of the contents as nested row slices.
// Complexity: O(r*c).
func (m *Dense[T]) RowsData() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
