// Package matrix2d is a generic, dense 2-D matrix algebra library for any
// built-in numeric kind — integers of every width and both float kinds.
//
// 🚀 What is matrix2d?
//
//	A small, zero-surprise library that brings together:
//		• A scalar capability contract: numeric.Number, Zero, One
//		• An owned row-major matrix: matrix.Dense[T]
//		• Algebra: Add, Sub, MatVec, Mul, Transpose, Scale, Trace
//		• Square kernels: LU (Doolittle), Determinant, DiagProduct
//
// ✨ Why choose matrix2d?
//
//   - Write once, run on int8…uint64, float32 and float64
//   - Shape-safe – every operation checks dimensions and returns a sentinel error
//   - Copy semantics – inputs are never mutated, results are always fresh
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under two subpackages:
//
//	numeric/ — the scalar contract shared by every matrix
//	matrix/  — Dense[T], its operations, LU and determinant
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	y, _ := matrix.MatVec[int](a, []int{3, 4, 5}) // [26 62]
//
// LU and Determinant do not pivot: a zero pivot yields ±Inf/NaN for floats
// and a divide-by-zero panic for integers.
//
//	go get github.com/katalvlaran/matrix2d
package matrix2d
