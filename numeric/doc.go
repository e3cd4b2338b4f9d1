// Package numeric defines the scalar capability contract shared by every
// matrix in matrix2d.
//
// A scalar may populate a matrix when it supports:
//
//   - binary +, -, *, / closed over the type,
//   - accumulate-add (a += b) and accumulate-multiply (a *= b),
//   - an additive identity (Zero) and a multiplicative identity (One),
//   - plain value copies.
//
// In Go every built-in integer and floating-point kind already satisfies
// this through its operators, so the contract is expressed as a type-set
// constraint (Number) plus two generic identity constructors. Named types
// whose underlying type is one of those kinds (type Meters float64) are
// accepted as well.
//
// The contract deliberately says nothing about ordering, absolute value or
// overflow. Integer arithmetic wraps as the Go specification defines;
// integer division by zero panics at run time; float division by zero yields
// ±Inf or NaN. Callers that need robustness pick a float kind and post-check
// results with IsNonFinite.
//
// Go has no 128-bit integer primitive, so the widest integers available are
// int64 and uint64.
package numeric
