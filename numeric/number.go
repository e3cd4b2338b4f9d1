// SPDX-License-Identifier: MIT

package numeric

import "math"

// Number is the set of scalar kinds a matrix may hold.
// Every member is closed under + - * / and supports += and *=.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Zero returns the additive identity of T: a + Zero[T]() == a.
func Zero[T Number]() T {
	var z T // zero value of every numeric kind is 0

	return z
}

// One returns the multiplicative identity of T: a * One[T]() == a.
func One[T Number]() T { return T(1) }

// IsFloat reports whether T is a floating-point kind.
// Integer division truncates 1/2 to 0; floating-point division does not.
// Complexity: O(1).
func IsFloat[T Number]() bool {
	half := One[T]()
	half /= T(2)

	return half != Zero[T]()
}

// IsNonFinite reports whether v is NaN or ±Inf.
// Integers are always finite. float32 values widen to float64 losslessly,
// so NaN and Inf survive the conversion.
func IsNonFinite[T Number](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
