// SPDX-License-Identifier: MIT
// Package numeric_test locks in the identity laws of the scalar contract
// for every built-in kind.

package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrix2d/numeric"
)

type meters float64

// identityLaws checks a + Zero == a, a * One == a and that the accumulate
// forms agree with their binary counterparts.
func identityLaws[T numeric.Number](t *testing.T, samples ...T) {
	t.Helper()

	zero, one := numeric.Zero[T](), numeric.One[T]()
	for _, a := range samples {
		require.Equal(t, a, a+zero, "a + Zero")
		require.Equal(t, a, a*one, "a * One")

		acc := a
		acc += one
		require.Equal(t, a+one, acc, "a += One")

		acc = a
		acc *= one
		require.Equal(t, a, acc, "a *= One")
	}
}

func TestIdentityLaws_AllKinds(t *testing.T) {
	t.Parallel()

	identityLaws[int](t, -7, 0, 42)
	identityLaws[int8](t, -128, 0, 100)
	identityLaws[int16](t, -300, 0, 300)
	identityLaws[int32](t, -70000, 0, 70000)
	identityLaws[int64](t, math.MinInt64+1, 0, math.MaxInt64-1)
	identityLaws[uint](t, 0, 9)
	identityLaws[uint8](t, 0, 200)
	identityLaws[uint16](t, 0, 60000)
	identityLaws[uint32](t, 0, 4000000000)
	identityLaws[uint64](t, 0, math.MaxUint64-1)
	identityLaws[uintptr](t, 0, 12)
	identityLaws[float32](t, -1.5, 0, 3.25)
	identityLaws[float64](t, -1e300, 0, 1e-300)
	identityLaws[meters](t, -2, 0, 8.5)
}

func TestIsFloat(t *testing.T) {
	t.Parallel()

	assert.False(t, numeric.IsFloat[int]())
	assert.False(t, numeric.IsFloat[int8]())
	assert.False(t, numeric.IsFloat[uint64]())
	assert.False(t, numeric.IsFloat[uintptr]())
	assert.True(t, numeric.IsFloat[float32]())
	assert.True(t, numeric.IsFloat[float64]())
	assert.True(t, numeric.IsFloat[meters]())
}

func TestIsNonFinite(t *testing.T) {
	t.Parallel()

	assert.False(t, numeric.IsNonFinite(0))
	assert.False(t, numeric.IsNonFinite(uint64(math.MaxUint64)))
	assert.False(t, numeric.IsNonFinite(1.5))
	assert.False(t, numeric.IsNonFinite(float32(math.MaxFloat32)))

	assert.True(t, numeric.IsNonFinite(math.NaN()))
	assert.True(t, numeric.IsNonFinite(math.Inf(1)))
	assert.True(t, numeric.IsNonFinite(math.Inf(-1)))
	assert.True(t, numeric.IsNonFinite(float32(math.Inf(1))))
	assert.True(t, numeric.IsNonFinite(meters(math.NaN())))
}

func TestFloatDivisionByZero_IsNonFinite(t *testing.T) {
	t.Parallel()

	one, zero := numeric.One[float64](), numeric.Zero[float64]()
	assert.True(t, numeric.IsNonFinite(one/zero))
	assert.True(t, numeric.IsNonFinite(zero/zero))
}
