package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matrix2d/matrix"
)

// ExampleMul multiplies a 2×3 by a 3×2 integer matrix.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewFromRows([][]int{{3, 6}, {4, 5}, {9, -1}})

	c, err := matrix.Mul[int](a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [38, 13]
	// [86, 43]
}

// ExampleMatVec multiplies a matrix by a column vector.
func ExampleMatVec() {
	a, _ := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})

	y, _ := matrix.MatVec[int](a, []int{3, 4, 5})
	fmt.Println(y)

	// Output:
	// [26 62]
}

// ExampleLU factors a 3×3 matrix and recovers its determinant.
func ExampleLU() {
	a, _ := matrix.NewFromRows([][]float64{{5, 6, 7}, {10, 20, 23}, {15, 50, 67}})

	L, U, _ := matrix.LU[float64](a)
	fmt.Print("L:\n", L, "U:\n", U)

	det, _ := matrix.Determinant[float64](a)
	fmt.Println("det:", det)

	// Output:
	// L:
	// [1, 0, 0]
	// [2, 1, 0]
	// [3, 4, 1]
	// U:
	// [5, 6, 7]
	// [0, 8, 9]
	// [0, 0, 10]
	// det: 400
}

// ExampleAdd shows the shape check every operation performs on entry.
func ExampleAdd() {
	a, _ := matrix.NewZeros[int](2, 3)
	b, _ := matrix.NewIdentity[int](2)

	_, err := matrix.Add[int](a, b)
	fmt.Println(err)

	// Output:
	// Add: ValidateSameShape: Columns: matrix: dimension mismatch
}
