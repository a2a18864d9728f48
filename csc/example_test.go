package csc_test

import (
	"fmt"

	"github.com/katalvlaran/sparsix/csc"
)

// ExampleFromTriplets builds a matrix from unordered triplets; the
// duplicate (1,1) entries fold into one stored entry by summation.
func ExampleFromTriplets() {
	rows := []int{2, 0, 1, 1, 1}
	cols := []int{2, 0, 1, 1, 0}
	vals := []float64{5, 1, 2, 3, 4}

	a, _ := csc.FromTriplets(3, 3, rows, cols, vals)
	fmt.Println(a.NNZ())
	fmt.Println(a.ToDense().At(1, 1))
	// Output:
	// 4
	// 5
}

// ExampleGaxpy accumulates y += A·x without densifying A.
func ExampleGaxpy() {
	a, _ := csc.FromTriplets(2, 2,
		[]int{0, 1, 1},
		[]int{0, 0, 1},
		[]float64{2, 1, 3})

	y := []float64{1, 1}
	_ = csc.Gaxpy(a, []float64{1, 2}, y)
	fmt.Println(y)
	// Output:
	// [3 8]
}
