package lu_test

import (
	"fmt"

	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/lu"
)

// ExampleFactorOf solves a system whose matrix has a zero diagonal —
// partial pivoting finds the row exchange on its own.
//
//	A = [[0,2],[3,0]],  b = [2,3]  →  x = [1,1]
func ExampleFactorOf() {
	a, _ := csc.FromTriplets(2, 2,
		[]int{1, 0},
		[]int{0, 1},
		[]float64{3, 2})

	f, _ := lu.FactorOf(a, amd.OrderNatural)
	x, _ := lu.Solve(f, []float64{2, 3})

	fmt.Printf("%.0f %.0f\n", x[0], x[1])
	// Output:
	// 1 1
}

// ExampleWithPivotThreshold relaxes the pivot rule: under threshold
// 0.001 the diagonal entry 4 is admissible against the larger 6 below
// it, so the rows stay in place.
func ExampleWithPivotThreshold() {
	a, _ := csc.FromTriplets(2, 2,
		[]int{0, 1, 0, 1},
		[]int{0, 0, 1, 1},
		[]float64{4, 6, 3, 3})

	f, _ := lu.FactorOf(a, amd.OrderNatural, lu.WithPivotThreshold(0.001))
	fmt.Println(f.Perm.P)
	// Output:
	// [0 1]
}
