package cholesky_test

import (
	"fmt"

	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/cholesky"
	"github.com/katalvlaran/sparsix/csc"
)

// ExampleFactorOf factors the hand-computable matrix [[4,12],[12,45]]
// (its factor is L = [[2,0],[6,3]], exactly) and solves A·x = b for
// b = A·[1,1].
func ExampleFactorOf() {
	a, _ := csc.FromTriplets(2, 2,
		[]int{0, 0, 1, 1},
		[]int{0, 1, 0, 1},
		[]float64{4, 12, 12, 45})

	f, _ := cholesky.FactorOf(a, amd.OrderNatural)
	x, _ := cholesky.Solve(f, []float64{16, 57})

	fmt.Printf("%.0f %.0f\n", x[0], x[1])
	// Output:
	// 1 1
}

// ExampleAnalyze predicts the factor size of a tridiagonal matrix
// before any numeric work: tridiagonal patterns gain no fill, so L
// holds exactly the lower triangle — 2+2+2+1 entries for n = 4.
func ExampleAnalyze() {
	a, _ := csc.FromTriplets(4, 4,
		[]int{0, 0, 1, 1, 1, 2, 2, 2, 3, 3},
		[]int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3},
		[]float64{2, -1, -1, 2, -1, -1, 2, -1, -1, 2})

	sym, _ := cholesky.Analyze(a, amd.OrderNatural)
	fmt.Println(sym.LNonzeros())
	// Output:
	// 7
}
