package cholesky_test

import (
	"testing"

	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/cholesky"
	"github.com/katalvlaran/sparsix/csc"
)

// benchLaplacian assembles the 5-point Laplacian on an nx×nx grid
// without the testing.T plumbing of the unit-test helper.
func benchLaplacian(nx int) *csc.Matrix {
	n := nx * nx
	var rows, cols []int
	var vals []float64
	for iy := 0; iy < nx; iy++ {
		for ix := 0; ix < nx; ix++ {
			i := iy*nx + ix
			rows = append(rows, i)
			cols = append(cols, i)
			vals = append(vals, 4)
			if ix+1 < nx {
				rows = append(rows, i, i+1)
				cols = append(cols, i+1, i)
				vals = append(vals, -1, -1)
			}
			if iy+1 < nx {
				rows = append(rows, i, i+nx)
				cols = append(cols, i+nx, i)
				vals = append(vals, -1, -1)
			}
		}
	}

	a, err := csc.FromTriplets(n, n, rows, cols, vals)
	if err != nil {
		panic(err)
	}

	return a
}

// BenchmarkCholesky measures the three phases separately — symbolic
// analysis, numeric factorization (with a reused workspace, the steady
// state of repeated solves), and the triangular solve pair — on grid
// Laplacians of increasing size.
func BenchmarkCholesky(b *testing.B) {
	cases := []struct {
		name string
		nx   int
	}{
		{"Grid8", 8},
		{"Grid16", 16},
		{"Grid32", 32},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			a := benchLaplacian(tc.nx)
			n := a.Cols()

			b.Run("Analyze", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = cholesky.Analyze(a, amd.OrderCholesky)
				}
			})

			sym, err := cholesky.Analyze(a, amd.OrderCholesky)
			if err != nil {
				b.Fatal(err)
			}

			b.Run("Factorize", func(b *testing.B) {
				ws := csc.NewWorkspace(n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = cholesky.Factorize(a, sym, ws)
				}
			})

			f, err := cholesky.Factorize(a, sym, nil)
			if err != nil {
				b.Fatal(err)
			}
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i % 5)
			}

			b.Run("Solve", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = cholesky.Solve(f, rhs)
				}
			})
		})
	}
}
