// SPDX-License-Identifier: MIT

// Package csc: gonum interop.
//
// The solver core trades in CSC and plain []float64; everything dense —
// verification norms, small reference computations, callers already on
// gonum — speaks mat.Matrix. These two adapters are the only seam.

package csc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsix/internal/num"
)

// ToDense expands the matrix into a gonum *mat.Dense. Pattern-only
// matrices expand with 1.0 at every stored position, which is exactly
// what structural tests want to look at.
// Complexity: O(m·n) space — intended for small matrices and tests.
func (a *Matrix) ToDense() *mat.Dense {
	d := mat.NewDense(a.rows, a.cols, nil)
	for j := 0; j < a.cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			v := 1.0
			if a.Values != nil {
				v = a.Values[p]
			}
			d.Set(a.RowIdx[p], j, d.At(a.RowIdx[p], j)+v)
		}
	}

	return d
}

// FromGonum compresses any gonum mat.Matrix into CSC form, dropping
// exact zeros. Returns ErrBadShape for an empty matrix and ErrNaNInf
// when the numeric policy is violated.
// Complexity: O(m·n).
func FromGonum(g mat.Matrix) (*Matrix, error) {
	m, n := g.Dims()
	if m <= 0 || n <= 0 {
		return nil, ErrBadShape
	}

	var nz int
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			v := g.At(i, j)
			if !num.Finite(v) {
				return nil, ErrNaNInf
			}
			if v != 0 {
				nz++
			}
		}
	}

	a, err := New(m, n, num.Max(nz, 1), true)
	if err != nil {
		return nil, err
	}

	nz = 0
	for j := 0; j < n; j++ {
		a.ColPtr[j] = nz
		for i := 0; i < m; i++ {
			if v := g.At(i, j); v != 0 {
				a.RowIdx[nz] = i
				a.Values[nz] = v
				nz++
			}
		}
	}
	a.ColPtr[n] = nz
	a.trim(nz)

	return a, nil
}
