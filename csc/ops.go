// SPDX-License-Identifier: MIT

// Package csc: structural arithmetic — column scatter, sparse add and
// sparse multiply. The orderings build A+Aᵗ and AᵗA patterns with these;
// the numeric values ride along only when both operands carry them.

package csc

import "github.com/katalvlaran/sparsix/internal/num"

// Scatter accumulates beta * A[:,j] into the dense accumulator x while
// recording the union pattern in dst.RowIdx. w is the per-row visit
// marker: a row is appended to dst the first time w[i] < mark, then only
// accumulated. Returns the updated entry count nz.
//
// This is the inner kernel of Add and Multiply and the same scatter
// discipline the factorizations use on their workspaces.
// Complexity: O(nnz(A[:,j])).
func Scatter(a *Matrix, j int, beta float64, w []int, x []float64, mark int, dst *Matrix, nz int) int {
	for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
		i := a.RowIdx[p]
		if w[i] < mark {
			w[i] = mark // first touch of row i in this column
			dst.RowIdx[nz] = i
			nz++
			if x != nil {
				x[i] = beta * a.Values[p]
			}
		} else if x != nil {
			x[i] += beta * a.Values[p]
		}
	}

	return nz
}

// Add returns alpha·A + beta·B. Shapes must match. The result carries
// values only when both operands do; otherwise it is pattern-only.
// Complexity: O(n + nnz(A) + nnz(B)) time, O(m) extra space.
func Add(a, b *Matrix, alpha, beta float64) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrDimensionMismatch
	}

	values := a.Values != nil && b.Values != nil
	c, err := New(a.rows, a.cols, num.Max(a.NNZ()+b.NNZ(), 1), values)
	if err != nil {
		return nil, err
	}

	w := make([]int, a.rows)
	var x []float64
	if values {
		x = make([]float64, a.rows)
	}

	var nz int
	for j := 0; j < a.cols; j++ {
		c.ColPtr[j] = nz
		nz = Scatter(a, j, alpha, w, x, j+1, c, nz)
		nz = Scatter(b, j, beta, w, x, j+1, c, nz)
		if values {
			for p := c.ColPtr[j]; p < nz; p++ {
				c.Values[p] = x[c.RowIdx[p]]
			}
		}
	}
	c.ColPtr[a.cols] = nz
	c.trim(nz)

	return c, nil
}

// Multiply returns A·B. Requires a.Cols() == b.Rows(). The result
// carries values only when both operands do. Output capacity grows
// geometrically as the product pattern is discovered.
// Complexity: O(n + flops) time, O(m) extra space.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}

	values := a.Values != nil && b.Values != nil
	c, err := New(a.rows, b.cols, num.Max(a.NNZ()+b.NNZ(), 1), values)
	if err != nil {
		return nil, err
	}

	w := make([]int, a.rows)
	var x []float64
	if values {
		x = make([]float64, a.rows)
	}

	var nz int
	for j := 0; j < b.cols; j++ {
		if nz+a.rows > len(c.RowIdx) {
			c.grow(2*len(c.RowIdx) + a.rows) // worst case: column j fills entirely
		}
		c.ColPtr[j] = nz
		for p := b.ColPtr[j]; p < b.ColPtr[j+1]; p++ {
			beta := 1.0
			if values {
				beta = b.Values[p]
			}
			nz = Scatter(a, b.RowIdx[p], beta, w, x, j+1, c, nz)
		}
		if values {
			for p := c.ColPtr[j]; p < nz; p++ {
				c.Values[p] = x[c.RowIdx[p]]
			}
		}
	}
	c.ColPtr[b.cols] = nz
	c.trim(nz)

	return c, nil
}

// Gaxpy computes y += A·x for dense x, y. Complexity: O(nnz).
func Gaxpy(a *Matrix, x, y []float64) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNumeric(a); err != nil {
		return err
	}
	if len(x) != a.cols || len(y) != a.rows {
		return ErrDimensionMismatch
	}

	for j := 0; j < a.cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			y[a.RowIdx[p]] += a.Values[p] * x[j]
		}
	}

	return nil
}
