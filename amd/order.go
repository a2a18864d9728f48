// SPDX-License-Identifier: MIT

// Package amd: the ordering selector and quotient-graph input assembly.

package amd

import (
	"math"

	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/internal/num"
)

// Order selects which graph the minimum-degree algorithm runs on.
type Order int

const (
	// OrderNatural performs no reordering: Compute returns nil, meaning
	// the identity permutation.
	OrderNatural Order = iota

	// OrderCholesky orders the pattern of A + Aᵗ.
	OrderCholesky

	// OrderLU orders the pattern of AᵗA after stripping dense rows.
	OrderLU

	// OrderQR orders the pattern of AᵗA, assuming no dense rows.
	OrderQR
)

// Valid reports whether o is one of the four defined selectors.
// Complexity: O(1).
func (o Order) Valid() bool {
	return o >= OrderNatural && o <= OrderQR
}

// String renders the selector for debug output.
func (o Order) String() string {
	switch o {
	case OrderNatural:
		return "natural"
	case OrderCholesky:
		return "amd(A+A')"
	case OrderLU:
		return "amd(A'A, dense rows dropped)"
	case OrderQR:
		return "amd(A'A)"
	default:
		return "invalid"
	}
}

// Compute returns a fill-reducing permutation p of 0..n-1 for a under
// the given selector, or nil for OrderNatural (identity). The input is
// never modified; only its pattern is read.
//
// Validation: o must satisfy Valid() (ErrBadOrdering), a must be
// non-nil (ErrNilMatrix).
//
// Complexity: near-linear in nnz in practice; worst-case quadratic like
// every minimum-degree variant.
func Compute(o Order, a *csc.Matrix) ([]int, error) {
	if !o.Valid() {
		return nil, ErrBadOrdering
	}
	if err := csc.ValidateNotNil(a); err != nil {
		return nil, ErrNilMatrix
	}
	if o == OrderNatural {
		return nil, nil
	}

	c, dense, err := buildGraph(o, a)
	if err != nil {
		return nil, err
	}

	return minDegree(c, dense), nil
}

// buildGraph assembles the symmetric pattern C the quotient graph starts
// from, plus the "dense node" threshold. C is pattern-only, square,
// diagonal-free, and owned by the caller (minDegree rewrites it in place).
func buildGraph(o Order, a *csc.Matrix) (*csc.Matrix, int, error) {
	n := a.Cols()

	at, err := csc.Transpose(a, false)
	if err != nil {
		return nil, 0, err
	}

	// Nodes adjacent to more than dense neighbors go straight to the end
	// of the ordering; they would otherwise dominate the degree lists.
	dense := num.Max(16, int(10*math.Sqrt(float64(n))))
	dense = num.Min(n-2, dense)

	var c *csc.Matrix
	switch {
	case o == OrderCholesky && a.Rows() == n:
		c, err = csc.Add(a, at, 0, 0)
	case o == OrderLU:
		// Drop dense rows of A (dense columns of Aᵗ) before forming AᵗA,
		// otherwise a single dense row fills the product completely.
		stripDenseColumns(at, dense)
		var a2 *csc.Matrix
		if a2, err = csc.Transpose(at, false); err == nil {
			c, err = csc.Multiply(at, a2)
		}
	default: // OrderQR, and OrderCholesky on a rectangular input
		c, err = csc.Multiply(at, a)
	}
	if err != nil {
		return nil, 0, err
	}

	c.DropDiagonal()

	return c, dense, nil
}

// stripDenseColumns filters columns with more than threshold entries out
// of a, in place. Complexity: O(n + nnz).
func stripDenseColumns(a *csc.Matrix, threshold int) {
	var nz int
	for j := 0; j < a.Cols(); j++ {
		p := a.ColPtr[j]
		a.ColPtr[j] = nz
		if a.ColPtr[j+1]-p > threshold {
			continue // dense column: dropped entirely
		}
		for ; p < a.ColPtr[j+1]; p++ {
			a.RowIdx[nz] = a.RowIdx[p]
			nz++
		}
	}
	a.ColPtr[a.Cols()] = nz
}
