// SPDX-License-Identifier: MIT

// Package csc: ingestion — triplet compression and dense conversion.
// Triplets are the natural assembly format (finite elements, circuit
// stamps, incidence lists); compression buckets them by column and sums
// duplicates so downstream kernels can assume at most one entry per
// (row, column) pair.

package csc

import (
	"github.com/katalvlaran/sparsix/internal/num"
)

// FromTriplets builds an m×n CSC matrix from parallel (rows, cols, vals)
// triplet slices. Duplicate (i,j) entries are summed. vals may be nil to
// build a pattern-only matrix.
//
// Validation (in order):
//  1. m, n positive (ErrBadShape).
//  2. rows/cols/vals lengths agree (ErrDimensionMismatch).
//  3. every index in range (ErrOutOfRange).
//  4. every value finite (ErrNaNInf) — ingestion is the one seam where
//     the finite-value policy is enforced; kernels assume it afterwards.
//
// Complexity: O(m + n + nnz) time, O(m + nnz) extra space.
func FromTriplets(m, n int, rows, cols []int, vals []float64) (*Matrix, error) {
	if m <= 0 || n <= 0 {
		return nil, ErrBadShape
	}
	if len(rows) != len(cols) || (vals != nil && len(vals) != len(rows)) {
		return nil, ErrDimensionMismatch
	}

	nz := len(rows)
	for k := 0; k < nz; k++ {
		if rows[k] < 0 || rows[k] >= m || cols[k] < 0 || cols[k] >= n {
			return nil, ErrOutOfRange
		}
		if vals != nil && !num.Finite(vals[k]) {
			return nil, ErrNaNInf
		}
	}

	a, err := New(m, n, num.Max(nz, 1), vals != nil)
	if err != nil {
		return nil, err
	}

	// Bucket-count per column, then prefix-sum into ColPtr.
	count := make([]int, n)
	for k := 0; k < nz; k++ {
		count[cols[k]]++
	}
	num.CumSum(a.ColPtr, count) // count[j] now points at column j's next free slot

	// Place entries; duplicates land side by side only if identical order,
	// so a dedup pass follows.
	for k := 0; k < nz; k++ {
		p := count[cols[k]]
		count[cols[k]]++
		a.RowIdx[p] = rows[k]
		if vals != nil {
			a.Values[p] = vals[k]
		}
	}
	a.trim(nz)
	a.dedup()

	return a, nil
}

// dedup sums duplicate entries in place, using a per-row "last seen
// position in this column" map. Preserves first-occurrence order within
// each column. Complexity: O(m + nnz).
func (a *Matrix) dedup() {
	last := make([]int, a.rows)
	for i := range last {
		last[i] = -1
	}

	var nz int
	for j := 0; j < a.cols; j++ {
		q := nz // column j starts here after compaction
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			if last[i] >= q {
				if a.Values != nil { // duplicate: fold into the first occurrence
					a.Values[last[i]] += a.Values[p]
				}
				continue
			}
			last[i] = nz
			a.RowIdx[nz] = i
			if a.Values != nil {
				a.Values[nz] = a.Values[p]
			}
			nz++
		}
		a.ColPtr[j] = q
	}
	a.ColPtr[a.cols] = nz
	a.trim(nz)
}

// NewFromDense converts a dense row-major [][]float64 into CSC form,
// dropping exact zeros. All rows must share one length.
// Complexity: O(m·n).
func NewFromDense(d [][]float64) (*Matrix, error) {
	m := len(d)
	if m == 0 || len(d[0]) == 0 {
		return nil, ErrBadShape
	}
	n := len(d[0])

	var nz int
	for i := 0; i < m; i++ {
		if len(d[i]) != n {
			return nil, ErrDimensionMismatch
		}
		for j := 0; j < n; j++ {
			if !num.Finite(d[i][j]) {
				return nil, ErrNaNInf
			}
			if d[i][j] != 0 {
				nz++
			}
		}
	}

	a, err := New(m, n, num.Max(nz, 1), true)
	if err != nil {
		return nil, err
	}

	nz = 0
	for j := 0; j < n; j++ { // column-major fill keeps rows ascending per column
		a.ColPtr[j] = nz
		for i := 0; i < m; i++ {
			if d[i][j] != 0 {
				a.RowIdx[nz] = i
				a.Values[nz] = d[i][j]
				nz++
			}
		}
	}
	a.ColPtr[n] = nz
	a.trim(nz)

	return a, nil
}

// UpperTriangular returns a copy keeping only entries with row <= col —
// the storage convention the Cholesky path expects for symmetric input.
// Complexity: O(n + nnz).
func (a *Matrix) UpperTriangular() *Matrix {
	c := a.Clone()
	var nz int
	for j := 0; j < c.cols; j++ {
		q := c.ColPtr[j]
		c.ColPtr[j] = nz
		for p := q; p < a.ColPtr[j+1]; p++ {
			if c.RowIdx[p] <= j {
				c.RowIdx[nz] = c.RowIdx[p]
				if c.Values != nil {
					c.Values[nz] = c.Values[p]
				}
				nz++
			}
		}
	}
	c.ColPtr[c.cols] = nz
	c.trim(nz)

	return c
}

// DropDiagonal removes diagonal entries in place — orderings operate on
// the off-diagonal pattern graph. Complexity: O(n + nnz).
func (a *Matrix) DropDiagonal() {
	var nz int
	for j := 0; j < a.cols; j++ {
		q := a.ColPtr[j]
		a.ColPtr[j] = nz
		for p := q; p < a.ColPtr[j+1]; p++ {
			if a.RowIdx[p] != j {
				a.RowIdx[nz] = a.RowIdx[p]
				if a.Values != nil {
					a.Values[nz] = a.Values[p]
				}
				nz++
			}
		}
	}
	a.ColPtr[a.cols] = nz
	a.trim(nz)
}
