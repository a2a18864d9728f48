// SPDX-License-Identifier: MIT

// Package csc: the Matrix type and its structural accessors.
// This file intentionally contains ONLY the storage type, constructors and
// O(1)/O(nnz) accessors. Errors live in errors.go, validation in
// validators.go, kernels in their dedicated files, per the package
// conventions.

package csc

import (
	"fmt"
	"strings"
)

// Matrix is a sparse matrix in compressed sparse column (CSC) form.
//
// Column j's entries occupy positions ColPtr[j]..ColPtr[j+1]-1 of RowIdx
// and Values. Invariants (checked by Validate, preserved by every kernel):
//
//   - len(ColPtr) == Cols()+1 and ColPtr is non-decreasing;
//   - ColPtr[Cols()] == len(RowIdx) == number of stored entries;
//   - every RowIdx entry lies in [0, Rows());
//   - Values is either nil (pattern-only matrix) or len(Values) == len(RowIdx).
//
// Row indices within a column are NOT required to be sorted; factor
// matrices additionally keep their diagonal entry first in each column
// (see cholesky and lu).
type Matrix struct {
	rows, cols int // shape, fixed at construction

	// ColPtr indexes RowIdx/Values: column j is the half-open slice
	// [ColPtr[j], ColPtr[j+1]).
	ColPtr []int

	// RowIdx holds the row index of each stored entry.
	RowIdx []int

	// Values holds the numeric value of each stored entry, or nil for a
	// pattern-only matrix (symbolic analysis never reads values).
	Values []float64
}

// New allocates an empty m×n CSC matrix with capacity for nzmax stored
// entries. When values is false the matrix is pattern-only (Values nil).
// Returns ErrBadShape if m <= 0 or n <= 0; nzmax is clamped to at least 1.
// Complexity: O(n + nzmax) for the allocation.
func New(m, n, nzmax int, values bool) (*Matrix, error) {
	if m <= 0 || n <= 0 {
		return nil, ErrBadShape
	}
	if nzmax < 1 {
		nzmax = 1
	}

	a := &Matrix{
		rows:   m,
		cols:   n,
		ColPtr: make([]int, n+1),
		RowIdx: make([]int, nzmax),
	}
	if values {
		a.Values = make([]float64, nzmax)
	}

	return a, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (a *Matrix) Rows() int { return a.rows }

// Cols returns the number of columns. Complexity: O(1).
func (a *Matrix) Cols() int { return a.cols }

// NNZ returns the number of stored entries. Complexity: O(1).
func (a *Matrix) NNZ() int { return a.ColPtr[a.cols] }

// IsPattern reports whether the matrix stores structure only (nil Values).
// Complexity: O(1).
func (a *Matrix) IsPattern() bool { return a.Values == nil }

// Clone returns a deep copy of the matrix, trimmed to its stored entries.
// The returned Matrix is independent of the original.
// Complexity: O(n + nnz).
func (a *Matrix) Clone() *Matrix {
	nnz := a.NNZ()
	c := &Matrix{
		rows:   a.rows,
		cols:   a.cols,
		ColPtr: append([]int(nil), a.ColPtr...),
		RowIdx: append([]int(nil), a.RowIdx[:nnz]...),
	}
	if a.Values != nil {
		c.Values = append([]float64(nil), a.Values[:nnz]...)
	}

	return c
}

// trim shrinks RowIdx/Values to exactly nnz entries. Internal; callers
// guarantee nnz <= len(RowIdx).
func (a *Matrix) trim(nnz int) {
	a.RowIdx = a.RowIdx[:nnz]
	if a.Values != nil {
		a.Values = a.Values[:nnz]
	}
}

// Grow ensures capacity for at least nzmax stored entries. Kernels whose
// output size is discovered on the fly (sparse multiply, pivoting LU)
// call it to extend a factor under construction; existing entries are
// preserved. Complexity: O(current nnz) on reallocation, O(1) otherwise.
func (a *Matrix) Grow(nzmax int) { a.grow(nzmax) }

// Finalize records nnz stored entries and shrinks the entry slices to
// exactly that length — the last step of a kernel that assembled its
// output incrementally. Complexity: O(1).
func (a *Matrix) Finalize(nnz int) {
	a.ColPtr[a.cols] = nnz
	a.trim(nnz)
}

// grow ensures capacity for at least nzmax stored entries, reallocating
// with copy when needed. Internal; used by kernels whose output size is
// discovered on the fly (Multiply, LU).
func (a *Matrix) grow(nzmax int) {
	if nzmax <= len(a.RowIdx) {
		return
	}

	ri := make([]int, nzmax)
	copy(ri, a.RowIdx)
	a.RowIdx = ri

	if a.Values != nil {
		vs := make([]float64, nzmax)
		copy(vs, a.Values)
		a.Values = vs
	}
}

// String renders a compact debug view: shape, nnz and the first entries
// of each column. Intended for logs and test failure messages, not for
// serialization. Complexity: O(n + nnz).
func (a *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "csc.Matrix %dx%d, nnz=%d\n", a.rows, a.cols, a.NNZ())
	for j := 0; j < a.cols; j++ {
		if a.ColPtr[j] == a.ColPtr[j+1] {
			continue // empty column
		}
		fmt.Fprintf(&b, "  col %d:", j)
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			if a.Values == nil {
				fmt.Fprintf(&b, " (%d)", a.RowIdx[p])
			} else {
				fmt.Fprintf(&b, " (%d: %.6g)", a.RowIdx[p], a.Values[p])
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
