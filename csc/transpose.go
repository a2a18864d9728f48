// SPDX-License-Identifier: MIT

package csc

import "github.com/katalvlaran/sparsix/internal/num"

// Transpose returns Aᵗ. When values is false (or a is pattern-only) the
// result is pattern-only — orderings and tree builders transpose
// patterns constantly and never need the numbers.
//
// Implementation: bucket-count row occupancies, prefix-sum them into the
// result's ColPtr, then place each entry — the same count/cumsum/place
// shape as triplet compression. A useful side effect: the transpose of a
// transpose has sorted row indices within every column.
//
// Complexity: O(m + n + nnz) time, O(m) extra space.
func Transpose(a *Matrix, values bool) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}

	values = values && a.Values != nil
	c, err := New(a.cols, a.rows, num.Max(a.NNZ(), 1), values)
	if err != nil {
		return nil, err
	}

	w := make([]int, a.rows) // row counts of a = column counts of c
	nnz := a.NNZ()
	for p := 0; p < nnz; p++ {
		w[a.RowIdx[p]]++
	}
	num.CumSum(c.ColPtr, w) // w[i] now points at row i's next free slot in c

	for j := 0; j < a.cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			q := w[a.RowIdx[p]]
			w[a.RowIdx[p]]++
			c.RowIdx[q] = j
			if values {
				c.Values[q] = a.Values[p]
			}
		}
	}
	c.trim(nnz)

	return c, nil
}
