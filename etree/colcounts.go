// SPDX-License-Identifier: MIT

// Package etree: column counts of the Cholesky factor.
//
// # Column counts
//
// count[c] is the number of stored entries in column c of L, diagonal
// included. Knowing every count before numeric work starts is what lets
// the factorization preallocate exact buffers and never reallocate in
// the hot loop.
//
// Steps (per the row-attribution argument):
//  1. Start every count at 1 — the diagonal.
//  2. For every stored entry (i, j) with i < j: walk from i toward j
//     along parent, incrementing the count of each node not yet
//     attributed to column j, stopping at the first node that is. A
//     per-node marker holding "last column attributed" makes the stop
//     test O(1) and needs no clearing between columns.
//
// The walk touches each node at most once per row subtree it belongs to,
// so total time is bounded by the size of the factor pattern, not n·nnz.

package etree

import "github.com/katalvlaran/sparsix/csc"

// ColCounts computes the per-column nonzero counts of the factor of a's
// pattern (upper-triangle symmetric convention), given its elimination
// forest and a postorder of that forest. Columns are processed in
// postorder, which fixes the attribution order and makes the output
// reproducible run-to-run.
//
// Returns counts[0..n-1].
// Complexity: O(n + |pattern of L|) time, O(n) space.
func ColCounts(a *csc.Matrix, parent, post []int) ([]int, error) {
	if err := csc.ValidateNotNil(a); err != nil {
		return nil, ErrNilMatrix
	}
	if err := csc.ValidateSquare(a); err != nil {
		return nil, ErrNonSquare
	}

	n := a.Cols()
	if len(parent) != n || len(post) != n || !validForest(parent) {
		return nil, ErrBadParent
	}

	counts := make([]int, n)
	mark := make([]int, n) // mark[t]: last column t was attributed to
	for i := range mark {
		counts[i] = 1 // diagonal
		mark[i] = -1
	}

	for k := 0; k < n; k++ {
		j := post[k]
		mark[j] = j // the walk stops when it reaches j itself

		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			if i >= j {
				continue // diagonal or lower-triangle entry: no walk
			}
			for t := i; t != -1 && mark[t] != j; t = parent[t] {
				counts[t]++ // L[j,t] is a new nonzero of column t
				mark[t] = j
			}
		}
	}

	return counts, nil
}

// ColPointers prefix-sums counts into a cp[0..n] pointer array;
// cp[n] is the total factor nonzero count. Complexity: O(n).
func ColPointers(counts []int) []int {
	cp := make([]int, len(counts)+1)
	var sum int
	for j, c := range counts {
		cp[j] = sum
		sum += c
	}
	cp[len(counts)] = sum

	return cp
}
