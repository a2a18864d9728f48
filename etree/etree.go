// SPDX-License-Identifier: MIT

// Package etree: the elimination-tree builder.
//
// # Elimination tree
//
// For a symmetric matrix A, column k's parent in the elimination tree is
// the smallest j > k such that L[j,k] ≠ 0 in the Cholesky factor of A.
// The tree orders elimination: a column may be factored only after all
// of its descendants. Disconnected patterns yield a forest, one root per
// connected component; isolated columns are their own roots.
//
// Steps:
//  1. Initialize parent[k] = -1, ancestor[k] = -1 for all k.
//  2. For each column k and each stored row i < k in column k:
//     2.1 Walk ancestor pointers from i toward the roots.
//     2.2 Redirect every visited node's ancestor to k (path compression).
//     2.3 If the walk ends at an unset ancestor, set parent there to k.
//
// Time complexity: O(nnz · α(n)) — near-linear in stored entries.
// Memory usage:    O(n) for the ancestor array.

package etree

import "github.com/katalvlaran/sparsix/csc"

// Parent computes the elimination forest of a's pattern.
//
// With ata == false, a must be square and hold (at least) the upper
// triangle of a symmetric matrix; rows i > k in column k are ignored.
// With ata == true, the forest of AᵗA is computed without forming the
// product, the variant the normal-equations orderings consume; a may be
// rectangular.
//
// Returns parent[0..n-1], sentinel -1 marking roots.
func Parent(a *csc.Matrix, ata bool) ([]int, error) {
	if err := csc.ValidateNotNil(a); err != nil {
		return nil, ErrNilMatrix
	}
	if !ata {
		if err := csc.ValidateSquare(a); err != nil {
			return nil, ErrNonSquare
		}
	}

	n := a.Cols()
	parent := make([]int, n)
	ancestor := make([]int, n)

	// prev[r] is the last column in which row r was seen; the AᵗA walk
	// starts from there because rows of A link columns of AᵗA.
	var prev []int
	if ata {
		prev = make([]int, a.Rows())
		for i := range prev {
			prev[i] = -1
		}
	}

	for k := 0; k < n; k++ {
		parent[k] = -1
		ancestor[k] = -1

		for p := a.ColPtr[k]; p < a.ColPtr[k+1]; p++ {
			i := a.RowIdx[p]
			if ata {
				i = prev[a.RowIdx[p]]
			}
			// Walk from i to the root of its subtree, compressing the
			// path onto k as we go.
			for i != -1 && i < k {
				next := ancestor[i]
				ancestor[i] = k
				if next == -1 {
					parent[i] = k // found the subtree root: attach it under k
				}
				i = next
			}
			if ata {
				prev[a.RowIdx[p]] = k
			}
		}
	}

	return parent, nil
}

// validForest checks parent[] is within range and acyclic. Used by the
// routines that consume a caller-provided forest.
// Complexity: O(n) — every node's path is walked once under marking.
func validForest(parent []int) bool {
	n := len(parent)
	state := make([]int, n) // 0 unvisited, otherwise index+1 of the walk that closed it

	for j := 0; j < n; j++ {
		t := j
		for t != -1 && state[t] == 0 {
			state[t] = -(j + 1) // on the current path
			t = parent[t]
			if t != -1 && (t < 0 || t >= n) {
				return false
			}
		}
		if t != -1 && state[t] == -(j + 1) {
			return false // walked back onto the current path: cycle
		}
		// close out the path
		t = j
		for t != -1 && state[t] == -(j+1) {
			state[t] = j + 1
			t = parent[t]
		}
	}

	return true
}
