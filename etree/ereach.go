// SPDX-License-Identifier: MIT

// Package etree: the elimination-tree reach set.
//
// # Ereach
//
// Column k of a Cholesky factor is assembled from exactly the columns in
// reach(k): the nodes on the paths from every stored row i < k of column
// k up the elimination tree, stopped before k. Computing this set per
// column — instead of scanning all k-1 earlier columns — is what bounds
// the whole factorization to the size of the pattern it actually
// produces.
//
// The routine follows the shared-marker discipline of the workspace:
// Mark[i] == k means "node i already collected for column k", so
// consecutive columns of one factorization reuse the workspace with no
// clearing between calls.

package etree

import "github.com/katalvlaran/sparsix/csc"

// Ereach computes the reach set of column k over the elimination forest
// parent, using w.Stack as the output stack and w.Mark as the visit
// marker. The set is returned as the suffix w.Stack[top:n], sorted
// ascending, containing only columns < k. Rows >= k stored in column k
// are ignored.
//
// Workspace contract: w.Mark[i] must not equal k for any node not yet
// visited by column k — satisfied by a fresh workspace (Mark primed to
// -1) consumed with ascending k, the pattern every factorization follows.
//
// Returns top; callers read w.Stack[top:n].
// Complexity: O(|reach(k)|) amortized — each visited node is collected
// exactly once per column.
func Ereach(a *csc.Matrix, k int, parent []int, w *csc.Workspace) (int, error) {
	if err := csc.ValidateNotNil(a); err != nil {
		return 0, ErrNilMatrix
	}

	n := a.Cols()
	if k < 0 || k >= n || len(parent) != n {
		return 0, ErrBadParent
	}
	if !w.Fits(n) {
		return 0, ErrBadWorkspace
	}

	s, mark := w.Stack, w.Mark
	top := n
	mark[k] = k // stop every upward walk at k

	for p := a.ColPtr[k]; p < a.ColPtr[k+1]; p++ {
		i := a.RowIdx[p]
		if i >= k {
			continue // only the upper triangle drives the reach
		}

		// Collect the unvisited part of the path i → k. The path is
		// discovered root-ward (ascending), so it is buffered in s[0:len]
		// and then flushed onto the descending stack to keep the final
		// suffix ascending.
		var length int
		for ; mark[i] != k; i = parent[i] {
			s[length] = i
			length++
			mark[i] = k
		}
		for length > 0 {
			length--
			top--
			s[top] = s[length]
		}
	}

	return top, nil
}
