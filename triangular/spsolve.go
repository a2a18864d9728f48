// SPDX-License-Identifier: MIT

// Package triangular: sparse-right-hand-side triangular solve.
//
// Solving G·x = B[:,k] when the right-hand side is itself a sparse
// column has two halves: first discover the nonzero pattern of x — the
// set of nodes reachable from B[:,k]'s rows in the graph of G — then run
// substitution over exactly those positions, in the topological order
// the depth-first search already produced. This is the engine inside
// left-looking LU: one call per factor column, total cost proportional
// to the entries actually touched, never O(n) per column.

package triangular

import "github.com/katalvlaran/sparsix/csc"

// Reach computes the set of nodes reachable from the rows of B[:,k] in
// the directed graph of g (an edge j→i per stored entry (i, j)). The
// result is the suffix w.Stack[top:n], in topological order for
// substitution. pinv maps a node to its column in g; a negative entry
// means the node has no column yet (left-looking LU's not-yet-pivotal
// rows) and is a leaf.
//
// Marking is generational: node i is considered visited when
// w.Mark[i] == k, so a fresh workspace (Mark primed to -1) consumed with
// strictly ascending k needs no clearing between calls.
//
// Returns top; callers read w.Stack[top:n].
// Complexity: O(entries touched), independent of n.
func Reach(g, b *csc.Matrix, k int, w *csc.Workspace, pinv []int) (int, error) {
	if g == nil || b == nil {
		return 0, ErrNilMatrix
	}

	n := g.Cols()
	if k < 0 || k >= b.Cols() || !w.Fits(n) {
		return 0, ErrDimensionMismatch
	}

	xi, pstack := w.Stack[:n], w.Stack[n:2*n]
	top := n
	for p := b.ColPtr[k]; p < b.ColPtr[k+1]; p++ {
		if j := b.RowIdx[p]; w.Mark[j] != k {
			top = dfs(j, g, k, top, xi, pstack, w.Mark, pinv)
		}
	}

	return top, nil
}

// dfs is the nonrecursive depth-first walk: xi[0..head] is the descent
// stack, pstack remembers each paused node's scan position, and finished
// nodes are emitted into xi[top:] from the high end — yielding reverse
// topological order without a second pass.
func dfs(j int, g *csc.Matrix, k, top int, xi, pstack, mark, pinv []int) int {
	var head int
	xi[0] = j

	for head >= 0 {
		j = xi[head]
		jcol := j // column of node j within g
		if pinv != nil {
			jcol = pinv[j]
		}
		if mark[j] != k {
			mark[j] = k // first visit: start scanning j's column
			if jcol < 0 {
				pstack[head] = 0
			} else {
				pstack[head] = g.ColPtr[jcol]
			}
		}

		var p2 int
		if jcol >= 0 {
			p2 = g.ColPtr[jcol+1]
		}
		done := true
		for p := pstack[head]; p < p2; p++ {
			i := g.RowIdx[p]
			if mark[i] == k {
				continue // already visited
			}
			pstack[head] = p // pause j here
			head++
			xi[head] = i // descend into i
			done = false
			break
		}
		if done { // all of j's descendants emitted: emit j
			head--
			top--
			xi[top] = j
		}
	}

	return top
}

// SpSolve solves G·x = B[:,k] with sparse right-hand side and sparse
// solution. The solution's pattern lands in w.Stack[top:n] and its
// values in w.X (positions outside the pattern are untouched garbage —
// callers read only the pattern). G must keep its diagonal first in
// every column; both triangular orientations work because the reach
// order already respects the dependencies.
//
// pinv follows the Reach contract; nodes without a column divide by
// nothing and simply carry their right-hand-side value.
//
// Returns top. Complexity: O(flops of the touched columns).
func SpSolve(g, b *csc.Matrix, k int, w *csc.Workspace, pinv []int) (int, error) {
	if g == nil || b == nil {
		return 0, ErrNilMatrix
	}
	if g.IsPattern() || b.IsPattern() {
		return 0, ErrPatternOnly
	}

	top, err := Reach(g, b, k, w, pinv)
	if err != nil {
		return 0, err
	}

	n := g.Cols()
	x, xi := w.X, w.Stack[:n]
	for p := top; p < n; p++ {
		x[xi[p]] = 0 // clear exactly the pattern, nothing more
	}
	for p := b.ColPtr[k]; p < b.ColPtr[k+1]; p++ {
		x[b.RowIdx[p]] = b.Values[p]
	}

	for px := top; px < n; px++ {
		j := xi[px]
		jcol := j
		if pinv != nil {
			jcol = pinv[j]
		}
		if jcol < 0 {
			continue // no column: x[j] is final
		}
		x[j] /= g.Values[g.ColPtr[jcol]] // diagonal, stored first
		for p := g.ColPtr[jcol] + 1; p < g.ColPtr[jcol+1]; p++ {
			x[g.RowIdx[p]] -= g.Values[p] * x[j]
		}
	}

	return top, nil
}
