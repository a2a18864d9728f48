// SPDX-License-Identifier: MIT

// Package csc: call-scoped scratch arenas.
//
// Factorization kernels need three pieces of scratch: a dense
// accumulator, an integer mark array and an integer stack. Low-level
// codes traditionally carve these out of one flat buffer with manual
// offset arithmetic; Workspace makes the layout explicit instead. A
// Workspace is owned by its caller and never shared between unrelated
// calls, so concurrent factorizations on distinct workspaces are safe
// without locking.

package csc

// Workspace bundles the scratch arrays every numeric kernel borrows:
//
//   - X: dense accumulator, len n, kept all-zero between columns;
//   - Mark: visit markers, len n; Mark[i] records the last column whose
//     traversal touched node i (-1 = never), so consecutive columns
//     reuse it without clearing;
//   - Stack: reach/DFS stack, len 2n (the second half serves as the
//     pause-position stack of the nonrecursive DFS).
type Workspace struct {
	X     []float64
	Mark  []int
	Stack []int
}

// NewWorkspace allocates a workspace for order-n problems, ready for use
// (Mark primed to -1, X zeroed). Complexity: O(n).
func NewWorkspace(n int) *Workspace {
	w := &Workspace{
		X:     make([]float64, n),
		Mark:  make([]int, n),
		Stack: make([]int, 2*n),
	}
	for i := range w.Mark {
		w.Mark[i] = -1
	}

	return w
}

// Fits reports whether the workspace is large enough for an order-n
// problem. Complexity: O(1).
func (w *Workspace) Fits(n int) bool {
	return w != nil && len(w.X) >= n && len(w.Mark) >= n && len(w.Stack) >= 2*n
}

// Reset restores the pristine state (X zeroed, Mark all -1). Call it
// before reusing a workspace across unrelated factorizations; within one
// factorization the kernels maintain the invariants themselves.
// Complexity: O(n).
func (w *Workspace) Reset() {
	for i := range w.X {
		w.X[i] = 0
	}
	for i := range w.Mark {
		w.Mark[i] = -1
	}
}
