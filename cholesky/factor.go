// SPDX-License-Identifier: MIT

// Package cholesky: up-looking numeric factorization.
//
// # Up-looking Cholesky
//
// Column k of L is computed from the columns in its reach set:
//
//	Steps (per column k):
//	 1. Ereach(k) — the ascending set of earlier columns that
//	    influence k.
//	 2. Scatter the permuted column A[:,k] into the dense accumulator.
//	 3. For each reach column i (ascending): L[k,i] = x[i]/L[i,i], then
//	    subtract L[k,i] times the rest of column i (sparse axpy) and
//	    accumulate d -= L[k,i]².
//	 4. d ≤ 0 means the matrix is not positive definite — stop; else
//	    L[k,k] = √d.
//
// The diagonal lands first in every column by construction: column i
// receives its diagonal at step k = i, and its subdiagonal entries
// arrive later in ascending k.
//
// Time complexity: O(flops(L)) — proportional to the factor pattern.
// Memory usage:    the exact buffers Analyze sized, plus one workspace.

package cholesky

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/etree"
)

// Factor is a computed Cholesky factorization: L·Lᵗ = P·A·Pᵗ.
type Factor struct {
	// L is lower triangular, diagonal first in every column.
	L *csc.Matrix

	// Perm is the permutation the factorization was computed under.
	Perm *csc.Perm
}

// String renders a short debug view of the factorization.
func (f *Factor) String() string {
	return fmt.Sprintf("cholesky.Factor n=%d nnz(L)=%d", f.L.Cols(), f.L.NNZ())
}

// Factorize runs the numeric phase on a using the symbolic analysis s.
// a must carry values and share the pattern s was computed from. The
// factor is freshly allocated and owned by the caller; a is not
// modified. ws may be nil (a private workspace is allocated) or a
// caller-provided workspace of sufficient size, enabling reuse across
// repeated factorizations — and safe concurrent calls on distinct
// workspaces.
//
// Returns ErrNotPositiveDefinite if elimination meets a non-positive
// pivot; no partial factor is ever returned.
func Factorize(a *csc.Matrix, s *Symbolic, ws *csc.Workspace) (*Factor, error) {
	if a == nil || s == nil {
		return nil, ErrNilMatrix
	}
	if err := csc.ValidateNumeric(a); err != nil {
		return nil, ErrPatternOnly
	}
	if a.Cols() != s.Order() || a.Rows() != a.Cols() {
		return nil, ErrDimensionMismatch
	}

	n := a.Cols()
	if ws == nil {
		ws = csc.NewWorkspace(n)
	} else {
		if !ws.Fits(n) {
			return nil, ErrDimensionMismatch
		}
		ws.Reset()
	}

	// Numeric permutation of the input; identity still copies, keeping
	// the kernel oblivious to whether an ordering was applied.
	c, err := csc.SymPerm(a, s.Perm, true)
	if err != nil {
		return nil, err
	}

	l, err := csc.New(n, n, s.LNonzeros(), true)
	if err != nil {
		return nil, err
	}
	copy(l.ColPtr, s.ColPtr)

	bad, err := upLooking(c, s.Parent, l, ws)
	if err != nil {
		return nil, err // reach-set argument failure, not a numeric verdict
	}
	if bad >= 0 {
		// Sentinel from the kernel: column bad has a non-positive pivot.
		return nil, ErrNotPositiveDefinite
	}

	return &Factor{L: l, Perm: s.Perm}, nil
}

// FactorOf is the one-shot convenience: Analyze + Factorize.
func FactorOf(a *csc.Matrix, order amd.Order) (*Factor, error) {
	s, err := Analyze(a, order)
	if err != nil {
		return nil, err
	}

	return Factorize(a, s, nil)
}

// upLooking is the numeric kernel. It fills l (column pointers preset)
// from the permuted matrix c. The int result is the numeric verdict:
// -1 on success, or the offending column index when a pivot is
// non-positive. A non-nil error reports a reach-set argument failure
// and never overlaps with the numeric verdict.
//
// Workspace roles: ws.X dense accumulator (zero between columns),
// ws.Mark reach markers, ws.Stack reach stack — the Ereach contract.
func upLooking(c *csc.Matrix, parent []int, l *csc.Matrix, ws *csc.Workspace) (int, error) {
	n := c.Cols()
	x := ws.X

	// free[i]: next write slot of column i; starts at the diagonal slot.
	free := make([]int, n)
	copy(free, l.ColPtr[:n])

	for k := 0; k < n; k++ {
		top, err := etree.Ereach(c, k, parent, ws)
		if err != nil {
			return -1, err
		}

		// Scatter the upper-triangle column k of C into x; the diagonal
		// goes to d directly.
		x[k] = 0
		for p := c.ColPtr[k]; p < c.ColPtr[k+1]; p++ {
			if i := c.RowIdx[p]; i <= k {
				x[i] = c.Values[p]
			}
		}
		d := x[k]
		x[k] = 0

		// Eliminate: traverse the reach ascending, one sparse axpy per
		// contributing column.
		for ; top < n; top++ {
			i := ws.Stack[top]
			lki := x[i] / l.Values[l.ColPtr[i]] // divide by L[i,i], stored first
			x[i] = 0
			for p := l.ColPtr[i] + 1; p < free[i]; p++ {
				x[l.RowIdx[p]] -= l.Values[p] * lki
			}
			d -= lki * lki

			p := free[i]
			free[i]++
			l.RowIdx[p] = k // L[k,i] joins column i
			l.Values[p] = lki
		}

		if d <= 0 {
			return k, nil // not positive definite at column k
		}
		p := free[k]
		free[k]++
		l.RowIdx[p] = k // diagonal first in column k
		l.Values[p] = math.Sqrt(d)
	}

	return -1, nil
}
