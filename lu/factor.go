// SPDX-License-Identifier: MIT

// Package lu: left-looking numeric factorization with threshold partial
// pivoting.
//
// Steps (per column k):
//  1. Sparse triangular solve x = L \ A[:,q[k]] — reachability DFS over
//     the part of L already built, then substitution over exactly the
//     touched pattern.
//  2. Pivot search over the not-yet-pivotal rows of x: find the largest
//     magnitude; under threshold t, prefer the diagonal candidate when
//     its magnitude is within factor t of the maximum.
//  3. Emit the column: the pivot leads U's column (diagonal first),
//     rows already pivotal follow as U entries, the rest divide by the
//     pivot and become L entries under a unit diagonal.
//
// The row permutation emerges from the pivot choices; L's row indices
// are rewritten into pivotal order at the end, making L genuinely lower
// triangular with its diagonal first.
//
// Time complexity: O(flops(L,U)) — bounded by the touched pattern.
// Memory usage:    the symbolic estimates, grown geometrically if short.

package lu

import (
	"fmt"

	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/internal/num"
	"github.com/katalvlaran/sparsix/triangular"
)

// Factor is a computed LU factorization: P·A·Q = L·U.
type Factor struct {
	// L is lower triangular with unit diagonal, stored first per column.
	L *csc.Matrix

	// U is upper triangular with the diagonal stored first per column.
	U *csc.Matrix

	// Perm is the row permutation pair discovered by pivoting.
	Perm *csc.Perm

	// Q is the column permutation from symbolic analysis, nil for
	// natural order.
	Q []int
}

// String renders a short debug view of the factorization.
func (f *Factor) String() string {
	return fmt.Sprintf("lu.Factor n=%d nnz(L)=%d nnz(U)=%d ordered=%t",
		f.L.Cols(), f.L.NNZ(), f.U.NNZ(), f.Q != nil)
}

// Factorize runs the numeric phase on a under the symbolic analysis s.
// Options govern pivoting; validation happens before any factorization
// work:
//
//  1. threshold ∈ [0,1] and finite (ErrBadThreshold);
//  2. a square, numeric, matching s (ErrNonSquare, ErrPatternOnly,
//     ErrDimensionMismatch).
//
// ws may be nil (allocated privately) or a caller-provided workspace for
// reuse; distinct workspaces make concurrent calls safe.
//
// Returns ErrSingular when no admissible pivot reaches the absolute
// tolerance; no partial factor is ever returned.
func Factorize(a *csc.Matrix, s *Symbolic, ws *csc.Workspace, opts ...Option) (*Factor, error) {
	o := gatherOptions(opts...)
	if !(o.threshold >= 0 && o.threshold <= 1) || !num.Finite(o.threshold) {
		return nil, ErrBadThreshold
	}
	if a == nil || s == nil {
		return nil, ErrNilMatrix
	}
	if err := csc.ValidateNumeric(a); err != nil {
		return nil, ErrPatternOnly
	}
	if err := csc.ValidateSquare(a); err != nil {
		return nil, ErrNonSquare
	}
	if a.Cols() != s.Order() {
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

	l, err := csc.New(n, n, s.LNonzeros, true)
	if err != nil {
		return nil, err
	}
	u, err := csc.New(n, n, s.UNonzeros, true)
	if err != nil {
		return nil, err
	}

	pinv := make([]int, n)
	for i := range pinv {
		pinv[i] = -1
	}

	if bad := leftLooking(a, s.Q, l, u, pinv, o, ws); bad >= 0 {
		return nil, ErrSingular
	}

	p := make([]int, n)
	for i := 0; i < n; i++ {
		p[pinv[i]] = i
	}
	perm, err := csc.NewPerm(p)
	if err != nil {
		return nil, err // unreachable: pinv is complete after success
	}

	return &Factor{L: l, U: u, Perm: perm, Q: s.Q}, nil
}

// FactorOf is the one-shot convenience: Analyze + Factorize.
func FactorOf(a *csc.Matrix, order amd.Order, opts ...Option) (*Factor, error) {
	s, err := Analyze(a, order)
	if err != nil {
		return nil, err
	}

	return Factorize(a, s, nil, opts...)
}

// leftLooking is the exception-free numeric kernel. It assembles l and u
// in place, records the discovered row permutation in pinv (-1 =
// not yet pivotal on entry), and returns -1 on success or the column
// index at which no admissible pivot was found.
func leftLooking(a *csc.Matrix, q []int, l, u *csc.Matrix, pinv []int, o options, ws *csc.Workspace) int {
	n := a.Cols()
	x := ws.X
	var lnz, unz int

	for k := 0; k < n; k++ {
		// Open column k of both factors; grow ahead of the worst case so
		// the inner loops never reallocate.
		l.ColPtr[k] = lnz
		u.ColPtr[k] = unz
		if lnz+n > len(l.RowIdx) {
			l.Grow(2*len(l.RowIdx) + n)
		}
		if unz+n > len(u.RowIdx) {
			u.Grow(2*len(u.RowIdx) + n)
		}

		col := k
		if q != nil {
			col = q[k]
		}

		// x = L \ A[:,col] over the touched pattern only.
		top, err := triangular.SpSolve(l, a, col, ws, pinv)
		if err != nil {
			return k // cannot happen with validated inputs
		}

		// Pivot search among not-yet-pivotal rows.
		ipiv := -1
		amax := -1.0
		for p := top; p < n; p++ {
			i := ws.Stack[p]
			if pinv[i] >= 0 {
				continue // already pivotal: will become a U entry
			}
			if t := num.Abs(x[i]); t > amax {
				amax = t
				ipiv = i
			}
		}
		if ipiv == -1 || amax <= 0 || amax < o.absTol {
			return k // numerically singular at column k
		}
		// Threshold rule: take the diagonal candidate when admissible.
		if pinv[col] < 0 && num.Abs(x[col]) >= amax*o.threshold {
			ipiv = col
		}

		// Emit the column. U's diagonal (the pivot) leads its column;
		// L's unit diagonal leads its column.
		pivot := x[ipiv]
		u.RowIdx[unz] = k
		u.Values[unz] = pivot
		unz++
		pinv[ipiv] = k
		l.RowIdx[lnz] = ipiv
		l.Values[lnz] = 1
		lnz++

		for p := top; p < n; p++ {
			i := ws.Stack[p]
			switch {
			case pinv[i] < 0: // below the pivot row: L entry, scaled
				l.RowIdx[lnz] = i
				l.Values[lnz] = x[i] / pivot
				lnz++
			case pinv[i] < k: // above the pivot row: U entry
				u.RowIdx[unz] = pinv[i]
				u.Values[unz] = x[i]
				unz++
			}
			// pinv[i] == k is the pivot itself, already emitted.
			x[i] = 0
		}
	}

	// Rewrite L's row indices into pivotal order and shrink both factors
	// to their final sizes.
	for p := 0; p < lnz; p++ {
		l.RowIdx[p] = pinv[l.RowIdx[p]]
	}
	l.Finalize(lnz)
	u.Finalize(unz)

	return -1
}
