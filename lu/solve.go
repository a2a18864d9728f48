// SPDX-License-Identifier: MIT

// Package lu: applying the factors to right-hand sides.

package lu

import (
	"errors"

	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/triangular"
)

// Solve returns x with A·x = b, given a factorization P·A·Q = L·U:
//
//	y = P·b;  L·z = y;  U·w = z;  x = Q·w.
//
// b is read-only; the solution is freshly allocated and matches b's
// length. A zero factor diagonal surfaces as ErrSingular rather than as
// ±Inf in the output.
//
// Complexity: O(nnz(L) + nnz(U)).
func Solve(f *Factor, b []float64) ([]float64, error) {
	if f == nil || f.L == nil || f.U == nil {
		return nil, ErrNilMatrix
	}

	n := f.L.Cols()
	if err := csc.ValidateVecLen(n, b); err != nil {
		return nil, ErrDimensionMismatch
	}

	// x[pinv[i]] = b[i]: rows into pivotal order.
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[f.Perm.Pinv[i]] = b[i]
	}

	if err := triangular.LSolve(f.L, x); err != nil {
		return nil, translateSolveErr(err)
	}
	if err := triangular.USolve(f.U, x); err != nil {
		return nil, translateSolveErr(err)
	}

	// Undo the column permutation: out[q[k]] = x[k].
	if f.Q == nil {
		return x, nil
	}
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[f.Q[k]] = x[k]
	}

	return out, nil
}

// translateSolveErr maps substitution sentinels onto this package's
// error surface.
func translateSolveErr(err error) error {
	if errors.Is(err, triangular.ErrZeroDiagonal) {
		return ErrSingular
	}

	return err
}
