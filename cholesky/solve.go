// SPDX-License-Identifier: MIT

// Package cholesky: applying a factor to right-hand sides.

package cholesky

import (
	"errors"

	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/triangular"
)

// Solve returns x with A·x = b, given a factorization of A. The chain is
// permute → forward substitute → backward substitute → permute back:
//
//	y = P·b;  L·z = y;  Lᵗ·w = z;  x = Pᵗ·w.
//
// b is read-only; the solution is freshly allocated and matches b's
// length. A zero factor diagonal surfaces as ErrSingularFactor rather
// than as ±Inf in the output.
//
// Complexity: O(nnz(L)).
func Solve(f *Factor, b []float64) ([]float64, error) {
	if f == nil || f.L == nil {
		return nil, ErrNilMatrix
	}

	n := f.L.Cols()
	if err := csc.ValidateVecLen(n, b); err != nil {
		return nil, ErrDimensionMismatch
	}

	// x[pinv[i]] = b[i]: rows renumbered into permuted coordinates.
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[f.Perm.Pinv[i]] = b[i]
	}

	if err := triangular.LSolve(f.L, x); err != nil {
		return nil, translateSolveErr(err)
	}
	if err := triangular.LTSolve(f.L, x); err != nil {
		return nil, translateSolveErr(err)
	}

	// out[i] = x[pinv[i]]: back to original coordinates.
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x[f.Perm.Pinv[i]]
	}

	return out, nil
}

// translateSolveErr maps the substitution kernels' sentinels onto this
// package's error surface, keeping one seam between numeric sentinels
// and caller-visible errors.
func translateSolveErr(err error) error {
	if errors.Is(err, triangular.ErrZeroDiagonal) {
		return ErrSingularFactor
	}

	return err
}
