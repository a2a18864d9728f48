// SPDX-License-Identifier: MIT

// Package triangular: dense-right-hand-side substitution kernels.
//
// All four kernels share one discipline: per column, divide by the
// diagonal (stored first in the column slice), then scatter-subtract the
// scaled remainder of the column into the workspace. The inner loops are
// exception-free; validation happens once up front and a zero diagonal
// aborts with a sentinel before any division.

package triangular

import "github.com/katalvlaran/sparsix/csc"

// validate runs the shared precondition set for the dense kernels.
func validate(f *csc.Matrix, x []float64) error {
	if err := csc.ValidateNotNil(f); err != nil {
		return ErrNilMatrix
	}
	if f.IsPattern() {
		return ErrPatternOnly
	}
	if f.Rows() != f.Cols() || len(x) != f.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// LSolve solves L·x = b in place: x holds b on entry and the solution on
// return. L is lower triangular with the diagonal first in each column.
// Complexity: O(nnz(L)).
func LSolve(l *csc.Matrix, x []float64) error {
	if err := validate(l, x); err != nil {
		return err
	}

	n := l.Cols()
	for j := 0; j < n; j++ { // forward: columns left to right
		d := l.Values[l.ColPtr[j]]
		if d == 0 {
			return ErrZeroDiagonal
		}
		x[j] /= d
		for p := l.ColPtr[j] + 1; p < l.ColPtr[j+1]; p++ {
			x[l.RowIdx[p]] -= l.Values[p] * x[j]
		}
	}

	return nil
}

// LTSolve solves Lᵗ·x = b in place, walking the same lower-triangular
// storage backward — column j of L is row j of Lᵗ.
// Complexity: O(nnz(L)).
func LTSolve(l *csc.Matrix, x []float64) error {
	if err := validate(l, x); err != nil {
		return err
	}

	n := l.Cols()
	for j := n - 1; j >= 0; j-- { // backward: columns right to left
		for p := l.ColPtr[j] + 1; p < l.ColPtr[j+1]; p++ {
			x[j] -= l.Values[p] * x[l.RowIdx[p]]
		}
		d := l.Values[l.ColPtr[j]]
		if d == 0 {
			return ErrZeroDiagonal
		}
		x[j] /= d
	}

	return nil
}

// USolve solves U·x = b in place. U is upper triangular with the
// diagonal first in each column (the convention the LU factorization
// emits). Complexity: O(nnz(U)).
func USolve(u *csc.Matrix, x []float64) error {
	if err := validate(u, x); err != nil {
		return err
	}

	n := u.Cols()
	for j := n - 1; j >= 0; j-- { // backward substitution
		d := u.Values[u.ColPtr[j]]
		if d == 0 {
			return ErrZeroDiagonal
		}
		x[j] /= d
		for p := u.ColPtr[j] + 1; p < u.ColPtr[j+1]; p++ {
			x[u.RowIdx[p]] -= u.Values[p] * x[j]
		}
	}

	return nil
}

// UTSolve solves Uᵗ·x = b in place, the forward companion of USolve.
// Complexity: O(nnz(U)).
func UTSolve(u *csc.Matrix, x []float64) error {
	if err := validate(u, x); err != nil {
		return err
	}

	n := u.Cols()
	for j := 0; j < n; j++ {
		for p := u.ColPtr[j] + 1; p < u.ColPtr[j+1]; p++ {
			x[j] -= u.Values[p] * x[u.RowIdx[p]]
		}
		d := u.Values[u.ColPtr[j]]
		if d == 0 {
			return ErrZeroDiagonal
		}
		x[j] /= d
	}

	return nil
}
