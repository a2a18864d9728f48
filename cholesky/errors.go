// SPDX-License-Identifier: MIT
// Package cholesky: sentinel error set. Matched via errors.Is. The inner
// numeric kernel signals failure with a negative column index; only this
// package's exported functions translate that into an error.

package cholesky

import "errors"

var (
	// ErrNotPositiveDefinite is returned when elimination meets a
	// non-positive pivot: the input is symmetric but not positive
	// definite. The message is fixed and pattern-matchable.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")

	// ErrSingularFactor is returned by Solve when a factor diagonal is
	// zero. The message is fixed and pattern-matchable.
	ErrSingularFactor = errors.New("cholesky: matrix is singular")

	// ErrNilMatrix indicates a nil matrix, symbolic or factor argument.
	ErrNilMatrix = errors.New("cholesky: nil argument")

	// ErrNonSquare signals a non-square input.
	ErrNonSquare = errors.New("cholesky: matrix is not square")

	// ErrDimensionMismatch indicates a right-hand side of the wrong
	// length, or a symbolic analysis that does not match the matrix.
	ErrDimensionMismatch = errors.New("cholesky: dimension mismatch")

	// ErrPatternOnly indicates a pattern-only input to the numeric phase.
	ErrPatternOnly = errors.New("cholesky: matrix is pattern-only")
)
