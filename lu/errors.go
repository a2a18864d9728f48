// SPDX-License-Identifier: MIT
// Package lu: sentinel error set. Matched via errors.Is. Validation
// errors fire before any factorization work; numeric errors are
// translated from kernel sentinels at the exported boundary.

package lu

import "errors"

var (
	// ErrBadOrdering is returned when the ordering selector is outside
	// [0,3]. The message is fixed and pattern-matchable.
	ErrBadOrdering = errors.New("lu: ordering must be an integer in [0,3]")

	// ErrBadThreshold is returned when the pivot threshold is outside
	// [0,1] or not finite. The message is fixed and pattern-matchable.
	ErrBadThreshold = errors.New("lu: threshold must be in [0,1]")

	// ErrSingular is returned when no admissible pivot reaches the
	// absolute tolerance. The message is fixed and pattern-matchable.
	ErrSingular = errors.New("lu: matrix is singular")

	// ErrNilMatrix indicates a nil matrix, symbolic or factor argument.
	ErrNilMatrix = errors.New("lu: nil argument")

	// ErrNonSquare signals a non-square input.
	ErrNonSquare = errors.New("lu: matrix is not square")

	// ErrDimensionMismatch indicates a right-hand side of the wrong
	// length, or a symbolic analysis that does not match the matrix.
	ErrDimensionMismatch = errors.New("lu: dimension mismatch")

	// ErrPatternOnly indicates a pattern-only input to the numeric phase.
	ErrPatternOnly = errors.New("lu: matrix is pattern-only")
)
