// SPDX-License-Identifier: MIT
// Package triangular: sentinel error set. Matched via errors.Is.

package triangular

import "errors"

var (
	// ErrNilMatrix indicates a nil factor argument.
	ErrNilMatrix = errors.New("triangular: nil matrix")

	// ErrDimensionMismatch indicates a right-hand side whose length does
	// not match the factor order.
	ErrDimensionMismatch = errors.New("triangular: dimension mismatch")

	// ErrZeroDiagonal is returned when a diagonal entry of the factor is
	// exactly zero — a singular factor cannot be substituted through.
	ErrZeroDiagonal = errors.New("triangular: zero diagonal")

	// ErrPatternOnly indicates a pattern-only factor (no values to
	// substitute with).
	ErrPatternOnly = errors.New("triangular: matrix is pattern-only")
)
