// SPDX-License-Identifier: MIT
// Package csc: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the csc
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for programmer errors in private helpers (if any).

package csc

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csc: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors validate before allocation.
	ErrBadShape = errors.New("csc: invalid shape")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("csc: nil matrix")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("csc: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes or Multiply where
	// a.Cols() != b.Rows(), or a right-hand side shorter than n.
	ErrDimensionMismatch = errors.New("csc: dimension mismatch")

	// ErrBadPermutation is returned when a permutation slice is not a
	// bijection over 0..n-1 (wrong length, repeated or out-of-range entry).
	ErrBadPermutation = errors.New("csc: invalid permutation")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion where finite
	// values are required by the numeric policy.
	ErrNaNInf = errors.New("csc: NaN or Inf encountered")

	// ErrPatternOnly is returned when a numeric operation is requested on
	// a pattern-only matrix (nil Values).
	ErrPatternOnly = errors.New("csc: matrix is pattern-only")

	// ErrInvalidStructure is returned by Validate when the column-pointer
	// or row-index invariants do not hold (ColPtr decreasing, wrong
	// lengths, row index out of range).
	ErrInvalidStructure = errors.New("csc: invalid CSC structure")
)
