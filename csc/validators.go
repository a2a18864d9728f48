// SPDX-License-Identifier: MIT
// Package: csc
//
// Purpose:
//   - Provide a single, canonical source of truth for structural checks.
//   - Keep kernels minimal by delegating nil/shape/permutation checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly at the facade.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocation-free.
//   - Validate runs O(n + nnz); everything else is O(1) or O(n).

package csc

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if a == nil. Complexity: O(1).
func ValidateNotNil(a *Matrix) error {
	if a == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare ensures a is square. Assumes a is non-nil.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func ValidateSquare(a *Matrix) error {
	if a.rows != a.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateNumeric ensures a carries values (not pattern-only).
// Returns ErrPatternOnly otherwise. Complexity: O(1).
func ValidateNumeric(a *Matrix) error {
	if a.Values == nil {
		return ErrPatternOnly
	}

	return nil
}

// ValidateVecLen ensures a dense vector b conforms to length n.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func ValidateVecLen(n int, b []float64) error {
	if len(b) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// Validate checks the full CSC structural invariant set:
// pointer lengths, monotone ColPtr, entry count and row-index bounds.
// Returns ErrInvalidStructure on the first violation, nil otherwise.
// Complexity: O(n + nnz).
func (a *Matrix) Validate() error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.rows <= 0 || a.cols <= 0 {
		return ErrBadShape
	}
	if len(a.ColPtr) != a.cols+1 || a.ColPtr[0] != 0 {
		return ErrInvalidStructure
	}

	for j := 0; j < a.cols; j++ {
		if a.ColPtr[j+1] < a.ColPtr[j] { // pointers must be non-decreasing
			return ErrInvalidStructure
		}
	}

	nnz := a.ColPtr[a.cols]
	if nnz > len(a.RowIdx) || (a.Values != nil && len(a.Values) != len(a.RowIdx)) {
		return ErrInvalidStructure
	}
	for p := 0; p < nnz; p++ {
		if a.RowIdx[p] < 0 || a.RowIdx[p] >= a.rows {
			return ErrInvalidStructure
		}
	}

	return nil
}

// validPerm reports whether p is a bijection over 0..n-1. Internal;
// NewPerm translates a false result into ErrBadPermutation.
// Complexity: O(n) time and space.
func validPerm(p []int, n int) bool {
	if len(p) != n {
		return false
	}

	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
