// SPDX-License-Identifier: MIT

// Package lu: symbolic analysis — column ordering and size estimates.
//
// Unlike Cholesky, LU cannot know its exact factor pattern in advance:
// partial pivoting rewrites the row order as it goes. The symbolic phase
// therefore contributes the column permutation Q (fill reduction on the
// chosen graph) and working estimates of nnz(L) and nnz(U) that size the
// initial buffers; the numeric phase grows them geometrically on the
// rare occasions the estimate is short.

package lu

import (
	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/csc"
)

// Symbolic holds the pattern-only inputs of the numeric phase.
type Symbolic struct {
	// Q is the fill-reducing column permutation, nil for natural order.
	Q []int

	// LNonzeros and UNonzeros are initial capacity estimates, not exact
	// counts — pivoting makes exactness impossible up front.
	LNonzeros int
	UNonzeros int

	n int
}

// Order returns the problem order n. Complexity: O(1).
func (s *Symbolic) Order() int { return s.n }

// Analyze chooses the column ordering for a under the given selector and
// derives buffer estimates. Validation: order must be in [0,3]
// (ErrBadOrdering); a must be square (ErrNonSquare).
//
// Determinism: same pattern, same selector → same Q, run after run.
func Analyze(a *csc.Matrix, order amd.Order) (*Symbolic, error) {
	if !order.Valid() {
		return nil, ErrBadOrdering
	}
	if err := csc.ValidateNotNil(a); err != nil {
		return nil, ErrNilMatrix
	}
	if err := csc.ValidateSquare(a); err != nil {
		return nil, ErrNonSquare
	}

	q, err := amd.Compute(order, a)
	if err != nil {
		return nil, err
	}

	// Working estimate in the left-looking tradition: generous enough to
	// avoid growth on typical patterns, cheap to compute.
	n := a.Cols()
	guess := 4*a.NNZ() + n

	return &Symbolic{Q: q, LNonzeros: guess, UNonzeros: guess, n: n}, nil
}
