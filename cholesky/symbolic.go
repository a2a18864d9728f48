// SPDX-License-Identifier: MIT

// Package cholesky: symbolic analysis — ordering, tree, counts.

package cholesky

import (
	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/etree"
)

// Symbolic holds everything the numeric phase needs that depends only on
// the pattern: the permutation pair, the elimination tree of the
// permuted pattern, and the factor's column pointers. Compute it once,
// reuse it for every matrix with the same pattern; it never reads a
// numeric value.
type Symbolic struct {
	// Perm is the fill-reducing permutation pair (identity under
	// amd.OrderNatural).
	Perm *csc.Perm

	// Parent is the elimination tree of P·A·Pᵗ.
	Parent []int

	// ColPtr[j]..ColPtr[j+1] is the exact range column j of L will
	// occupy; ColPtr[n] is nnz(L).
	ColPtr []int
}

// Order returns the problem order n. Complexity: O(1).
func (s *Symbolic) Order() int { return len(s.Parent) }

// LNonzeros returns the predicted (and exact) nonzero count of L.
// Complexity: O(1).
func (s *Symbolic) LNonzeros() int { return s.ColPtr[len(s.Parent)] }

// Analyze performs the symbolic phase on a's pattern (upper-triangle
// convention): choose a permutation under order, permute the pattern,
// build its elimination tree, postorder it and predict the column
// counts. The result sizes every numeric buffer exactly.
//
// Determinism: identical patterns yield identical Symbolic values —
// every tie-break downstream is index-ascending.
//
// Complexity: O(nnz · α(n)) for the tree, O(|L|) for the counts, plus
// the ordering itself.
func Analyze(a *csc.Matrix, order amd.Order) (*Symbolic, error) {
	if err := csc.ValidateNotNil(a); err != nil {
		return nil, ErrNilMatrix
	}
	if err := csc.ValidateSquare(a); err != nil {
		return nil, ErrNonSquare
	}

	n := a.Cols()

	p, err := amd.Compute(order, a)
	if err != nil {
		return nil, err
	}
	var perm *csc.Perm
	if p == nil {
		perm = csc.IdentityPerm(n)
	} else if perm, err = csc.NewPerm(p); err != nil {
		return nil, err
	}

	// Pattern-only permutation: symbolic analysis never touches Values.
	c, err := csc.SymPerm(a, perm, false)
	if err != nil {
		return nil, err
	}

	parent, err := etree.Parent(c, false)
	if err != nil {
		return nil, err
	}
	post, err := etree.Postorder(parent)
	if err != nil {
		return nil, err
	}
	counts, err := etree.ColCounts(c, parent, post)
	if err != nil {
		return nil, err
	}

	return &Symbolic{
		Perm:   perm,
		Parent: parent,
		ColPtr: etree.ColPointers(counts),
	}, nil
}
