// SPDX-License-Identifier: MIT

// Package csc: canonical permutations and permuted-matrix kernels.
//
// Historically, sparse codes pass direct permutations to some routines
// and inverse permutations to others, re-inverting with O(n) scans inside
// hot loops. Here the pair is computed once: every API boundary trades in
// a Perm carrying both directions, and kernels pick the representation
// they consume.

package csc

import "github.com/katalvlaran/sparsix/internal/num"

// Perm is a paired permutation of 0..n-1: P is the direct form
// (row k of the permuted object comes from row P[k] of the original),
// Pinv its inverse (Pinv[P[k]] == k). Both are always populated.
type Perm struct {
	P    []int
	Pinv []int
}

// NewPerm validates p as a bijection over 0..len(p)-1 and returns the
// paired permutation with the inverse computed once.
// Returns ErrBadPermutation otherwise.
// Complexity: O(n).
func NewPerm(p []int) (*Perm, error) {
	n := len(p)
	if !validPerm(p, n) {
		return nil, ErrBadPermutation
	}

	pinv := make([]int, n)
	for k := 0; k < n; k++ {
		pinv[p[k]] = k
	}

	return &Perm{P: append([]int(nil), p...), Pinv: pinv}, nil
}

// IdentityPerm returns the identity permutation on n elements.
// Complexity: O(n).
func IdentityPerm(n int) *Perm {
	p := make([]int, n)
	pinv := make([]int, n)
	for k := 0; k < n; k++ {
		p[k] = k
		pinv[k] = k
	}

	return &Perm{P: p, Pinv: pinv}
}

// Len returns the size of the permuted index set. Complexity: O(1).
func (pm *Perm) Len() int { return len(pm.P) }

// PermVec gathers: x[k] = b[P[k]]. Returns ErrDimensionMismatch when b
// has the wrong length. Complexity: O(n).
func (pm *Perm) PermVec(b []float64) ([]float64, error) {
	if err := ValidateVecLen(pm.Len(), b); err != nil {
		return nil, err
	}

	x := make([]float64, len(b))
	for k := range b {
		x[k] = b[pm.P[k]]
	}

	return x, nil
}

// IPermVec scatters: x[P[k]] = b[k] — the inverse action of PermVec.
// Complexity: O(n).
func (pm *Perm) IPermVec(b []float64) ([]float64, error) {
	if err := ValidateVecLen(pm.Len(), b); err != nil {
		return nil, err
	}

	x := make([]float64, len(b))
	for k := range b {
		x[pm.P[k]] = b[k]
	}

	return x, nil
}

// Permute returns P·A·Q — rows renumbered through perm.Pinv, columns
// gathered through q (nil q means identity). perm nil means identity rows.
// Complexity: O(n + nnz).
func Permute(a *Matrix, perm *Perm, q []int, values bool) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if q != nil && !validPerm(q, a.cols) {
		return nil, ErrBadPermutation
	}

	values = values && a.Values != nil
	c, err := New(a.rows, a.cols, num.Max(a.NNZ(), 1), values)
	if err != nil {
		return nil, err
	}

	var nz int
	for k := 0; k < a.cols; k++ {
		c.ColPtr[k] = nz
		j := k
		if q != nil {
			j = q[k] // column q[k] of A becomes column k of C
		}
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			if perm != nil {
				i = perm.Pinv[i] // row i of A becomes row pinv[i] of C
			}
			c.RowIdx[nz] = i
			if values {
				c.Values[nz] = a.Values[p]
			}
			nz++
		}
	}
	c.ColPtr[a.cols] = nz
	c.trim(nz)

	return c, nil
}

// SymPerm returns C = P·A·Pᵗ where only the upper triangle of the
// symmetric matrix A is stored and only the upper triangle of C is
// produced. This is the permutation kernel of the Cholesky path: a
// permuted entry that would land below the diagonal is mirrored back
// into the upper triangle.
//
// Complexity: O(n + nnz) time, O(n) extra space.
func SymPerm(a *Matrix, perm *Perm, values bool) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	if perm == nil {
		perm = IdentityPerm(a.cols)
	}

	n := a.cols
	pinv := perm.Pinv
	values = values && a.Values != nil

	c, err := New(n, n, num.Max(a.NNZ(), 1), values)
	if err != nil {
		return nil, err
	}

	// Pass 1: count the destination column of every kept entry.
	w := make([]int, n)
	for j := 0; j < n; j++ {
		j2 := pinv[j]
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			if i > j {
				continue // lower-triangle entry of the input: ignored
			}
			w[num.Max(pinv[i], j2)]++ // entry lands in the higher-numbered column
		}
	}
	num.CumSum(c.ColPtr, w)

	// Pass 2: place entries, mirroring into the upper triangle.
	for j := 0; j < n; j++ {
		j2 := pinv[j]
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			if i > j {
				continue
			}
			i2 := pinv[i]
			q := w[num.Max(i2, j2)]
			w[num.Max(i2, j2)]++
			c.RowIdx[q] = num.Min(i2, j2)
			if values {
				c.Values[q] = a.Values[p]
			}
		}
	}
	c.trim(c.ColPtr[n])

	return c, nil
}
