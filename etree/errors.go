// SPDX-License-Identifier: MIT
// Package etree: sentinel error set. Matched via errors.Is; never wrapped
// inside this package.

package etree

import "errors"

var (
	// ErrNilMatrix indicates a nil *csc.Matrix argument.
	ErrNilMatrix = errors.New("etree: nil matrix")

	// ErrNonSquare signals that a square pattern was required but the
	// input wasn't (Parent on a symmetric pattern).
	ErrNonSquare = errors.New("etree: matrix is not square")

	// ErrBadParent is returned when a parent[] slice is not a valid
	// forest: an entry outside [-1, n) or a cycle.
	ErrBadParent = errors.New("etree: invalid parent forest")

	// ErrBadWorkspace indicates a workspace too small for the problem
	// order (Ereach needs stack and mark arrays of length n).
	ErrBadWorkspace = errors.New("etree: workspace too small")
)
