// SPDX-License-Identifier: MIT
// Package amd: sentinel error set. Matched via errors.Is.

package amd

import "errors"

var (
	// ErrBadOrdering is returned when the ordering selector is outside
	// [0,3]. The message is fixed and pattern-matchable.
	ErrBadOrdering = errors.New("amd: ordering must be an integer in [0,3]")

	// ErrNilMatrix indicates a nil *csc.Matrix argument.
	ErrNilMatrix = errors.New("amd: nil matrix")
)
