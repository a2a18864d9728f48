// SPDX-License-Identifier: MIT

// Package num holds tiny generic numeric helpers shared by the sparse
// kernels. Everything here is pure, allocation-free and deterministic;
// the package exists so hot loops never reach for ad hoc inline copies
// of the same three-line helpers.
package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller of a and b. Complexity: O(1).
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b. Complexity: O(1).
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Abs returns |v| for any signed numeric type. Complexity: O(1).
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Finite reports whether v is neither NaN nor ±Inf. Complexity: O(1).
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CumSum overwrites ptr[0..len(counts)] with the exclusive prefix sum of
// counts, copies the running sums back into counts, and returns the total.
// This is the canonical "counts → column pointers" step of every CSC
// construction: after the call, counts[j] is the next free slot of
// column j and ptr[len(counts)] is the total entry count.
// Complexity: O(n).
func CumSum(ptr, counts []int) int {
	var sum int // running total
	for i := range counts {
		ptr[i] = sum
		sum += counts[i]
		counts[i] = ptr[i] // counts[j] now points at column j's next free slot
	}
	ptr[len(counts)] = sum

	return sum
}
