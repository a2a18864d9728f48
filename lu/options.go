// SPDX-License-Identifier: MIT

// Package lu: functional configuration for the factorization.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors; nonsensical values are reported by the
//     validation pass in Factorize, before any numeric work, so option
//     construction itself never panics on user input.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob changes behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package lu

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPivotThreshold is 1: strict partial pivoting — the
	// largest-magnitude candidate is always chosen.
	DefaultPivotThreshold = 1.0

	// DefaultAbsTolerance is the absolute pivot magnitude below which
	// the matrix is declared numerically singular.
	DefaultAbsTolerance = 1e-14
)

// Option mutates the factorization options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying setters.
// Unexported to prevent external mutation; validated in one place.
type options struct {
	threshold float64 // partial-pivoting threshold, in [0,1]
	absTol    float64 // singularity floor, >= 0
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		threshold: DefaultPivotThreshold,
		absTol:    DefaultAbsTolerance,
	}
}

// WithPivotThreshold sets the partial-pivoting threshold t ∈ [0,1].
// t = 1 is strict partial pivoting; smaller values admit sparser pivots
// within factor t of the column maximum, preferring the diagonal when
// admissible. Out-of-range values are rejected by Factorize with
// ErrBadThreshold before any numeric work.
func WithPivotThreshold(t float64) Option {
	return func(o *options) { o.threshold = t }
}

// WithAbsTolerance sets the absolute pivot magnitude below which the
// factorization reports ErrSingular. Zero disables the floor entirely
// (a pivot of exactly 0 still fails).
func WithAbsTolerance(tol float64) Option {
	return func(o *options) { o.absTol = tol }
}

// gatherOptions resolves defaults plus setters.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
