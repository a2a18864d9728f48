// Package cholesky implements sparse Cholesky factorization:
// L·Lᵗ = P·A·Pᵗ for a symmetric positive-definite A in CSC form.
//
// The work splits into two phases with very different lifetimes:
//
//   - Analyze — pattern-only symbolic analysis: pick a fill-reducing
//     permutation, build the elimination tree, predict every factor
//     column's nonzero count. One analysis serves every matrix sharing
//     the pattern.
//   - Factorize — up-looking numeric factorization into exactly the
//     buffers the analysis sized. Per column: reach, scatter, eliminate,
//     store — cost proportional to the factor pattern, not n².
//
// Indefiniteness is a first-class outcome, not a fault: Factorize
// returns ErrNotPositiveDefinite cleanly (no NaN propagation, no partial
// factor), so callers may legitimately probe definiteness with it.
//
// Solve applies the factor: L·y = P·b, Lᵗ·z = y, x = Pᵗ·z.
package cholesky
