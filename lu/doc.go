// Package lu implements sparse LU factorization with threshold partial
// pivoting: P·A·Q = L·U for a general square A in CSC form.
//
// The left-looking scheme computes one column of L and U per step: a
// sparse triangular solve against the part of L already built yields the
// candidate column, a pivot is chosen among the not-yet-pivotal rows,
// and the column splits into its U part (rows already pivotal) and its
// L part (scaled by the pivot).
//
// Pivoting is governed by a threshold in [0,1]:
//
//   - 1 — strict partial pivoting: the largest-magnitude candidate wins;
//   - t < 1 — any candidate within factor t of the largest is eligible,
//     and the diagonal is preferred when eligible — trading bounded
//     numeric growth for less fill-in (circuit-simulation practice uses
//     values near 0.001).
//
// A pivot whose magnitude falls below the absolute tolerance (default
// 1e-14) means numeric singularity: ErrSingular, no partial factor.
//
// The column permutation Q comes from symbolic analysis (amd orderings
// 0–3); the row permutation P is discovered by pivoting.
//
// Solve applies the factors: L·y = P·b, U·z = y, x = Q·z.
package lu
