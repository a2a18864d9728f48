// Package amd implements the approximate minimum-degree fill-reducing
// ordering used by the factorization front-ends.
//
// AMD eliminates the node of (approximately) minimum degree from a
// quotient-graph model of the pattern, merging the eliminated node's
// neighborhood into a new element. Approximate degree bounds, element
// absorption, supervariable detection (hash-based) and mass elimination
// keep the whole computation near-linear in the pattern size in
// practice.
//
// Which graph gets ordered depends on the consumer:
//
//   - OrderNatural    — no ordering at all (identity).
//   - OrderCholesky   — the pattern of A + Aᵗ, for symmetric solves.
//   - OrderLU         — the pattern of AᵗA with dense rows stripped
//     first, for LU with substantial entries off the diagonal.
//   - OrderQR         — the pattern of AᵗA as-is, for strict
//     normal-equations orderings assuming no dense rows.
//
// All tie-breaks are index-ascending, so the ordering — and everything
// downstream of it — is deterministic run-to-run.
package amd
