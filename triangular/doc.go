// Package triangular implements forward and backward substitution over
// CSC factors — the routines that turn a factorization into a solution.
//
// The triangular package provides:
//
//   - LSolve / LTSolve: x = L⁻¹·b and x = L⁻ᵗ·b over a lower-triangular
//     CSC factor.
//   - USolve / UTSolve: x = U⁻¹·b and x = U⁻ᵗ·b over an upper-triangular
//     CSC factor.
//   - SpSolve: the sparse-right-hand-side variant with reachability DFS
//     over the factor's pattern, the engine inside left-looking LU.
//
// Every factor column is required to store its diagonal entry first —
// the invariant both factorizations maintain — so each column costs one
// divide plus one scatter-subtract and the whole solve is O(nnz(factor)).
// A zero diagonal is surfaced as an explicit error, never as silently
// propagated ±Inf.
package triangular
