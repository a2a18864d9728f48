// Package csc implements the compressed sparse column (CSC) matrix the
// rest of sparsix is built on.
//
// The csc package provides:
//
//   - The Matrix type: per-column contiguous (row, value) slices indexed
//     by a column-pointer array — the storage contract every solver
//     component consumes.
//   - Ingestion: triplet compression with duplicate summation, dense
//     conversion, and gonum interop.
//   - Structural kernels: transpose, symmetric and two-sided
//     permutation, column scatter, sparse add and multiply.
//   - The Perm type: a canonical paired (P, Pinv) permutation built and
//     validated once at API boundaries.
//   - The Workspace type: call-scoped scratch (dense accumulator, mark
//     and stack arrays) so no kernel ever touches package-level state.
//
// CSC favors column-at-a-time algorithms: factorizations walk columns,
// solves scatter columns, and orderings transpose patterns — all O(nnz)
// per pass. See etree, cholesky and lu for the consumers.
package csc
