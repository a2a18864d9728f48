// Package sparsix is a sparse direct solver toolkit: compressed-column
// matrices, symbolic analysis and numeric factorization — for the moment
// a dense decomposition stops fitting in memory.
//
// 🚀 What is sparsix?
//
//	A deterministic, pure-Go library that brings together:
//		• CSC storage: compressed sparse column matrices + triplet ingestion
//		• Graph machinery: elimination trees, postorder, column counts, reach sets
//		• Orderings: approximate minimum degree (AMD) fill reduction
//		• Factorizations: up-looking Cholesky, left-looking LU with
//		  threshold partial pivoting
//		• Solves: forward/backward substitution over sparse factors
//
// ✨ Why choose sparsix?
//
//   - Predictable memory – symbolic analysis sizes every factor buffer
//     before a single floating-point operation runs
//   - Rock-solid guarantees – sentinel errors, fail-fast validation,
//     deterministic tie-breaks, zero package-level state
//   - Pure Go – no cgo, no hidden deps
//   - Reusable analysis – one symbolic pass serves every matrix that
//     shares the same pattern
//
// Under the hood, everything is organized into focused subpackages:
//
//	csc/        — compressed-column matrix type, permutations, workspaces
//	etree/      — elimination trees, postorder, column counts, ereach
//	amd/        — approximate minimum-degree fill-reducing ordering
//	cholesky/   — symbolic + numeric Cholesky (L·Lᵗ = P·A·Pᵗ)
//	lu/         — left-looking LU with partial pivoting (P·A·Q = L·U)
//	triangular/ — substitution kernels consumed by both factorizations
//
// Quick ASCII picture of the pipeline:
//
//	CSC input ──▶ symbolic analysis ──▶ numeric factorization ──▶ solve
//	              (tree, counts, perm)   (reach → scatter → eliminate)
//
// All routines are synchronous and allocation-disciplined: scratch lives
// in caller-provided workspaces, so concurrent factorizations on distinct
// workspaces need no locking.
//
//	go get github.com/katalvlaran/sparsix
package sparsix
