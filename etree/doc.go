// Package etree builds and queries elimination trees — the column
// dependency forests that let sparse factorization touch only the
// entries it must.
//
// The etree package provides:
//
//   - Parent: the elimination forest of a symmetric (or
//     normal-equations) pattern, via ancestor path compression.
//   - Postorder: a children-before-parents ordering of the forest in
//     O(n) using child/sibling lists.
//   - ColCounts: predicted nonzero counts per factor column, sizing
//     every factor buffer before numeric work starts.
//   - Ereach: the reach set of a column — exactly the earlier columns
//     that numerically influence it, delivered in ascending order.
//
// Everything here is pattern-only: no function in this package reads a
// single matrix value, which is what makes one symbolic analysis
// reusable across every matrix sharing the pattern.
package etree
