// SPDX-License-Identifier: MIT

// Package etree: postordering of the elimination forest.
//
// A postorder visits children before parents. Column counts and the
// assembly of factor columns both rely on it. The classic naive approach
// rescans parent[] for unvisited children of every node — O(n²); here
// child lists are threaded once and each edge is walked once, O(n), with
// the identical first-encountered-child tie-break: scanning nodes in
// descending order while pushing onto list heads leaves every child list
// in ascending order, exactly the order a forward rescan would discover.

package etree

// Postorder returns a permutation post[0..n-1] of the forest's nodes
// with every parent appearing after all of its descendants. Roots (and
// their subtrees) are visited in ascending root order.
//
// Returns ErrBadParent if parent is not a valid forest.
// Complexity: O(n) time and space.
func Postorder(parent []int) ([]int, error) {
	if !validForest(parent) {
		return nil, ErrBadParent
	}

	n := len(parent)
	head := make([]int, n)  // head[p]: first child of p
	next := make([]int, n)  // next[c]: next sibling of c
	stack := make([]int, n) // DFS stack
	post := make([]int, n)

	for i := range head {
		head[i] = -1
	}

	// Thread child lists in reverse so heads end up ascending.
	for j := n - 1; j >= 0; j-- {
		if parent[j] == -1 {
			continue
		}
		next[j] = head[parent[j]]
		head[parent[j]] = j
	}

	var k int
	for j := 0; j < n; j++ {
		if parent[j] != -1 {
			continue // not a root
		}
		k = tdfs(j, k, head, next, post, stack)
	}

	return post, nil
}

// tdfs runs one depth-first traversal from root j, consuming child lists
// as it goes, appending postorder numbers starting at k. Returns the
// next unused postorder number. Shared with the ordering package's
// assembly-tree postorder via identical semantics.
func tdfs(j, k int, head, next, post, stack []int) int {
	var top int
	stack[0] = j

	for top >= 0 {
		p := stack[top]  // node on top of the stack
		i := head[p]     // youngest unvisited child of p
		if i == -1 {     // all children done: emit p
			top--
			post[k] = p
			k++
		} else {
			head[p] = next[i] // remove i from p's child list
			top++
			stack[top] = i // descend into i
		}
	}

	return k
}
