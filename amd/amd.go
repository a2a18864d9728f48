// SPDX-License-Identifier: MIT

// Package amd: the quotient-graph minimum-degree elimination core.
//
// The state machine below follows the classical approximate-minimum-
// degree formulation. Nodes and elements share one index space plus one
// synthetic element n that collects dense nodes up front. The adjacency
// storage is rewritten in place as elimination proceeds, with an
// explicit mark/garbage-collection protocol instead of per-step
// allocation; degree lists are doubly linked by (head, next, last), hash
// buckets for supervariable detection are singly linked by
// (hhead, next), and last doubles as the hash slot of a bucketed node —
// the traditional packed layout for this algorithm.

package amd

import "github.com/katalvlaran/sparsix/csc"

// flip maps i to a negative code distinct from the -1 sentinel and back:
// flip(flip(i)) == i. Used to stash "absorbed into i" / "object start"
// tags inside the adjacency arrays.
func flip(i int) int { return -i - 2 }

// wclear resets the wide marker when it risks wrapping, re-establishing
// w[k] < mark for all live entries. Returns the safe mark value.
func wclear(mark, lemax int, w []int, n int) int {
	if mark < 2 || mark+lemax < 0 {
		for k := 0; k < n; k++ {
			if w[k] != 0 {
				w[k] = 1
			}
		}
		mark = 2
	}

	return mark
}

// minDegree runs approximate minimum degree on the symmetric,
// diagonal-free pattern c (consumed destructively) and returns the
// elimination permutation, postordered over the assembly tree so that
// related columns stay adjacent. dense is the degree threshold beyond
// which a node is deferred to the end of the ordering.
func minDegree(c *csc.Matrix, dense int) []int {
	n := c.Cols()
	cnz := c.NNZ()

	// Elbow room: the in-place element lists need roughly 20% slack
	// before the first garbage collection pays for itself.
	nzmax := cnz + cnz/5 + 2*n

	cp := make([]int, n+1) // object pointers (columns, then elements)
	copy(cp, c.ColPtr)
	ci := make([]int, nzmax)
	copy(ci, c.RowIdx[:cnz])

	length := make([]int, n+1)
	nv := make([]int, n+1)     // supervariable sizes
	next := make([]int, n+1)   // degree-list / hash-bucket forward links
	head := make([]int, n+1)   // degree-list heads
	elen := make([]int, n+1)   // number of elements in each adjacency list
	degree := make([]int, n+1) // approximate degrees
	w := make([]int, n+1)      // wide marker
	hhead := make([]int, n+1)  // hash-bucket heads
	last := make([]int, n+1)   // degree-list back links / hash slots
	post := make([]int, n+1)

	for k := 0; k < n; k++ {
		length[k] = cp[k+1] - cp[k]
	}
	length[n] = 0

	for i := 0; i <= n; i++ {
		head[i] = -1
		last[i] = -1
		next[i] = -1
		hhead[i] = -1
		nv[i] = 1
		w[i] = 1
		elen[i] = 0
		degree[i] = length[i]
	}

	mark := wclear(0, 0, w, n)
	elen[n] = -2 // n is a dead element from the start
	cp[n] = -1   // and a root of the assembly tree
	w[n] = 0

	// Seed the degree lists; empty and dense nodes never enter them.
	var nel int
	for i := 0; i < n; i++ {
		d := degree[i]
		switch {
		case d == 0: // empty node: eliminated immediately
			elen[i] = -2
			nel++
			cp[i] = -1
			w[i] = 0
		case d > dense: // dense node: absorbed into element n
			nv[i] = 0
			elen[i] = -1
			nel++
			cp[i] = flip(n)
			nv[n]++
		default:
			if head[d] != -1 {
				last[head[d]] = i
			}
			next[i] = head[d]
			head[d] = i
		}
	}

	var mindeg, lemax int
	for nel < n { // eliminate until every node is gone
		// Pick the first node on the lowest populated degree list —
		// list order is construction order, giving ascending tie-breaks.
		var k int
		for k = -1; mindeg < n; mindeg++ {
			if k = head[mindeg]; k != -1 {
				break
			}
		}
		if next[k] != -1 {
			last[next[k]] = -1
		}
		head[mindeg] = next[k]

		elenk := elen[k] // number of elements adjacent to k
		nvk := nv[k]
		nel += nvk

		// Garbage-collect the adjacency arena when the new element may
		// not fit. Live objects are tagged by flipping their first entry,
		// then slid left in one pass.
		if elenk > 0 && cnz+mindeg >= nzmax {
			for j := 0; j < n; j++ {
				if p := cp[j]; p >= 0 {
					cp[j] = ci[p]
					ci[p] = flip(j)
				}
			}
			var q, p int
			for p < cnz {
				j := flip(ci[p])
				p++
				if j < 0 {
					continue // not an object head
				}
				ci[q] = cp[j]
				cp[j] = q
				q++
				for k3 := 0; k3 < length[j]-1; k3++ {
					ci[q] = ci[p]
					q++
					p++
				}
			}
			cnz = q
		}

		// Build element k: the union of k's node list and the node lists
		// of every element adjacent to k, skipping dead nodes. Absorbed
		// elements die here.
		var dk int
		nv[k] = -nvk // flag k as inside Lk
		p := cp[k]
		pk1 := cnz
		if elenk == 0 { // no adjacent elements: build in place
			pk1 = p
		}
		pk2 := pk1
		for k1 := 1; k1 <= elenk+1; k1++ {
			var e, pj, ln int
			if k1 > elenk {
				e = k // the final pass walks k's own node list
				pj = p
				ln = length[k] - elenk
			} else {
				e = ci[p] // walk the nodes of element e
				p++
				pj = cp[e]
				ln = length[e]
			}
			for k2 := 1; k2 <= ln; k2++ {
				i := ci[pj]
				pj++
				nvi := nv[i]
				if nvi <= 0 {
					continue // dead, or already placed in Lk
				}
				dk += nvi
				nv[i] = -nvi // mark i as belonging to Lk
				ci[pk2] = i
				pk2++
				// Unlink i from its degree list.
				if next[i] != -1 {
					last[next[i]] = last[i]
				}
				if last[i] != -1 {
					next[last[i]] = next[i]
				} else {
					head[degree[i]] = next[i]
				}
			}
			if e != k {
				cp[e] = flip(k) // absorb e into k
				w[e] = 0
			}
		}
		if elenk != 0 {
			cnz = pk2
		}
		degree[k] = dk
		cp[k] = pk1
		length[k] = pk2 - pk1
		elen[k] = -2 // k is an element now

		// Scan 1: for each node in Lk, prime w[e] with |Le \ Lk| for the
		// elements e on its list, so scan 2 can read set differences in
		// O(1).
		mark = wclear(mark, lemax, w, n)
		for pk := pk1; pk < pk2; pk++ {
			i := ci[pk]
			eln := elen[i]
			if eln <= 0 {
				continue
			}
			nvi := -nv[i]
			wnvi := mark - nvi
			for p := cp[i]; p <= cp[i]+eln-1; p++ {
				e := ci[p]
				switch {
				case w[e] >= mark:
					w[e] -= nvi // one more overlap with Lk
				case w[e] != 0: // first time e is seen this sweep
					w[e] = degree[e] + wnvi
				}
			}
		}

		// Scan 2: recompute approximate degrees, prune dead elements and
		// dead nodes from each list, hash surviving lists for
		// supervariable detection, and mass-eliminate nodes whose
		// adjacency collapsed into Lk.
		for pk := pk1; pk < pk2; pk++ {
			i := ci[pk]
			p1 := cp[i]
			p2 := p1 + elen[i] - 1
			pn := p1
			var h, d int
			for p := p1; p <= p2; p++ {
				e := ci[p]
				if w[e] == 0 {
					continue // dead element: dropped from i's list
				}
				dext := w[e] - mark // |Le \ Lk|
				if dext > 0 {
					d += dext
					ci[pn] = e
					pn++
					h += e
				} else {
					// Aggressive absorption: e's contribution is wholly
					// inside Lk, so e folds into k.
					cp[e] = flip(k)
					w[e] = 0
				}
			}
			elen[i] = pn - p1 + 1
			p3 := pn
			p4 := p1 + length[i]
			for p := p2 + 1; p < p4; p++ {
				j := ci[p]
				nvj := nv[j]
				if nvj <= 0 {
					continue // dead node, or inside Lk
				}
				d += nvj
				ci[pn] = j
				pn++
				h += j
			}
			if d == 0 { // mass elimination: i vanishes with k
				cp[i] = flip(k)
				nvi := -nv[i]
				dk -= nvi
				nvk += nvi
				nel += nvi
				nv[i] = 0
				elen[i] = -1
			} else {
				if d < degree[i] {
					degree[i] = d
				}
				ci[pn] = ci[p3] // move the first node past the list
				ci[p3] = ci[p1] // and the first element to its slot
				ci[p1] = k      // element k leads i's list
				length[i] = pn - p1 + 1
				h %= n
				if h < 0 {
					h += n
				}
				next[i] = hhead[h]
				hhead[h] = i
				last[i] = h // remember i's hash slot
			}
		}
		degree[k] = dk
		if dk > lemax {
			lemax = dk
		}
		mark = wclear(mark+lemax, lemax, w, n)

		// Supervariable detection: nodes hashing to one bucket with
		// identical adjacency lists merge, keeping the lower index.
		for pk := pk1; pk < pk2; pk++ {
			i := ci[pk]
			if nv[i] >= 0 {
				continue // already merged away
			}
			h := last[i]
			i = hhead[h]
			hhead[h] = -1 // empty the bucket as it is consumed
			for i != -1 && next[i] != -1 {
				ln := length[i]
				eln := elen[i]
				for p := cp[i] + 1; p <= cp[i]+ln-1; p++ {
					w[ci[p]] = mark
				}
				jlast := i
				j := next[i]
				for j != -1 {
					ok := length[j] == ln && elen[j] == eln
					for p := cp[j] + 1; ok && p <= cp[j]+ln-1; p++ {
						if w[ci[p]] != mark {
							ok = false
						}
					}
					if ok { // identical lists: j joins supervariable i
						cp[j] = flip(i)
						nv[i] += nv[j]
						nv[j] = 0
						elen[j] = -1
						j = next[j]
						next[jlast] = j
					} else {
						jlast = j
						j = next[j]
					}
				}
				i = next[i]
				mark++
			}
		}

		// Finalize element k: surviving nodes return to the degree lists
		// with their external degrees; Lk is compacted to the survivors.
		pDst := pk1
		for pk := pk1; pk < pk2; pk++ {
			i := ci[pk]
			nvi := -nv[i]
			if nvi <= 0 {
				continue // merged or mass-eliminated
			}
			nv[i] = nvi
			d := degree[i] + dk - nvi
			if dmax := n - nel - nvi; d > dmax {
				d = dmax
			}
			if head[d] != -1 {
				last[head[d]] = i
			}
			next[i] = head[d]
			last[i] = -1
			head[d] = i
			if d < mindeg {
				mindeg = d
			}
			degree[i] = d
			ci[pDst] = i
			pDst++
		}
		nv[k] = nvk
		length[k] = pDst - pk1
		if length[k] == 0 { // element k has no boundary: assembly-tree root
			cp[k] = -1
			w[k] = 0
		}
		if elenk != 0 {
			cnz = pDst
		}
	}

	// Postorder the assembly tree: flip the parent tags back, thread
	// child lists (descending scans keep them ascending), then run the
	// same tdfs every postorder in this codebase uses.
	for i := 0; i <= n; i++ {
		cp[i] = flip(cp[i])
	}
	for j := 0; j <= n; j++ {
		head[j] = -1
	}
	for j := n; j >= 0; j-- { // dead nodes under their parents
		if nv[j] > 0 {
			continue
		}
		next[j] = head[cp[j]]
		head[cp[j]] = j
	}
	for e := n; e >= 0; e-- { // elements under their parents
		if nv[e] <= 0 {
			continue
		}
		if cp[e] != -1 {
			next[e] = head[cp[e]]
			head[cp[e]] = e
		}
	}
	var k int
	for i := 0; i <= n; i++ {
		if cp[i] == -1 {
			k = amdTdfs(i, k, head, next, post, w)
		}
	}

	return post[:n]
}

// amdTdfs is the stack-based postorder walk over threaded child lists,
// identical in shape to etree's tdfs but over the n+1-node assembly tree.
func amdTdfs(j, k int, head, next, post, stack []int) int {
	var top int
	stack[0] = j

	for top >= 0 {
		p := stack[top]
		i := head[p]
		if i == -1 {
			top--
			post[k] = p
			k++
		} else {
			head[p] = next[i]
			top++
			stack[top] = i
		}
	}

	return k
}
