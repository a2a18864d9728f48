// Package etree_test contains unit tests for the elimination-tree
// machinery: parent forests, postorder, column counts and reach sets.
package etree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/etree"
)

// upper builds the upper-triangle CSC pattern of a symmetric matrix
// given its full dense 0/1 pattern.
func upper(t *testing.T, d [][]float64) *csc.Matrix {
	t.Helper()
	a, err := csc.NewFromDense(d)
	require.NoError(t, err)

	return a.UpperTriangular()
}

// arrowhead is the classic fill-in demonstration: a dense first row/column
// plus a diagonal. Its elimination tree is a single path.
func arrowhead(t *testing.T, n int) *csc.Matrix {
	t.Helper()
	d := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j || i == 0 || j == 0 {
				d[i][j] = 1
			}
		}
	}

	return upper(t, d)
}

func TestParent_PathAndRoots(t *testing.T) {
	t.Parallel()

	// Tridiagonal pattern: parent[k] = k+1, single root at n-1.
	a := upper(t, [][]float64{
		{2, 1, 0, 0},
		{1, 2, 1, 0},
		{0, 1, 2, 1},
		{0, 0, 1, 2},
	})
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, -1}, parent)
}

func TestParent_ForestMatchesComponents(t *testing.T) {
	t.Parallel()

	// Two decoupled blocks: exactly one root per connected component.
	a := upper(t, [][]float64{
		{2, 1, 0, 0},
		{1, 2, 0, 0},
		{0, 0, 2, 1},
		{0, 0, 1, 2},
	})
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)

	var roots int
	for _, p := range parent {
		if p == -1 {
			roots++
		}
	}
	require.Equal(t, 2, roots, "one root per pattern component")
}

func TestParent_IsolatedColumnIsOwnRoot(t *testing.T) {
	t.Parallel()

	a := upper(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)
	require.Equal(t, []int{-1, -1, -1}, parent)
}

func TestParent_ATAVariantMatchesExplicitProduct(t *testing.T) {
	t.Parallel()

	// The normal-equations walk must produce the forest of AᵗA without
	// forming the product; compare against Parent on the product itself.
	patterns := [][][]float64{
		{ // 5×4 rectangular
			{1, 0, 0, 1},
			{1, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 1, 1},
			{1, 0, 1, 0},
		},
		{ // 6×3 tall, with an empty-ish middle column coupling
			{1, 0, 0},
			{1, 1, 0},
			{0, 0, 1},
			{0, 1, 1},
			{1, 0, 0},
			{0, 0, 1},
		},
	}

	for _, d := range patterns {
		a, err := csc.NewFromDense(d)
		require.NoError(t, err)

		direct, err := etree.Parent(a, true)
		require.NoError(t, err)

		at, err := csc.Transpose(a, false)
		require.NoError(t, err)
		ata, err := csc.Multiply(at, a)
		require.NoError(t, err)
		viaProduct, err := etree.Parent(ata.UpperTriangular(), false)
		require.NoError(t, err)

		require.Equal(t, viaProduct, direct)
	}
}

func TestPostorder_ChildrenBeforeParents(t *testing.T) {
	t.Parallel()

	a := arrowhead(t, 6)
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)

	post, err := etree.Postorder(parent)
	require.NoError(t, err)

	// post must be a permutation in which every node appears before its
	// parent.
	pos := make([]int, len(post))
	for k, j := range post {
		pos[j] = k
	}
	for j, p := range parent {
		if p != -1 {
			require.Less(t, pos[j], pos[p], "node %d must precede its parent %d", j, p)
		}
	}
}

func TestPostorder_RejectsCycle(t *testing.T) {
	t.Parallel()

	_, err := etree.Postorder([]int{1, 0})
	require.ErrorIs(t, err, etree.ErrBadParent)
}

func TestColCounts_ArrowheadIsFullyFilled(t *testing.T) {
	t.Parallel()

	// The arrowhead with a dense FIRST row fills in completely: column j
	// of L holds n-j entries.
	const n = 5
	a := arrowhead(t, n)
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)
	post, err := etree.Postorder(parent)
	require.NoError(t, err)

	counts, err := etree.ColCounts(a, parent, post)
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2, 1}, counts)

	cp := etree.ColPointers(counts)
	require.Equal(t, n*(n+1)/2, cp[n], "cp[n] is the total factor size")
}

func TestColCounts_TridiagonalHasNoFill(t *testing.T) {
	t.Parallel()

	a := upper(t, [][]float64{
		{2, 1, 0, 0},
		{1, 2, 1, 0},
		{0, 1, 2, 1},
		{0, 0, 1, 2},
	})
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)
	post, err := etree.Postorder(parent)
	require.NoError(t, err)

	counts, err := etree.ColCounts(a, parent, post)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 1}, counts, "a tridiagonal factor gains no fill")
}

func TestEreach_AscendingAndBounded(t *testing.T) {
	t.Parallel()

	a := arrowhead(t, 6)
	n := a.Cols()
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)

	w := csc.NewWorkspace(n)
	var k, p int
	for k = 0; k < n; k++ {
		top, err := etree.Ereach(a, k, parent, w)
		require.NoError(t, err)

		prev := -1
		for p = top; p < n; p++ {
			i := w.Stack[p]
			require.Less(t, i, k, "ereach(%d) may only contain earlier columns", k)
			require.Greater(t, i, prev, "ereach(%d) must be ascending", k)
			prev = i
		}
	}
}

func TestEreach_MatchesRowPatternOfFactor(t *testing.T) {
	t.Parallel()

	// For the arrowhead, row k of L is dense in 0..k: ereach(k) must be
	// exactly {0..k-1} for k >= 1.
	a := arrowhead(t, 5)
	n := a.Cols()
	parent, err := etree.Parent(a, false)
	require.NoError(t, err)

	w := csc.NewWorkspace(n)
	for k := 1; k < n; k++ {
		top, err := etree.Ereach(a, k, parent, w)
		require.NoError(t, err)
		require.Equal(t, k, n-top, "ereach(%d) size", k)
		for p := top; p < n; p++ {
			require.Equal(t, k-(n-p), w.Stack[p])
		}
	}
}

func TestSymbolicDeterminism_SamePatternSameOutputs(t *testing.T) {
	t.Parallel()

	a := arrowhead(t, 8)

	parent1, err := etree.Parent(a, false)
	require.NoError(t, err)
	parent2, err := etree.Parent(a, false)
	require.NoError(t, err)
	require.Equal(t, parent1, parent2)

	post1, err := etree.Postorder(parent1)
	require.NoError(t, err)
	post2, err := etree.Postorder(parent2)
	require.NoError(t, err)
	require.Equal(t, post1, post2)

	c1, err := etree.ColCounts(a, parent1, post1)
	require.NoError(t, err)
	c2, err := etree.ColCounts(a, parent2, post2)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}
