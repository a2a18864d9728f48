// Package amd_test contains unit tests for the minimum-degree ordering.
package amd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/csc"
)

// pattern builds a CSC pattern from a dense 0/1 matrix.
func pattern(t *testing.T, d [][]float64) *csc.Matrix {
	t.Helper()
	a, err := csc.NewFromDense(d)
	require.NoError(t, err)

	return a
}

// isPermutation checks p is a bijection over 0..n-1.
func isPermutation(t *testing.T, p []int, n int) {
	t.Helper()
	require.Len(t, p, n)
	seen := make([]bool, n)
	for _, v := range p {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "index %d repeated", v)
		seen[v] = true
	}
}

// star is a hub-and-spokes pattern: natural elimination of the hub first
// would fill in completely, so any sensible ordering defers the hub.
func star(t *testing.T, n int) *csc.Matrix {
	t.Helper()
	d := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		d[i] = make([]float64, n)
		d[i][i] = 1
		if i > 0 {
			d[0][i] = 1
			d[i][0] = 1
		}
	}

	return pattern(t, d)
}

func TestCompute_NaturalIsNil(t *testing.T) {
	t.Parallel()

	p, err := amd.Compute(amd.OrderNatural, star(t, 5))
	require.NoError(t, err)
	require.Nil(t, p, "natural order means identity, reported as nil")
}

func TestCompute_RejectsBadSelector(t *testing.T) {
	t.Parallel()

	_, err := amd.Compute(amd.Order(4), star(t, 5))
	require.ErrorIs(t, err, amd.ErrBadOrdering)
	require.EqualError(t, err, "amd: ordering must be an integer in [0,3]")

	_, err = amd.Compute(amd.Order(-1), star(t, 5))
	require.ErrorIs(t, err, amd.ErrBadOrdering)
}

func TestCompute_ProducesValidPermutations(t *testing.T) {
	for _, order := range []amd.Order{amd.OrderCholesky, amd.OrderLU, amd.OrderQR} {
		t.Run(order.String(), func(t *testing.T) {
			for _, n := range []int{2, 5, 9, 24} {
				p, err := amd.Compute(order, star(t, n))
				require.NoError(t, err)
				isPermutation(t, p, n)
			}
		})
	}
}

func TestCompute_StarHubGoesLast(t *testing.T) {
	t.Parallel()

	// Every spoke has degree 1, the hub degree n-1: minimum degree must
	// eliminate all spokes before the hub.
	p, err := amd.Compute(amd.OrderCholesky, star(t, 12))
	require.NoError(t, err)
	require.Equal(t, 0, p[len(p)-1], "hub (node 0) must be ordered last")
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	a := star(t, 16)
	p1, err := amd.Compute(amd.OrderCholesky, a)
	require.NoError(t, err)
	p2, err := amd.Compute(amd.OrderCholesky, a)
	require.NoError(t, err)
	require.Equal(t, p1, p2, "identical patterns must order identically")
}

func TestOrderString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "natural", amd.OrderNatural.String())
	require.Equal(t, "invalid", amd.Order(9).String())
}
