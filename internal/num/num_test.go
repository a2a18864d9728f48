package num_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/internal/num"
)

func TestMinMaxAbs(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, num.Min(2, 5))
	require.Equal(t, 5, num.Max(2, 5))
	require.Equal(t, 3.5, num.Abs(-3.5))
	require.Equal(t, 7, num.Abs(7))
}

func TestFinite(t *testing.T) {
	t.Parallel()

	require.True(t, num.Finite(0))
	require.True(t, num.Finite(-1e300))
	require.False(t, num.Finite(math.NaN()))
	require.False(t, num.Finite(math.Inf(1)))
}

// TestCumSum checks both outputs of the assembly primitive: ptr becomes
// the exclusive prefix sum and counts is rewritten into next-free-slot
// pointers (a copy of ptr's first n entries).
func TestCumSum(t *testing.T) {
	t.Parallel()

	counts := []int{2, 0, 3, 1}
	ptr := make([]int, 5)

	total := num.CumSum(ptr, counts)
	require.Equal(t, 6, total)
	require.Equal(t, []int{0, 2, 2, 5, 6}, ptr)
	require.Equal(t, []int{0, 2, 2, 5}, counts)
}
