// Package lu_test exercises left-looking LU: golden factors, pivoting
// behavior, validation and solves.
package lu_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsix/amd"
	"github.com/katalvlaran/sparsix/csc"
	"github.com/katalvlaran/sparsix/lu"
)

// fromDense builds a CSC matrix from dense rows or fails the test.
func fromDense(t *testing.T, d [][]float64) *csc.Matrix {
	t.Helper()
	a, err := csc.NewFromDense(d)
	require.NoError(t, err)

	return a
}

// residual returns ‖(P·A·Q) − L·U‖_F / ‖A‖_F for a computed factor,
// forming P·A·Q with the sparse permutation kernel.
func residual(t *testing.T, a *csc.Matrix, f *lu.Factor) float64 {
	t.Helper()

	var prod mat.Dense
	prod.Mul(f.L.ToDense(), f.U.ToDense())

	paq, err := csc.Permute(a, f.Perm, f.Q, true)
	require.NoError(t, err)

	var diff mat.Dense
	diff.Sub(paq.ToDense(), &prod)

	return mat.Norm(&diff, 2) / mat.Norm(a.ToDense(), 2)
}

// LUSuite groups the factorization scenarios.
type LUSuite struct {
	suite.Suite
}

// TestGolden2x2 reproduces the reference case: A = [[4,3],[6,3]],
// symmetric ordering, threshold 0.001 — the sparser diagonal pivot is
// admissible, so no row exchange happens.
func (s *LUSuite) TestGolden2x2() {
	a := fromDense(s.T(), [][]float64{{4, 3}, {6, 3}})

	f, err := lu.FactorOf(a, amd.OrderCholesky, lu.WithPivotThreshold(0.001))
	require.NoError(s.T(), err)

	ld := f.L.ToDense()
	require.Equal(s.T(), 1.0, ld.At(0, 0))
	require.Equal(s.T(), 1.5, ld.At(1, 0))
	require.Equal(s.T(), 1.0, ld.At(1, 1))

	ud := f.U.ToDense()
	require.Equal(s.T(), 4.0, ud.At(0, 0))
	require.Equal(s.T(), 3.0, ud.At(0, 1))
	require.Equal(s.T(), -1.5, ud.At(1, 1))

	require.Equal(s.T(), []int{0, 1}, f.Perm.P, "no row exchange under the loose threshold")
	if f.Q != nil {
		require.Equal(s.T(), []int{0, 1}, f.Q)
	}
}

// TestStrictPivotingExchangesRows: the same matrix under threshold 1
// must pick the larger 6 as the first pivot.
func (s *LUSuite) TestStrictPivotingExchangesRows() {
	a := fromDense(s.T(), [][]float64{{4, 3}, {6, 3}})

	f, err := lu.FactorOf(a, amd.OrderNatural) // default threshold 1
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 0}, f.Perm.P, "strict pivoting takes |6| over |4|")
	require.Less(s.T(), residual(s.T(), a, f), 1e-14)
}

// TestResidualAcrossOrderings factors a general square matrix under all
// four selectors and checks P·A·Q = L·U each time.
func (s *LUSuite) TestResidualAcrossOrderings() {
	a := fromDense(s.T(), [][]float64{
		{0, 2, 3, 0, 0},
		{4, 5, 6, 0, 1},
		{7, 8, 9, 1, 0},
		{0, 0, 1, 5, 2},
		{0, 1, 0, 2, 4},
	})

	for _, order := range []amd.Order{amd.OrderNatural, amd.OrderCholesky, amd.OrderLU, amd.OrderQR} {
		f, err := lu.FactorOf(a, order)
		require.NoError(s.T(), err, "order %v", order)
		require.Less(s.T(), residual(s.T(), a, f), 1e-12, "order %v", order)
	}
}

// TestDiagonalFirstInvariant: both factors store their diagonal at
// position 0 of every column slice.
func (s *LUSuite) TestDiagonalFirstInvariant() {
	a := fromDense(s.T(), [][]float64{
		{0, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	f, err := lu.FactorOf(a, amd.OrderNatural)
	require.NoError(s.T(), err)

	var j int
	for j = 0; j < 3; j++ {
		require.Equal(s.T(), j, f.L.RowIdx[f.L.ColPtr[j]], "L column %d", j)
		require.Equal(s.T(), 1.0, f.L.Values[f.L.ColPtr[j]], "L has a unit diagonal")
		require.Equal(s.T(), j, f.U.RowIdx[f.U.ColPtr[j]], "U column %d", j)
	}
}

// TestSingularMatrix: a rank-deficient matrix fails with the fixed
// sentinel and yields no partial factor.
func (s *LUSuite) TestSingularMatrix() {
	a := fromDense(s.T(), [][]float64{
		{1, 2, 3},
		{2, 4, 6}, // row 1 = 2 × row 0
		{1, 1, 1},
	})

	f, err := lu.FactorOf(a, amd.OrderNatural)
	require.ErrorIs(s.T(), err, lu.ErrSingular)
	require.EqualError(s.T(), err, "lu: matrix is singular")
	require.Nil(s.T(), f)
}

// TestValidation_ThresholdAndOrdering: both knobs are rejected before
// any factorization work.
func (s *LUSuite) TestValidation_ThresholdAndOrdering() {
	a := fromDense(s.T(), [][]float64{{1, 0}, {0, 1}})

	_, err := lu.FactorOf(a, amd.OrderNatural, lu.WithPivotThreshold(1.5))
	require.ErrorIs(s.T(), err, lu.ErrBadThreshold)
	require.EqualError(s.T(), err, "lu: threshold must be in [0,1]")

	_, err = lu.FactorOf(a, amd.OrderNatural, lu.WithPivotThreshold(-0.1))
	require.ErrorIs(s.T(), err, lu.ErrBadThreshold)

	_, err = lu.Analyze(a, amd.Order(7))
	require.ErrorIs(s.T(), err, lu.ErrBadOrdering)
	require.EqualError(s.T(), err, "lu: ordering must be an integer in [0,3]")
}

// TestSolveReproducesRHS solves A·x = b and substitutes back, with and
// without a column ordering.
func (s *LUSuite) TestSolveReproducesRHS() {
	a := fromDense(s.T(), [][]float64{
		{0, 2, 3, 0},
		{4, 5, 6, 1},
		{7, 8, 0, 2},
		{0, 1, 2, 9},
	})
	b := []float64{1, -2, 3, 0.5}

	for _, order := range []amd.Order{amd.OrderNatural, amd.OrderLU} {
		f, err := lu.FactorOf(a, order)
		require.NoError(s.T(), err, "order %v", order)

		x, err := lu.Solve(f, b)
		require.NoError(s.T(), err)

		ax := make([]float64, len(b))
		require.NoError(s.T(), csc.Gaxpy(a, x, ax))
		for i := range b {
			require.InDelta(s.T(), b[i], ax[i], 1e-10, "order %v, component %d", order, i)
		}
	}
}

// TestSolveValidatesDimensions rejects a wrong-length right-hand side.
func (s *LUSuite) TestSolveValidatesDimensions() {
	a := fromDense(s.T(), [][]float64{{2, 0}, {0, 2}})
	f, err := lu.FactorOf(a, amd.OrderNatural)
	require.NoError(s.T(), err)

	_, err = lu.Solve(f, []float64{1})
	require.ErrorIs(s.T(), err, lu.ErrDimensionMismatch)
}

// TestNonSquareRejected: LU requires a square input.
func (s *LUSuite) TestNonSquareRejected() {
	a := fromDense(s.T(), [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := lu.Analyze(a, amd.OrderNatural)
	require.ErrorIs(s.T(), err, lu.ErrNonSquare)
}

// TestAnalyzeDeterminism: same pattern, same selector, same Q.
func (s *LUSuite) TestAnalyzeDeterminism() {
	a := fromDense(s.T(), [][]float64{
		{0, 2, 3, 0, 0},
		{4, 5, 6, 0, 1},
		{7, 8, 9, 1, 0},
		{0, 0, 1, 5, 2},
		{0, 1, 0, 2, 4},
	})

	s1, err := lu.Analyze(a, amd.OrderLU)
	require.NoError(s.T(), err)
	s2, err := lu.Analyze(a, amd.OrderLU)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s1.Q, s2.Q)
}

func TestLUSuite(t *testing.T) {
	suite.Run(t, new(LUSuite))
}
