package gw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwot/gw"
	"github.com/katalvlaran/gwot/matrix"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// uniform returns the uniform marginal of length n.
func uniform(n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = 1.0 / float64(n)
	}

	return p
}

// independence returns outer(p,q) or fails the test.
func independence(t *testing.T, p, q []float64) *matrix.Dense {
	t.Helper()
	T, err := matrix.Outer(p, q)
	require.NoError(t, err)

	return T
}

// symmetricDist3 is a small symmetric distance matrix reused across tests.
func symmetricDist3(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustDense(t, [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	})
}

// TestIndependenceCoupling_Marginals verifies that outer(p,q) already
// satisfies the row/column marginal sums exactly.
func TestIndependenceCoupling_Marginals(t *testing.T) {
	p := []float64{0.2, 0.3, 0.5}
	q := []float64{0.6, 0.4}
	T := independence(t, p, q)

	rows, err := matrix.RowSums(T)
	require.NoError(t, err)
	cols, err := matrix.ColSums(T)
	require.NoError(t, err)
	for i := range p {
		assert.InDelta(t, p[i], rows[i], 1e-12, "row %d", i)
	}
	for j := range q {
		assert.InDelta(t, q[j], cols[j], 1e-12, "col %d", j)
	}
}

// TestTensorSquareLoss_MinShiftIsZero verifies that the min-shift leaves
// a global minimum of exactly zero, and that re-shifting is idempotent.
func TestTensorSquareLoss_MinShiftIsZero(t *testing.T) {
	C1 := symmetricDist3(t)
	C2 := mustDense(t, [][]float64{
		{0, 2, 1},
		{2, 0, 3},
		{1, 3, 0},
	})
	T := independence(t, uniform(3), uniform(3))

	tens, err := gw.TensorSquareLoss(C1, C2, T)
	require.NoError(t, err)

	lo, err := matrix.Min(tens)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, lo, 1e-15, "shifted tensor must touch zero")

	// Feeding the builder the same coupling again must reproduce the
	// same shifted tensor (the shift is idempotent, not cumulative).
	again, err := gw.TensorSquareLoss(C1, C2, T)
	require.NoError(t, err)
	d, err := matrix.FrobeniusDistance(tens, again)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-15)
}

// TestTensorSquareLoss_ZeroCostMatrices verifies that all-zero cost
// matrices produce an all-zero tensor: the cross term vanishes and the
// min-shift is a no-op.
func TestTensorSquareLoss_ZeroCostMatrices(t *testing.T) {
	zero3, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	T := independence(t, uniform(3), uniform(3))

	tens, terr := gw.TensorSquareLoss(zero3, zero3, T)
	require.NoError(t, terr)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := tens.At(i, j)
			require.NoError(t, aerr)
			assert.InDelta(t, 0.0, v, 1e-15, "entry (%d,%d)", i, j)
		}
	}
}

// TestTensorKLLoss_ZeroEntriesNoDomainFault verifies that exact zeros in
// C2 do not produce NaN or ±Inf: the 1e-15 log floor must hold.
func TestTensorKLLoss_ZeroEntriesNoDomainFault(t *testing.T) {
	C1 := symmetricDist3(t)
	C2 := mustDense(t, [][]float64{
		{0, 1, 0},
		{1, 0, 2},
		{0, 2, 0},
	})
	T := independence(t, uniform(3), uniform(3))

	tens, err := gw.TensorKLLoss(C1, C2, T)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := tens.At(i, j)
			require.NoError(t, aerr)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "entry (%d,%d) must be finite", i, j)
		}
	}

	lo, err := matrix.Min(tens)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, lo, 1e-15, "KL tensor is min-shifted too")
}

// TestTensorSquareLossCombined_ReducesToPlain verifies that alpha=0 (or
// a zero linear cost) reproduces the plain square-loss tensor.
func TestTensorSquareLossCombined_ReducesToPlain(t *testing.T) {
	C1 := symmetricDist3(t)
	C2 := symmetricDist3(t)
	T := independence(t, uniform(3), uniform(3))
	zeroCost, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	plain, err := gw.TensorSquareLoss(C1, C2, T)
	require.NoError(t, err)

	combined, err := gw.TensorSquareLossCombined(C1, C2, T, zeroCost, 0.7)
	require.NoError(t, err)

	d, err := matrix.FrobeniusDistance(plain, combined)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-12, "zero linear cost must not change the tensor")
}

// TestTensorSquareLossCombined_LinearTermShifts verifies that a nonzero
// linear cost with alpha>0 actually changes the tensor.
func TestTensorSquareLossCombined_LinearTermShifts(t *testing.T) {
	C1 := symmetricDist3(t)
	C2 := symmetricDist3(t)
	T := independence(t, uniform(3), uniform(3))
	cost := mustDense(t, [][]float64{
		{0, 5, 5},
		{5, 0, 5},
		{5, 5, 0},
	})

	plain, err := gw.TensorSquareLoss(C1, C2, T)
	require.NoError(t, err)
	combined, err := gw.TensorSquareLossCombined(C1, C2, T, cost, 1.0)
	require.NoError(t, err)

	d, err := matrix.FrobeniusDistance(plain, combined)
	require.NoError(t, err)
	assert.Greater(t, d, 0.0, "a real linear term must move the tensor")
}

// TestTensorBuilders_ShapeErrors verifies the shared shape contract.
func TestTensorBuilders_ShapeErrors(t *testing.T) {
	C1 := symmetricDist3(t)
	notSquare := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	T := independence(t, uniform(3), uniform(3))

	_, err := gw.TensorSquareLoss(nil, C1, T)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = gw.TensorSquareLoss(C1, notSquare, T)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	badT := independence(t, uniform(2), uniform(3))
	_, err = gw.TensorKLLoss(C1, C1, badT)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
