package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmat "gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gwot/matrix"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// toGonum converts a Dense into a gonum mat.Dense for oracle checks.
func toGonum(t *testing.T, m *matrix.Dense) *gmat.Dense {
	t.Helper()
	out := gmat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out.Set(i, j, v)
		}
	}

	return out
}

// assertMatchesGonum compares a Dense against a gonum matrix entry-wise.
func assertMatchesGonum(t *testing.T, got *matrix.Dense, want gmat.Matrix) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows())
	require.Equal(t, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want.At(i, j), v, 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestMul_AgainstGonum cross-checks the schoolbook product against the
// gonum/mat implementation on a non-square case.
func TestMul_AgainstGonum(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var want gmat.Dense
	want.Mul(toGonum(t, a), toGonum(t, b))
	assertMatchesGonum(t, got, &want)
}

// TestMulABt_AgainstGonum cross-checks A·Bᵀ against gonum.
func TestMulABt_AgainstGonum(t *testing.T) {
	a := mustDense(t, [][]float64{{1, -2, 3}, {0, 5, 1}})
	b := mustDense(t, [][]float64{{2, 1, 0}, {-1, 4, 2}, {3, 3, 3}, {0, 0, 1}})

	got, err := matrix.MulABt(a, b)
	require.NoError(t, err)

	var want gmat.Dense
	want.Mul(toGonum(t, a), toGonum(t, b).T())
	assertMatchesGonum(t, got, &want)
}

// TestTranspose_AgainstGonum cross-checks Transpose against gonum.
func TestTranspose_AgainstGonum(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	got, err := matrix.Transpose(a)
	require.NoError(t, err)

	want := gmat.DenseCopyOf(toGonum(t, a).T())
	assertMatchesGonum(t, got, want)
}

// TestAddSubScaleHadamard covers the element-wise ops on one fixture.
func TestAddSubScaleHadamard(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assertEqualRows(t, sum, [][]float64{{6, 8}, {10, 12}})

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assertEqualRows(t, diff, [][]float64{{4, 4}, {4, 4}})

	scaled, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	assertEqualRows(t, scaled, [][]float64{{2, 4}, {6, 8}})

	had, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	assertEqualRows(t, had, [][]float64{{5, 12}, {21, 32}})
}

// TestDiv_UnguardedZero verifies that Div propagates Inf/NaN on zero
// denominators instead of masking them.
func TestDiv_UnguardedZero(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}})
	b := mustDense(t, [][]float64{{0, 0}})

	quot, err := matrix.Div(a, b)
	require.NoError(t, err)

	v, err := quot.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "1/0 must be +Inf")

	v, err = quot.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "0/0 must be NaN")
}

// TestOuter verifies the outer product and its shape.
func TestOuter(t *testing.T) {
	out, err := matrix.Outer([]float64{1, 2}, []float64{3, 4, 5})
	require.NoError(t, err)
	assertEqualRows(t, out, [][]float64{{3, 4, 5}, {6, 8, 10}})

	_, err = matrix.Outer(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestMinMax verifies the global reductions.
func TestMinMax(t *testing.T) {
	m := mustDense(t, [][]float64{{3, -1}, {7, 0}})

	lo, err := matrix.Min(m)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)

	hi, err := matrix.Max(m)
	require.NoError(t, err)
	assert.Equal(t, 7.0, hi)
}

// TestMinMax_ZeroValueDense verifies that a zero-value Dense is
// rejected with a sentinel instead of panicking on the empty backing
// slice.
func TestMinMax_ZeroValueDense(t *testing.T) {
	var m matrix.Dense

	_, err := matrix.Min(&m)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Max(&m)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowColSums verifies the marginal reductions.
func TestRowColSums(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	rows, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, rows)

	cols, err := matrix.ColSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, cols)
}

// TestMatVec_MatTVec verifies the vector kernels against hand results.
func TestMatVec_MatTVec(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	mv, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, mv)

	mtv, err := matrix.MatTVec(m, []float64{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8}, mtv)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScaleRowsCols verifies the diagonal scalings used by sinkhorn.
func TestScaleRowsCols(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	rs, err := matrix.ScaleRows(m, []float64{2, 10})
	require.NoError(t, err)
	assertEqualRows(t, rs, [][]float64{{2, 4}, {30, 40}})

	cs, err := matrix.ScaleCols(m, []float64{0, 1})
	require.NoError(t, err)
	assertEqualRows(t, cs, [][]float64{{0, 2}, {0, 4}})
}

// TestFrobeniusDistance verifies the convergence norm on a known pair.
func TestFrobeniusDistance(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{0, 2}, {3, 2}})

	// difference entries: 1, 0, 0, 2 → norm = sqrt(5)
	d, err := matrix.FrobeniusDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5), d, 1e-12)

	d, err = matrix.FrobeniusDistance(a, a)
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestOps_NilAndShapeErrors verifies that kernels reject nil inputs and
// incompatible shapes with the package sentinels.
func TestOps_NilAndShapeErrors(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MulABt(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FrobeniusDistance(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// assertEqualRows compares a Dense against expected rows exactly.
func assertEqualRows(t *testing.T, got *matrix.Dense, want [][]float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], v, "entry (%d,%d)", i, j)
		}
	}
}
