// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense kernels used by the transport solvers: products, transposes,
//     element-wise maps and the reductions behind convergence checks.
//
// Determinism & Performance:
//   - Fixed i→j(→k) loop orders over the flat row-major buffer.
//   - One output allocation per op; inputs are never mutated.

package matrix

import "math"

// Add returns a + b. Shapes must match.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, "Add") }

// Sub returns a - b. Shapes must match.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, "Sub") }

// addSub is the shared kernel behind Add and Sub.
func addSub(a, b *Dense, sign float64, op string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data {
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return out, nil
}

// Scale returns alpha * m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx := range m.data {
		out.data[idx] = alpha * m.data[idx]
	}

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b. Shapes must match.
// Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data {
		out.data[idx] = a.data[idx] * b.data[idx]
	}

	return out, nil
}

// Div returns the element-wise quotient a ⊘ b. Shapes must match.
// Division is unguarded: a zero entry in b yields ±Inf or NaN in the
// result, which the caller is expected to rule out or handle.
// Complexity: O(r*c).
func Div(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Div", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Div", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Div", err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data {
		out.data[idx] = a.data[idx] / b.data[idx]
	}

	return out, nil
}

// Apply returns a copy of m with f applied to every entry.
// Complexity: O(r*c) plus the cost of f.
func Apply(m *Dense, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Apply", err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx := range m.data {
		out.data[idx] = f(m.data[idx])
	}

	return out, nil
}

// Mul returns the matrix product a · b. Requires a.Cols() == b.Rows().
// Complexity: O(a.r * a.c * b.c), schoolbook with cached row bases.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if a.c != b.r {
		return nil, matrixErrorf("Mul", ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		aBase := i * a.c
		oBase := i * b.c
		// k-outer accumulation keeps the inner loop contiguous in b.
		for k := 0; k < a.c; k++ {
			av := a.data[aBase+k]
			if av == 0 {
				continue
			}
			bBase := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[oBase+j] += av * b.data[bBase+j]
			}
		}
	}

	return out, nil
}

// MulABt returns a · bᵀ without materializing the transpose.
// Requires a.Cols() == b.Cols(). The tensor builders use this for
// (C1·T)·C2ᵀ where C2 stays in its natural layout.
// Complexity: O(a.r * b.r * a.c).
func MulABt(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("MulABt", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("MulABt", err)
	}
	if a.c != b.c {
		return nil, matrixErrorf("MulABt", ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.r, data: make([]float64, a.r*b.r)}
	for i := 0; i < a.r; i++ {
		aBase := i * a.c
		oBase := i * b.r
		for j := 0; j < b.r; j++ {
			bBase := j * b.c
			var sum float64
			// Both operands are scanned contiguously: rows of a against rows of b.
			for k := 0; k < a.c; k++ {
				sum += a.data[aBase+k] * b.data[bBase+k]
			}
			out.data[oBase+j] = sum
		}
	}

	return out, nil
}

// MatVec returns the product m · x as a vector of length Rows.
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var sum float64
		for j := 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// MatTVec returns mᵀ · x as a vector of length Cols, without
// materializing the transpose.
// Complexity: O(r*c).
func MatTVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MatTVec", err)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, matrixErrorf("MatTVec", err)
	}
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		xi := x[i]
		for j := 0; j < m.c; j++ {
			out[j] += m.data[base+j] * xi
		}
	}

	return out, nil
}

// ScaleRows returns a copy of m with row i multiplied by scale[i].
// Complexity: O(r*c).
func ScaleRows(m *Dense, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ScaleRows", err)
	}
	if err := ValidateVecLen(scale, m.r); err != nil {
		return nil, matrixErrorf("ScaleRows", err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		sf := scale[i]
		for j := 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] * sf
		}
	}

	return out, nil
}

// ScaleCols returns a copy of m with column j multiplied by scale[j].
// Complexity: O(r*c).
func ScaleCols(m *Dense, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ScaleCols", err)
	}
	if err := ValidateVecLen(scale, m.c); err != nil {
		return nil, matrixErrorf("ScaleCols", err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// Outer returns the outer product p ⊗ q as a len(p)×len(q) Dense.
// Both vectors must be non-empty.
// Complexity: O(len(p)*len(q)).
func Outer(p, q []float64) (*Dense, error) {
	if len(p) == 0 || len(q) == 0 {
		return nil, matrixErrorf("Outer", ErrInvalidDimensions)
	}
	out := &Dense{r: len(p), c: len(q), data: make([]float64, len(p)*len(q))}
	for i, pv := range p {
		base := i * len(q)
		for j, qv := range q {
			out.data[base+j] = pv * qv
		}
	}

	return out, nil
}

// Min returns the smallest entry of m.
// Complexity: O(r*c).
func Min(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("Min", err)
	}
	// A zero-value Dense has no entries to reduce over.
	if len(m.data) == 0 {
		return 0, matrixErrorf("Min", ErrInvalidDimensions)
	}
	lo := m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo, nil
}

// Max returns the largest entry of m.
// Complexity: O(r*c).
func Max(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("Max", err)
	}
	if len(m.data) == 0 {
		return 0, matrixErrorf("Max", ErrInvalidDimensions)
	}
	hi := m.data[0]
	for _, v := range m.data[1:] {
		if v > hi {
			hi = v
		}
	}

	return hi, nil
}

// RowSums returns the vector of per-row sums (length Rows).
// Complexity: O(r*c).
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var sum float64
		for j := 0; j < m.c; j++ {
			sum += m.data[base+j]
		}
		out[i] = sum
	}

	return out, nil
}

// ColSums returns the vector of per-column sums (length Cols).
// Complexity: O(r*c).
func ColSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out[j] += m.data[base+j]
		}
	}

	return out, nil
}

// FrobeniusDistance returns ‖a−b‖_F, the Euclidean norm over all
// entries of the difference. Shapes must match.
// Complexity: O(r*c), no intermediate matrix.
func FrobeniusDistance(a, b *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf("FrobeniusDistance", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf("FrobeniusDistance", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf("FrobeniusDistance", err)
	}
	var sum float64
	for idx := range a.data {
		d := a.data[idx] - b.data[idx]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}
