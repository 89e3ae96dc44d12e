// Package matrix provides the dense float64 kernel used by the gwot
// solvers: cost matrices, couplings and loss tensors are all row-major
// Dense values.
//
// ✨ What lives here:
//   - Dense — flat row-major storage with bounds-checked At/Set and deep Clone
//   - structural ops: Mul, MulABt, Transpose, Outer
//   - element-wise ops: Add, Sub, Scale, Hadamard, Apply
//   - reductions: Min, Max, RowSums, ColSums, FrobeniusDistance
//   - validators: ValidateNotNil, ValidateSameShape, ValidateSquare, ValidateVecLen
//
// Design:
//   - Every op validates its inputs through the central validators and
//     returns package sentinels (ErrNilMatrix, ErrDimensionMismatch, …);
//     no panics on user input.
//   - Loops run in fixed i→j order over the flat buffer — deterministic
//     results across runs and platforms.
//   - Ops allocate exactly one output Dense and never mutate their
//     inputs; solvers own their working copies.
//
// Complexity: all ops are O(r·c) except Mul/MulABt which are O(n³)
// schoolbook products — the solvers operate on small measured spaces,
// not BLAS-scale problems.
package matrix
