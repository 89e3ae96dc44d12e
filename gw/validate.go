// Package gw - input validation shared by the three solver policies.
//
// Deterministic, side-effect free, sentinel errors only (types.go);
// shape checks delegate to the matrix validators.
package gw

import "github.com/katalvlaran/gwot/matrix"

// validateSolve verifies marginals, matrix shapes and option ranges for
// one solve call, resolves a nil Solver to the bundled default and
// returns the effective Options.
//
// Contract:
//   - C1 is ns×ns with ns == len(p); C2 is nt×nt with nt == len(q);
//     costMat is ns×nt.
//   - Epsilon > 0, Tol > 0, MaxIter ≥ 1, CheckInterval ≥ 1, Alpha ∈ [0,1].
//   - Loss must be a member of the closed enum.
//
// Complexity: O(1).
func validateSolve(costMat, C1, C2 *matrix.Dense, p, q []float64, opts Options) (Options, error) {
	if err := matrix.ValidateNotNil(costMat); err != nil {
		return opts, err
	}
	if err := matrix.ValidateNotNil(C1); err != nil {
		return opts, err
	}
	if err := matrix.ValidateNotNil(C2); err != nil {
		return opts, err
	}
	if err := matrix.ValidateSquare(C1); err != nil {
		return opts, err
	}
	if err := matrix.ValidateSquare(C2); err != nil {
		return opts, err
	}
	if err := matrix.ValidateVecLen(p, C1.Rows()); err != nil {
		return opts, err
	}
	if err := matrix.ValidateVecLen(q, C2.Rows()); err != nil {
		return opts, err
	}
	if costMat.Rows() != len(p) || costMat.Cols() != len(q) {
		return opts, matrix.ErrDimensionMismatch
	}

	switch opts.Loss {
	case SquareLoss, KLLoss:
		// member of the closed enum
	default:
		return opts, ErrUnsupportedLoss
	}
	if opts.Epsilon <= 0 {
		return opts, ErrBadEpsilon
	}
	if opts.Tol <= 0 {
		return opts, ErrBadTolerance
	}
	if opts.MaxIter < 1 {
		return opts, ErrBadMaxIter
	}
	if opts.CheckInterval < 1 {
		return opts, ErrBadCheckInterval
	}
	if opts.Alpha < 0 || opts.Alpha > 1 {
		return opts, ErrBadAlpha
	}
	if opts.Solver == nil {
		opts.Solver = DefaultSubproblem()
	}

	return opts, nil
}
