// Package gw - fixed-point drivers for the entropic Gromov-Wasserstein
// coupling, one per linear-cost policy, plus a unified dispatcher.
//
// Each driver runs the same majorization-minimization loop: linearize
// the quadratic objective at the current coupling (tensor.go), blend in
// the linear cost per policy, hand the tensor to the entropic
// subproblem solver, and repeat until ‖T−Tprev‖ drops below Tol or
// MaxIter is exhausted. Reaching MaxIter is not an error: the last
// coupling is returned with Converged=false.
package gw

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gwot/matrix"
)

// Solve routes to the policy selected by opts.Blend.
//
// Errors: validation sentinels from types.go, ErrUnsupportedBlend for a
// Blend value outside the closed enum, and any error surfaced by the
// subproblem solver.
func Solve(costMat, C1, C2 *matrix.Dense, p, q []float64, opts Options) (GWResult, error) {
	switch opts.Blend {
	case BlendAdditive:
		return SolveAdditive(costMat, C1, C2, p, q, opts)
	case BlendNormalized:
		return SolveNormalizedBlend(costMat, C1, C2, p, q, opts)
	case BlendCombined:
		return SolveCombined(costMat, C1, C2, p, q, opts)
	default:
		return GWResult{}, ErrUnsupportedBlend
	}
}

// SolveAdditive computes the coupling with the additive policy: the
// linear cost is normalized by its own maximum once, rescaled by the
// loss tensor's maximum each iteration, and Alpha times it is added to
// the tensor before the entropic solve.
//
// With Alpha == 0 the linear term is skipped entirely and costMat is
// never normalized, so a zero linear cost is fine for pure-GW solves.
// With Alpha > 0 a maximum that is not positive and finite cannot
// normalize anything meaningful and yields ErrDegenerateCost up front.
//
// Complexity: O(MaxIter · (ns²·nt + ns·nt² + subproblem)).
func SolveAdditive(costMat, C1, C2 *matrix.Dense, p, q []float64, opts Options) (GWResult, error) {
	o, err := validateSolve(costMat, C1, C2, p, q, opts)
	if err != nil {
		return GWResult{}, err
	}

	var costNorm *matrix.Dense
	if o.Alpha > 0 {
		hi, merr := matrix.Max(costMat)
		if merr != nil {
			return GWResult{}, merr
		}
		if hi <= 0 || math.IsInf(hi, 0) || math.IsNaN(hi) {
			return GWResult{}, ErrDegenerateCost
		}
		if costNorm, merr = matrix.Scale(costMat, 1/hi); merr != nil {
			return GWResult{}, merr
		}
	}

	step := func(T *matrix.Dense) (*matrix.Dense, error) {
		tens, terr := lossTensor(o.Loss, C1, C2, T)
		if terr != nil {
			return nil, terr
		}
		if o.Alpha == 0 {
			return tens, nil
		}
		// Rescale the normalized linear cost to the tensor's magnitude,
		// then add its Alpha-weighted share.
		tensMax, terr := matrix.Max(tens)
		if terr != nil {
			return nil, terr
		}
		rescaled, terr := matrix.Scale(costNorm, o.Alpha*tensMax)
		if terr != nil {
			return nil, terr
		}

		return matrix.Add(tens, rescaled)
	}

	return iterate(p, q, step, o)
}

// SolveNormalizedBlend computes the coupling with the convex-blend
// policy: tens_all = (1−Alpha)·tensor + Alpha·costNorm, where costNorm
// is costMat normalized by its maximum.
//
// Degenerate normalization (maximum not positive and finite) falls back
// to the raw costMat, silently: normalization failure must never abort
// the solve under this policy. The branch is explicit so the decision
// stays visible and testable.
//
// Alpha == 1 skips the Gromov-Wasserstein term entirely and returns the
// entropic solution on costNorm directly (pure linear assignment);
// Iterations is 0 and Converged is true in that case.
//
// Complexity: O(MaxIter · (ns²·nt + ns·nt² + subproblem)).
func SolveNormalizedBlend(costMat, C1, C2 *matrix.Dense, p, q []float64, opts Options) (GWResult, error) {
	o, err := validateSolve(costMat, C1, C2, p, q, opts)
	if err != nil {
		return GWResult{}, err
	}

	costNorm := costMat
	if hi, merr := matrix.Max(costMat); merr == nil && hi > 0 && !math.IsInf(hi, 0) {
		if norm, serr := matrix.Scale(costMat, 1/hi); serr == nil {
			costNorm = norm
		}
	}

	if o.Alpha == 1 {
		T, serr := o.Solver(p, q, costNorm, o.Epsilon)
		if serr != nil {
			return GWResult{}, serr
		}

		return GWResult{Coupling: T, Iterations: 0, Converged: true}, nil
	}

	step := func(T *matrix.Dense) (*matrix.Dense, error) {
		tens, terr := lossTensor(o.Loss, C1, C2, T)
		if terr != nil {
			return nil, terr
		}
		gwPart, terr := matrix.Scale(tens, 1-o.Alpha)
		if terr != nil {
			return nil, terr
		}
		linPart, terr := matrix.Scale(costNorm, o.Alpha)
		if terr != nil {
			return nil, terr
		}

		return matrix.Add(gwPart, linPart)
	}

	return iterate(p, q, step, o)
}

// SolveCombined computes the coupling with the combined-tensor policy:
// the linear cost enters the tensor construction itself
// (TensorSquareLossCombined) and no blending happens afterwards. The
// raw costMat is used, not a normalized copy — the builder rescales the
// linear term by the nonlinear maximum instead.
//
// Only SquareLoss has a combined tensor variant; KLLoss yields
// ErrUnsupportedLoss.
//
// Complexity: O(MaxIter · (ns²·nt + ns·nt² + subproblem)).
func SolveCombined(costMat, C1, C2 *matrix.Dense, p, q []float64, opts Options) (GWResult, error) {
	o, err := validateSolve(costMat, C1, C2, p, q, opts)
	if err != nil {
		return GWResult{}, err
	}
	if o.Loss != SquareLoss {
		return GWResult{}, ErrUnsupportedLoss
	}

	step := func(T *matrix.Dense) (*matrix.Dense, error) {
		return TensorSquareLossCombined(C1, C2, T, costMat, o.Alpha)
	}

	return iterate(p, q, step, o)
}

// iterate runs the shared fixed-point loop. step turns the current
// coupling into the cost tensor for the next entropic solve; everything
// else — initialization at the independence coupling outer(p,q),
// periodic convergence measurement, logging, verbosity and termination
// — is policy-independent.
func iterate(p, q []float64, step func(*matrix.Dense) (*matrix.Dense, error), o Options) (GWResult, error) {
	T, err := matrix.Outer(p, q)
	if err != nil {
		return GWResult{}, err
	}

	var logSeq []float64
	if o.Log {
		logSeq = make([]float64, 0, o.MaxIter/o.CheckInterval+1)
	}

	// The sentinel 1 forces at least one loop entry.
	errVal := 1.0
	cpt := 0
	checks := 0
	for errVal > o.Tol && cpt < o.MaxIter {
		Tprev := T

		tens, terr := step(T)
		if terr != nil {
			return GWResult{}, terr
		}
		if T, terr = o.Solver(p, q, tens, o.Epsilon); terr != nil {
			return GWResult{}, terr
		}

		// Measuring only every CheckInterval-th iteration trades up to
		// CheckInterval−1 extra iterations for fewer O(ns·nt) norms.
		if cpt%o.CheckInterval == 0 {
			if errVal, terr = matrix.FrobeniusDistance(T, Tprev); terr != nil {
				return GWResult{}, terr
			}
			if o.Log {
				logSeq = append(logSeq, errVal)
			}
			if o.Verbose {
				printProgress(checks, cpt, errVal)
			}
			checks++
		}
		cpt++
	}

	return GWResult{
		Coupling:   T,
		Err:        logSeq,
		Iterations: cpt,
		Converged:  errVal <= o.Tol,
	}, nil
}

// printProgress emits the iteration/error table row, re-printing the
// header every 20 printed rows. The cadence counts rows rather than
// iterations so the header reappears for any CheckInterval, not only
// those dividing a fixed iteration stride.
func printProgress(row, cpt int, errVal float64) {
	if row%20 == 0 {
		fmt.Printf("%5s|%12s\n%s\n", "It.", "Err", strings.Repeat("-", 19))
	}
	fmt.Printf("%5d|%8e|\n", cpt, errVal)
}
