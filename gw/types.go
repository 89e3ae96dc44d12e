package gw

import (
	"errors"

	"github.com/katalvlaran/gwot/matrix"
	"github.com/katalvlaran/gwot/sinkhorn"
)

// Sentinel errors returned by the gw solvers.
var (
	// ErrUnsupportedLoss indicates a Loss value outside the closed enum,
	// or a loss/blend combination that has no tensor variant
	// (BlendCombined is defined for SquareLoss only).
	ErrUnsupportedLoss = errors.New("gw: unsupported loss function")

	// ErrUnsupportedBlend indicates a Blend value outside the closed enum.
	ErrUnsupportedBlend = errors.New("gw: unsupported blend policy")

	// ErrBadEpsilon indicates Epsilon ≤ 0 (the entropic subproblem is undefined).
	ErrBadEpsilon = errors.New("gw: Epsilon must be > 0")

	// ErrBadTolerance indicates Tol ≤ 0.
	ErrBadTolerance = errors.New("gw: Tol must be > 0")

	// ErrBadMaxIter indicates MaxIter < 1.
	ErrBadMaxIter = errors.New("gw: MaxIter must be ≥ 1")

	// ErrBadCheckInterval indicates CheckInterval < 1.
	ErrBadCheckInterval = errors.New("gw: CheckInterval must be ≥ 1")

	// ErrBadAlpha indicates Alpha outside [0,1].
	ErrBadAlpha = errors.New("gw: Alpha must be in [0,1]")

	// ErrDegenerateCost indicates a linear cost matrix whose maximum is
	// not a positive finite number where a policy requires normalizing
	// by it (the additive policy with Alpha > 0).
	ErrDegenerateCost = errors.New("gw: linear cost matrix has no positive finite maximum")
)

// Loss selects the decomposition of the Gromov-Wasserstein misfit
// L(a,b) used when linearizing the quadratic objective.
//
//	SquareLoss — L(a,b) = ½(a−b)², split as f1(a)=a²/2, f2(b)=b²/2,
//	             h1(a)=a, h2(b)=b.
//	KLLoss     — L(a,b) = a·log(a/b)−a+b, split as f1(a)=a·log(a)−a,
//	             f2(b)=b, h1(a)=a, h2(b)=log(b).
type Loss int

const (
	// SquareLoss is the default quadratic misfit.
	SquareLoss Loss = iota

	// KLLoss is the Kullback-Leibler misfit; logarithms are floored by
	// 1e-15 so zero entries in the cost matrices never raise a domain fault.
	KLLoss
)

// Blend selects how the linear cost matrix enters each iteration.
//
//	BlendAdditive   — normalize the linear cost by its own maximum,
//	                  rescale by the loss tensor's maximum and add
//	                  Alpha times it to the tensor before solving.
//	BlendNormalized — convex combination (1−Alpha)·tensor + Alpha·normalized
//	                  cost; Alpha == 1 short-circuits to a plain entropic
//	                  solve on the normalized linear cost.
//	BlendCombined   — the linear term is folded into the tensor
//	                  construction itself (SquareLoss only).
type Blend int

const (
	// BlendNormalized is the default policy.
	BlendNormalized Blend = iota

	// BlendAdditive rescales and adds the linear cost after the tensor is built.
	BlendAdditive

	// BlendCombined folds the linear cost into the loss tensor.
	BlendCombined
)

// Subproblem solves the entropic optimal-transport subproblem: given
// marginals p, q, a non-negative cost tensor and a regularization
// strength, it returns a coupling of the tensor's shape whose row and
// column sums approach p and q.
//
// The bundled default wraps sinkhorn.Solve; tests and callers may
// substitute their own (e.g. a counting stub or a stabilized solver).
type Subproblem func(p, q []float64, cost *matrix.Dense, eps float64) (*matrix.Dense, error)

// DefaultSubproblem returns the bundled Sinkhorn solver with its
// default configuration.
func DefaultSubproblem() Subproblem {
	return func(p, q []float64, cost *matrix.Dense, eps float64) (*matrix.Dense, error) {
		return sinkhorn.Solve(p, q, cost, eps, nil)
	}
}

// Options configures a Gromov-Wasserstein solve.
//
//	Loss          – misfit decomposition (SquareLoss or KLLoss).
//	Blend         – linear-cost policy; used by the Solve dispatcher.
//	Alpha         – weight of the linear cost in [0,1]; 0 is pure GW.
//	Epsilon       – entropic regularization strength, > 0.
//	MaxIter       – hard cap on fixed-point iterations, ≥ 1.
//	Tol           – convergence threshold on ‖T−Tprev‖, > 0.
//	CheckInterval – the error is measured every CheckInterval iterations
//	                (default 10); true convergence may precede the
//	                reported one by up to CheckInterval−1 iterations.
//	Verbose       – print an iteration/error table to stdout.
//	Log           – record the error sequence in GWResult.Err.
//	Solver        – entropic subproblem solver; nil selects the bundled
//	                Sinkhorn default.
type Options struct {
	Loss          Loss
	Blend         Blend
	Alpha         float64
	Epsilon       float64
	MaxIter       int
	Tol           float64
	CheckInterval int
	Verbose       bool
	Log           bool
	Solver        Subproblem
}

// DefaultOptions returns the reference configuration: SquareLoss,
// BlendNormalized, Alpha=0, Epsilon=0.1, MaxIter=1000, Tol=1e-9,
// CheckInterval=10.
func DefaultOptions() Options {
	return Options{
		Loss:          SquareLoss,
		Blend:         BlendNormalized,
		Alpha:         0,
		Epsilon:       0.1,
		MaxIter:       1000,
		Tol:           1e-9,
		CheckInterval: 10,
	}
}

// GWResult holds the outcome of a solve.
type GWResult struct {
	// Coupling is the final transport plan (ns×nt). Row sums approach p
	// and column sums approach q at a fixed point.
	Coupling *matrix.Dense

	// Err is the ordered sequence of convergence errors, one entry per
	// checked iteration. Nil unless Options.Log is set.
	Err []float64

	// Iterations is the number of fixed-point iterations performed.
	Iterations int

	// Converged is true when the last measured error dropped to Tol or
	// below; false when the solve stopped at MaxIter.
	Converged bool
}
