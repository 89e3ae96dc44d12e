package sinkhorn

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrBadRegularization indicates eps ≤ 0 (the entropic term would vanish or flip sign).
	ErrBadRegularization = errors.New("sinkhorn: regularization must be > 0")

	// ErrBadMaxIter indicates MaxIter < 1.
	ErrBadMaxIter = errors.New("sinkhorn: MaxIter must be ≥ 1")

	// ErrBadTolerance indicates Tol ≤ 0.
	ErrBadTolerance = errors.New("sinkhorn: Tol must be > 0")

	// ErrBadCheckInterval indicates CheckInterval < 1.
	ErrBadCheckInterval = errors.New("sinkhorn: CheckInterval must be ≥ 1")
)

// Options configures the scaling iteration.
//
//	MaxIter       – hard cap on scaling sweeps.
//	Tol           – stop once the column-marginal violation drops below Tol.
//	CheckInterval – the violation is measured every CheckInterval sweeps;
//	                between checks the true violation may already be below
//	                Tol for up to CheckInterval−1 sweeps.
type Options struct {
	MaxIter       int
	Tol           float64
	CheckInterval int
}

// DefaultOptions returns the reference solver configuration:
// MaxIter=1000, Tol=1e-9, CheckInterval=10.
func DefaultOptions() Options {
	return Options{
		MaxIter:       1000,
		Tol:           1e-9,
		CheckInterval: 10,
	}
}
