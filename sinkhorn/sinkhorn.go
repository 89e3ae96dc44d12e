package sinkhorn

import (
	"math"

	"github.com/katalvlaran/gwot/matrix"
)

// Solve computes the entropically regularized coupling between p and q
// for the cost matrix cost with regularization eps.
//
// Contracts:
//   - cost must be non-nil with shape len(p)×len(q).
//   - eps must be > 0; opts may be nil, then DefaultOptions() applies.
//   - p and q are expected to be non-negative and sum to 1; this is the
//     caller's responsibility and is not enforced here.
//
// Termination: the column-marginal violation ‖colsum(T)−q‖ is measured
// every opts.CheckInterval sweeps; the loop stops when it drops below
// opts.Tol, when MaxIter is reached, or when a scaling denominator
// vanishes / a scaling vector stops being finite — in that last case
// the previous (numerically sound) scaling pair is kept and the
// coupling built from it is returned.
//
// Complexity: O(MaxIter · ns · nt) time, O(ns·nt) memory.
func Solve(p, q []float64, cost *matrix.Dense, eps float64, opts *Options) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return nil, err
	}
	ns, nt := cost.Rows(), cost.Cols()
	if err := matrix.ValidateVecLen(p, ns); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(q, nt); err != nil {
		return nil, err
	}
	if eps <= 0 {
		return nil, ErrBadRegularization
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}
	if o.Tol <= 0 {
		return nil, ErrBadTolerance
	}
	if o.CheckInterval < 1 {
		return nil, ErrBadCheckInterval
	}

	// Gibbs kernel K = exp(−M/eps). Zero costs simply map to 1.
	K, err := matrix.Apply(cost, func(v float64) float64 { return math.Exp(-v / eps) })
	if err != nil {
		return nil, err
	}

	// Uniform initial scalings.
	u := make([]float64, ns)
	v := make([]float64, nt)
	for i := range u {
		u[i] = 1.0 / float64(ns)
	}
	for j := range v {
		v[j] = 1.0 / float64(nt)
	}

	uPrev := make([]float64, ns)
	vPrev := make([]float64, nt)
	viol := 1.0
	for cpt := 0; viol > o.Tol && cpt < o.MaxIter; cpt++ {
		copy(uPrev, u)
		copy(vPrev, v)

		ktu, kerr := matrix.MatTVec(K, u)
		if kerr != nil {
			return nil, kerr
		}
		for j := 0; j < nt; j++ {
			v[j] = q[j] / ktu[j]
		}
		kv, kerr := matrix.MatVec(K, v)
		if kerr != nil {
			return nil, kerr
		}
		for i := 0; i < ns; i++ {
			u[i] = p[i] / kv[i]
		}

		// The check runs after the full sweep so a vanished denominator
		// in either half taints only u/v, never uPrev/vPrev: an underflowed
		// kernel row or column makes this sweep numerically meaningless,
		// keep the last sound scalings.
		if hasZero(ktu) || hasZero(kv) || notFinite(u) || notFinite(v) {
			copy(u, uPrev)
			copy(v, vPrev)

			break
		}

		if cpt%o.CheckInterval == 0 {
			viol = marginalViolation(K, u, v, q)
		}
	}

	return coupling(K, u, v)
}

// coupling builds T = diag(u)·K·diag(v).
func coupling(K *matrix.Dense, u, v []float64) (*matrix.Dense, error) {
	scaled, err := matrix.ScaleRows(K, u)
	if err != nil {
		return nil, err
	}

	return matrix.ScaleCols(scaled, v)
}

// marginalViolation returns ‖colsum(diag(u)·K·diag(v)) − q‖₂.
func marginalViolation(K *matrix.Dense, u, v, q []float64) float64 {
	T, err := coupling(K, u, v)
	if err != nil {
		return math.Inf(1)
	}
	cols, err := matrix.ColSums(T)
	if err != nil {
		return math.Inf(1)
	}
	var sum float64
	for j, c := range cols {
		d := c - q[j]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// hasZero reports whether any denominator entry is exactly zero.
func hasZero(x []float64) bool {
	for _, v := range x {
		if v == 0 {
			return true
		}
	}

	return false
}

// notFinite reports whether any entry is NaN or ±Inf.
func notFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
