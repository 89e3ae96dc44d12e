package gw

import (
	"math"

	"github.com/katalvlaran/gwot/matrix"
)

// UpdateSquareLoss recomputes a barycenter cost matrix from S aligned
// spaces under the square loss:
//
//	C = (Σ_s lambdas[s] · Ts[s]ᵀ · Cs[s] · Ts[s]) ⊘ (p ⊗ p)
//
// where ⊘ is element-wise division by the outer product of the
// barycenter marginal p with itself.
//
// Contracts:
//   - lambdas, Ts and Cs have equal length S ≥ 1; lambdas sum to 1.
//   - Ts[s] is ns_s×N with N == len(p); Cs[s] is ns_s×ns_s.
//   - No entry of p may be zero: the division is unguarded and a zero
//     marginal mass produces ±Inf/NaN that propagate into the result.
//     This is the caller's responsibility, matching the update's
//     mathematical setting (barycenter masses are strictly positive).
//
// Complexity: O(Σ_s ns_s·N·(ns_s+N)).
func UpdateSquareLoss(p, lambdas []float64, Ts, Cs []*matrix.Dense) (*matrix.Dense, error) {
	return updateNumerator(p, lambdas, Ts, Cs)
}

// UpdateKLLoss is the KL-loss variant of UpdateSquareLoss: the same
// weighted numerator divided by p ⊗ p, exponentiated element-wise.
// The zero-mass caveat of UpdateSquareLoss applies unchanged.
func UpdateKLLoss(p, lambdas []float64, Ts, Cs []*matrix.Dense) (*matrix.Dense, error) {
	quot, err := updateNumerator(p, lambdas, Ts, Cs)
	if err != nil {
		return nil, err
	}

	return matrix.Apply(quot, math.Exp)
}

// updateNumerator computes (Σ_s lambdas[s]·Tsᵀ·Cs·Ts) ⊘ (p ⊗ p),
// the quotient shared by both update variants.
func updateNumerator(p, lambdas []float64, Ts, Cs []*matrix.Dense) (*matrix.Dense, error) {
	n := len(p)
	if n == 0 {
		return nil, matrix.ErrDimensionMismatch
	}
	if len(lambdas) == 0 || len(lambdas) != len(Ts) || len(Ts) != len(Cs) {
		return nil, matrix.ErrDimensionMismatch
	}

	sum, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for s := range Ts {
		if err = matrix.ValidateNotNil(Ts[s]); err != nil {
			return nil, err
		}
		if err = matrix.ValidateNotNil(Cs[s]); err != nil {
			return nil, err
		}
		if err = matrix.ValidateSquare(Cs[s]); err != nil {
			return nil, err
		}
		if Ts[s].Cols() != n || Ts[s].Rows() != Cs[s].Rows() {
			return nil, matrix.ErrDimensionMismatch
		}

		// lambdas[s] · Ts[s]ᵀ · Cs[s] · Ts[s]
		tT, terr := matrix.Transpose(Ts[s])
		if terr != nil {
			return nil, terr
		}
		tc, terr := matrix.Mul(tT, Cs[s])
		if terr != nil {
			return nil, terr
		}
		tct, terr := matrix.Mul(tc, Ts[s])
		if terr != nil {
			return nil, terr
		}
		weighted, terr := matrix.Scale(tct, lambdas[s])
		if terr != nil {
			return nil, terr
		}
		sum, terr = matrix.Add(sum, weighted)
		if terr != nil {
			return nil, terr
		}
	}

	ppt, err := matrix.Outer(p, p)
	if err != nil {
		return nil, err
	}

	return matrix.Div(sum, ppt)
}
