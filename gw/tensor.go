package gw

import (
	"math"

	"github.com/katalvlaran/gwot/matrix"
)

// logFloor is added inside every logarithm of the KL decomposition so
// zero entries in a cost matrix never raise a domain fault.
const logFloor = 1e-15

// TensorSquareLoss linearizes the square-loss Gromov-Wasserstein
// objective at the coupling T.
//
// With L(a,b)=½(a−b)² split as f1(a)=a²/2, f2(b)=b²/2, h1(a)=a,
// h2(b)=b, the f1/f2 terms are constant under the contraction used for
// coupling updates, so only the cross term survives:
//
//	tens = −(C1 · T) · C2ᵀ
//
// The tensor is then shifted by its global minimum so every entry is
// ≥ 0. The entropic subproblem expects non-negative costs; the shift is
// a numerical-stability device, not an identity of the loss, and it
// preserves the relative ordering of entries.
//
// Contracts: C1 is ns×ns, C2 is nt×nt, T is ns×nt.
// Complexity: O(ns²·nt + ns·nt²).
func TensorSquareLoss(C1, C2, T *matrix.Dense) (*matrix.Dense, error) {
	if err := validateTensorInputs(C1, C2, T); err != nil {
		return nil, err
	}
	c1t, err := matrix.Mul(C1, T)
	if err != nil {
		return nil, err
	}
	cross, err := matrix.MulABt(c1t, C2)
	if err != nil {
		return nil, err
	}
	tens, err := matrix.Scale(cross, -1)
	if err != nil {
		return nil, err
	}

	return shiftByMin(tens)
}

// TensorSquareLossCombined builds the square-loss tensor with the
// linear cost folded in:
//
//	nonlinear = (C1 · T) · C2ᵀ
//	linear    = (costMat ⊙ T) · max(nonlinear)
//	tens      = −nonlinear − alpha·linear
//
// followed by the same global min-shift as TensorSquareLoss. Scaling
// the linear term by the nonlinear maximum keeps the two terms on a
// comparable magnitude regardless of the input units.
//
// Contracts: C1 is ns×ns, C2 is nt×nt, T and costMat are ns×nt.
// Complexity: O(ns²·nt + ns·nt²).
func TensorSquareLossCombined(C1, C2, T, costMat *matrix.Dense, alpha float64) (*matrix.Dense, error) {
	if err := validateTensorInputs(C1, C2, T); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(costMat); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSameShape(costMat, T); err != nil {
		return nil, err
	}
	c1t, err := matrix.Mul(C1, T)
	if err != nil {
		return nil, err
	}
	nonlinear, err := matrix.MulABt(c1t, C2)
	if err != nil {
		return nil, err
	}
	nlMax, err := matrix.Max(nonlinear)
	if err != nil {
		return nil, err
	}
	hadamard, err := matrix.Hadamard(costMat, T)
	if err != nil {
		return nil, err
	}
	linear, err := matrix.Scale(hadamard, nlMax)
	if err != nil {
		return nil, err
	}
	// tens = −nonlinear − alpha·linear
	scaledLin, err := matrix.Scale(linear, alpha)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(nonlinear, scaledLin)
	if err != nil {
		return nil, err
	}
	tens, err := matrix.Scale(sum, -1)
	if err != nil {
		return nil, err
	}

	return shiftByMin(tens)
}

// TensorKLLoss linearizes the KL-loss objective at the coupling T.
//
// With L(a,b)=a·log(a/b)−a+b split as f1(a)=a·log(a)−a, f2(b)=b,
// h1(a)=a, h2(b)=log(b), only the cross term matters here:
//
//	tens = −(C1 · T) · log(C2 + 1e-15)ᵀ
//
// then shifted by the global minimum. The additive floor keeps the
// logarithm defined when C2 contains exact zeros.
//
// Contracts: C1 is ns×ns, C2 is nt×nt, T is ns×nt.
// Complexity: O(ns²·nt + ns·nt²).
func TensorKLLoss(C1, C2, T *matrix.Dense) (*matrix.Dense, error) {
	if err := validateTensorInputs(C1, C2, T); err != nil {
		return nil, err
	}
	logC2, err := matrix.Apply(C2, func(v float64) float64 { return math.Log(v + logFloor) })
	if err != nil {
		return nil, err
	}
	c1t, err := matrix.Mul(C1, T)
	if err != nil {
		return nil, err
	}
	cross, err := matrix.MulABt(c1t, logC2)
	if err != nil {
		return nil, err
	}
	tens, err := matrix.Scale(cross, -1)
	if err != nil {
		return nil, err
	}

	return shiftByMin(tens)
}

// lossTensor dispatches the tensor construction for the additive and
// normalized policies. The switch is exhaustive over the Loss enum;
// anything else is rejected rather than silently skipped.
func lossTensor(loss Loss, C1, C2, T *matrix.Dense) (*matrix.Dense, error) {
	switch loss {
	case SquareLoss:
		return TensorSquareLoss(C1, C2, T)
	case KLLoss:
		return TensorKLLoss(C1, C2, T)
	default:
		return nil, ErrUnsupportedLoss
	}
}

// shiftByMin subtracts the global minimum from every entry, making the
// tensor non-negative with at least one exact zero. Idempotent on
// already-shifted tensors. A per-row or per-column shift would distort
// the relative ordering the entropic solver relies on; the global
// minimum is required.
func shiftByMin(tens *matrix.Dense) (*matrix.Dense, error) {
	lo, err := matrix.Min(tens)
	if err != nil {
		return nil, err
	}

	return matrix.Apply(tens, func(v float64) float64 { return v - lo })
}

// validateTensorInputs checks the common shape contract of the builders.
func validateTensorInputs(C1, C2, T *matrix.Dense) error {
	if err := matrix.ValidateNotNil(C1); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(C2); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(T); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(C1); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(C2); err != nil {
		return err
	}
	if C1.Rows() != T.Rows() || C2.Rows() != T.Cols() {
		return matrix.ErrDimensionMismatch
	}

	return nil
}
