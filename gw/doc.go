// Package gw computes entropically regularized Gromov-Wasserstein
// couplings between two weighted metric spaces, optionally blended
// with a linear transport cost.
//
// 🚀 What is it?
//
//	Given two intra-space cost matrices (C1,p) and (C2,q), the solver
//	looks for a coupling T that best preserves pairwise structure:
//
//	  GW = argmin_T Σ_{i,j,k,l} L(C1_{i,k}, C2_{j,l})·T_{i,j}·T_{k,l} − eps·H(T)
//	  s.t. T·1 = p,  Tᵀ·1 = q,  T ≥ 0
//
//	The problem is non-convex and bilinear; it is solved by
//	majorization-minimization: linearize L at the current coupling into
//	a loss tensor, solve the entropic optimal-transport subproblem
//	against that tensor, repeat until the coupling stops moving.
//
// ✨ Key features:
//   - square and KL loss decompositions (Loss enum, exhaustive dispatch)
//   - three linear-cost policies (Blend enum): additive, normalized
//     convex blend with an Alpha==1 linear-only shortcut, and a
//     combined tensor that folds the linear term into the linearization
//   - pluggable entropic subproblem solver (Subproblem), defaulting to
//     the bundled sinkhorn package
//   - explicit Converged flag and an owned error log instead of shared
//     mutable state
//   - barycenter cost-matrix updates (UpdateSquareLoss, UpdateKLLoss)
//     for callers orchestrating multi-space averaging
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gwot/gw"
//
//	opts := gw.DefaultOptions()
//	opts.Epsilon = 0.1
//	opts.Log = true
//
//	res, err := gw.SolveNormalizedBlend(costMat, C1, C2, p, q, opts)
//	if err != nil {
//	  // validation sentinel or subproblem failure
//	}
//	fmt.Println(res.Coupling, res.Converged, res.Err)
//
// Concurrency: every call is a self-contained blocking computation with
// no shared state; concurrent calls are safe as long as callers do not
// alias the input matrices. Inputs are never mutated.
//
// Complexity: O(MaxIter · (ns²·nt + ns·nt²)) plus the subproblem cost
// per iteration; memory O(ns·nt + ns² + nt²).
package gw
