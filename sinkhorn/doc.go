// Package sinkhorn solves the entropically regularized optimal
// transport subproblem by Sinkhorn-Knopp matrix scaling.
//
// 🚀 What is it?
//
//	Given a cost matrix M (ns×nt), marginals p (ns) and q (nt), and a
//	regularization strength eps > 0, Solve returns the coupling
//
//	  T = argmin_T  ⟨T, M⟩ − eps·H(T)
//	  s.t. T·1 = p,  Tᵀ·1 = q,  T ≥ 0
//
//	where H is the entropy. Adding the entropy makes the problem
//	strictly convex and solvable by alternating row/column scalings of
//	the Gibbs kernel K = exp(−M/eps).
//
// ✨ Key properties:
//   - output has the shape of M, is non-negative, and its row/column
//     sums converge to p/q as the scaling iterates
//   - zero entries in M are fine (they only make kernel entries 1)
//   - a vanishing scaling denominator or a NaN/Inf scaling vector stops
//     the iteration and returns the last numerically sound coupling
//
// ⚙️ Usage:
//
//	opts := sinkhorn.DefaultOptions()
//	T, err := sinkhorn.Solve(p, q, cost, 0.1, &opts)
//
// Complexity: O(MaxIter · ns · nt) time, O(ns·nt) memory.
package sinkhorn
