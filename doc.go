// Package gwot aligns two finite measured similarity structures by
// entropic Gromov-Wasserstein optimal transport.
//
// 🚀 What is gwot?
//
//	A small, deterministic, pure-Go library for computing transport
//	plans between metric spaces described by pairwise cost matrices:
//		• gw/       — the fixed-point solvers (square/KL loss, three
//		              linear-cost blend policies) and barycenter updates
//		• sinkhorn/ — the entropic optimal-transport subproblem solver
//		• matrix/   — the dense float64 kernel everything runs on
//
// ✨ Why choose gwot?
//
//   - Strict sentinels – every misuse surfaces as a typed error, no panics
//   - Deterministic – fixed loop orders, no randomness, no goroutines
//   - Pluggable – swap the entropic subproblem solver via gw.Subproblem
//   - Pure Go – no cgo, no hidden deps
//
// Start with gw.DefaultOptions() and gw.Solve, or see the runnable
// programs under examples/.
package gwot
