// Package numerics is a numerical-integration toolkit for engineering
// risk-analysis workloads: repeatable, controllable-accuracy estimates of
// definite integrals under explicit evaluation and iteration budgets.
//
// 🚀 What is numerics?
//
//	A pure-Go library that brings together:
//		• One-shot quadrature rules: midpoint, trapezoid, Simpson, Gauss–Legendre
//		• Iterated refinement with Richardson extrapolation (1-D)
//		• Recursive adaptive Simpson quadrature (1-D)
//		• Plain Monte Carlo over a D-dimensional box
//		• Recursive stratified sampling (MISER)
//		• Adaptive importance sampling with grid refinement (VEGAS)
//		• Interchangeable uniform sources: seeded pseudo-random and Sobol'
//
// ✨ Why choose numerics?
//
//   - Deterministic – every stochastic method is driven by a seedable source;
//     the same seed reproduces the same estimate, bit for bit
//   - Budgeted – evaluation and iteration caps are first-class, and running
//     out of budget is a terminal status, never a silent loop
//   - Honest errors – configuration mistakes surface as sentinel errors
//     before a single integrand evaluation; integrand failures are captured
//     into the outcome and optionally re-raised
//
// Under the hood, everything is organized under four subpackages:
//
//	integrator/ — shared contract: options, outcome, status, convergence test
//	quadrature/ — fixed rules, iterated refinement, adaptive Simpson (1-D)
//	montecarlo/ — plain Monte Carlo, MISER, VEGAS (D-dimensional)
//	randsrc/    — uniform deviate sources: pseudo-random and Sobol' sequence
//
// Quick taste:
//
//	q, _ := quadrature.NewRefined(math.Sin, 0, math.Pi, nil)
//	out, _ := q.Integrate()
//	fmt.Println(out.Estimate) // ≈ 2.0
//
// Integrator instances are single-threaded and not reentrant: one call to
// Integrate at a time per instance. Concurrent runs want separate instances,
// each with its own source.
//
// Dive into the per-package doc.go files and examples/ for walkthroughs.
package numerics
