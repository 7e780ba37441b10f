// Package quadrature computes one-dimensional definite integrals with
// deterministic rules: one-shot fixed rules, iterated refinement with
// Richardson extrapolation, and recursive adaptive Simpson subdivision.
//
// 🚀 What's inside?
//
//   - Fixed rules — Midpoint, Trapezoid, Simpson and Gauss–Legendre as
//     plain one-shot estimators over [a,b]. Simpson integrates cubics
//     exactly; n-point Gauss–Legendre is exact through degree 2n−1.
//   - Refined — doubles the abscissa count level by level, evaluating only
//     the new midpoints (never re-sampling old ones), and either reports
//     the refined trapezoid sum directly or Richardson-combines two
//     consecutive levels into Simpson's S = (4·T_fine − T_coarse)/3.
//   - AdaptiveSimpson — recursively bisects, estimating each half with
//     Simpson's rule; the correction δ = (S_left + S_right − S_whole)/15
//     bounds the local error, and only intervals whose δ exceeds their
//     share of the tolerance are split further.
//
// ⚙️ Usage:
//
//	q, err := quadrature.NewRefined(math.Sin, 0, math.Pi, nil)
//	if err != nil { ... }
//	out, err := q.Integrate()
//	// out.Estimate ≈ 2, out.Status == integrator.Success
//
// All iterative types run through the integrator contract: results are
// cleared, options validated, then the algorithm iterates until Success,
// budget exhaustion, or Failure. Guards on recursion depth and evaluation
// budget are checked before the tolerance test, so pathological
// integrands still terminate.
//
// Complexity: fixed rules O(n); Refined O(2^levels) evaluations total;
// AdaptiveSimpson O(evaluation budget) worst case, typically far less.
package quadrature
