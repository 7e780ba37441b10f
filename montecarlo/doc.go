// Package montecarlo estimates D-dimensional definite integrals by random
// sampling, with two variance-reduction strategies layered on top of the
// plain estimator.
//
// 🚀 What's inside?
//
//   - Plain — uniform sampling over the box with running mean/variance;
//     stops once the estimated standard error satisfies the configured
//     stopping policy. The statistical error shrinks as 1/√N.
//   - Miser — recursive stratified sampling: each call bisects the box
//     along the single axis that minimizes the combined variance of the
//     two halves (judged from a preliminary sub-sample) and apportions
//     the remaining point budget by variance contribution.
//   - Vegas — adaptive importance sampling: a per-dimension grid of
//     cumulative marginals is refined iteration by iteration toward the
//     regions of largest variance, optionally combined with
//     stratification; reports an inverse-variance-weighted running
//     estimate plus a chi-squared consistency diagnostic.
//
// ⚙️ Usage:
//
//	f := func(x []float64) float64 { return x[0] * x[1] }
//	mc, err := montecarlo.NewPlain(f, []float64{0, 0}, []float64{1, 1}, nil)
//	if err != nil { ... }
//	out, err := mc.Integrate()
//	// out.Estimate ≈ 0.25 ± out.StandardError
//
// Sampling runs off a randsrc.Source: a seeded pseudo-random stream by
// default, or the Sobol' low-discrepancy sequence when configured. Fixed
// seed ⇒ bit-identical outcomes.
//
// Instances are not reentrant and not goroutine-safe; Vegas additionally
// keeps its adaptive grid (and optionally its running statistics) across
// Integrate calls, controlled by the Warmth option.
package montecarlo
