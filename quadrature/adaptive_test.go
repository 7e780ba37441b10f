package quadrature_test

import (
	"math"
	"testing"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdaptiveSimpson_Pi: ∫₀¹ 4/(1+x²) = π at RelativeTolerance 1e-10,
// with evaluations well below the budget.
func TestAdaptiveSimpson_Pi(t *testing.T) {
	f := func(x float64) float64 { return 4 / (1 + x*x) }

	opts := quadrature.DefaultAdaptiveOptions()
	opts.Integrator.AbsoluteTolerance = 1e-12
	opts.Integrator.RelativeTolerance = 1e-10

	q, err := quadrature.NewAdaptiveSimpson(f, 0, 1, &opts)
	require.NoError(t, err)

	out, err := q.Integrate()
	require.NoError(t, err)
	assert.Equal(t, integrator.Success, out.Status)
	assert.InDelta(t, math.Pi, out.Estimate, 1e-9)
	assert.Less(t, out.Evaluations, opts.Integrator.MaxEvaluations/10,
		"adaptive subdivision should use a fraction of the budget")
}

// TestAdaptiveSimpson_ExactOnCubics: δ is identically ~0 for cubics, so
// the very first admissible leaves accept and the result is analytic.
func TestAdaptiveSimpson_ExactOnCubics(t *testing.T) {
	q, err := quadrature.NewAdaptiveSimpson(cubic, -1, 3, nil)
	require.NoError(t, err)

	out, err := q.Integrate()
	require.NoError(t, err)
	assert.InDelta(t, cubicIntegral(-1, 3), out.Estimate, 1e-9)
}

// TestAdaptiveSimpson_TighterToleranceMoreWork: tightening the relative
// tolerance by 10× never reduces the evaluation count, and the
// accumulated local error stays within the tightened share.
func TestAdaptiveSimpson_TighterToleranceMoreWork(t *testing.T) {
	peaked := func(x float64) float64 { return math.Exp(-100 * (x - 0.3) * (x - 0.3)) }

	run := func(rtol float64) integrator.Outcome {
		opts := quadrature.DefaultAdaptiveOptions()
		opts.Integrator.AbsoluteTolerance = 1e-14
		opts.Integrator.RelativeTolerance = rtol
		q, err := quadrature.NewAdaptiveSimpson(peaked, 0, 1, &opts)
		require.NoError(t, err)
		out, err := q.Integrate()
		require.NoError(t, err)

		return out
	}

	loose := run(1e-5)
	tight := run(1e-6)
	assert.GreaterOrEqual(t, tight.Evaluations, loose.Evaluations)
	assert.Less(t, tight.StandardError, 1e-6*math.Abs(tight.Estimate)+1e-10)
}

// TestAdaptiveSimpson_ErrorNorms: both historical accumulation variants
// produce a finite non-negative error proxy.
func TestAdaptiveSimpson_ErrorNorms(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(3 * x) }

	for _, norm := range []quadrature.ErrorNorm{quadrature.ErrorAbsolute, quadrature.ErrorSquared} {
		opts := quadrature.DefaultAdaptiveOptions()
		opts.Norm = norm
		q, err := quadrature.NewAdaptiveSimpson(f, 0, 2, &opts)
		require.NoError(t, err)

		out, err := q.Integrate()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, out.StandardError, 0.0, "norm %d", norm)
		assert.False(t, math.IsInf(out.StandardError, 0), "norm %d", norm)
	}
}

// TestAdaptiveSimpson_BudgetStopsPathological: an integrand engineered to
// defeat the tolerance still terminates via the evaluation budget.
func TestAdaptiveSimpson_BudgetStopsPathological(t *testing.T) {
	// High-frequency oscillation keeps local errors large at every scale
	// the budget can reach.
	nasty := func(x float64) float64 { return math.Sin(1e6 * x) }

	opts := quadrature.DefaultAdaptiveOptions()
	opts.Integrator.AbsoluteTolerance = 1e-14
	opts.Integrator.RelativeTolerance = 1e-14
	opts.Integrator.MaxEvaluations = 2000

	q, err := quadrature.NewAdaptiveSimpson(nasty, 0, 1, &opts)
	require.NoError(t, err)

	out, err := q.Integrate()
	assert.NoError(t, err, "budget exhaustion is not an error")
	assert.Equal(t, integrator.MaxEvaluationsReached, out.Status)
	assert.LessOrEqual(t, out.Evaluations, 2000)
	assert.False(t, math.IsNaN(out.Estimate))
}

// TestAdaptiveSimpson_DepthWindowValidation: nonsensical depth windows
// fail at construction.
func TestAdaptiveSimpson_DepthWindowValidation(t *testing.T) {
	opts := quadrature.DefaultAdaptiveOptions()
	opts.MinDepth = 10
	opts.MaxDepth = 5
	_, err := quadrature.NewAdaptiveSimpson(math.Sin, 0, 1, &opts)
	assert.ErrorIs(t, err, quadrature.ErrDepthOrder)

	opts = quadrature.DefaultAdaptiveOptions()
	opts.MaxDepth = 0
	_, err = quadrature.NewAdaptiveSimpson(math.Sin, 0, 1, &opts)
	assert.ErrorIs(t, err, quadrature.ErrDepthOrder)
}

// TestAdaptiveSimpson_ConfigFailureStatus: a tolerance rejected by
// Validate leaves the outcome marked Failure with no work done.
func TestAdaptiveSimpson_ConfigFailureStatus(t *testing.T) {
	opts := quadrature.DefaultAdaptiveOptions()
	opts.Integrator.AbsoluteTolerance = 2.0
	q, err := quadrature.NewAdaptiveSimpson(math.Sin, 0, 1, &opts)
	require.NoError(t, err)

	out, err := q.Integrate()
	assert.ErrorIs(t, err, integrator.ErrToleranceRange)
	assert.Equal(t, integrator.Failure, out.Status)
	assert.Zero(t, out.Evaluations)
}

// TestAdaptiveSimpson_Idempotent: deterministic sampling means identical
// runs produce identical outcomes.
func TestAdaptiveSimpson_Idempotent(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) * math.Cos(4*x) }
	q, err := quadrature.NewAdaptiveSimpson(f, 0, 2, nil)
	require.NoError(t, err)

	first, err := q.Integrate()
	require.NoError(t, err)
	second, err := q.Integrate()
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeat runs replay exactly")
}
