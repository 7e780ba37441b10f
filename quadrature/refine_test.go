package quadrature_test

import (
	"math"
	"testing"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRefined_SinBothRules: ∫₀^π sin = 2 to 1e-8 with both rules.
func TestRefined_SinBothRules(t *testing.T) {
	for _, rule := range []quadrature.RefineRule{quadrature.TrapezoidRule, quadrature.SimpsonRule} {
		opts := quadrature.DefaultRefinedOptions()
		opts.Rule = rule

		q, err := quadrature.NewRefined(math.Sin, 0, math.Pi, &opts)
		require.NoError(t, err)

		out, err := q.Integrate()
		require.NoError(t, err)
		assert.Equal(t, integrator.Success, out.Status, "rule %d", rule)
		assert.InDelta(t, 2.0, out.Estimate, 1e-7, "rule %d", rule)
		assert.Greater(t, out.Iterations, 2, "convergence cannot fire before level 3")
	}
}

// TestRefined_SimpsonConvergesFaster: the Richardson-combined rule needs
// fewer evaluations than raw trapezoid refinement at equal tolerance.
func TestRefined_SimpsonConvergesFaster(t *testing.T) {
	run := func(rule quadrature.RefineRule) integrator.Outcome {
		opts := quadrature.DefaultRefinedOptions()
		opts.Rule = rule
		q, err := quadrature.NewRefined(math.Sin, 0, math.Pi, &opts)
		require.NoError(t, err)
		out, err := q.Integrate()
		require.NoError(t, err)

		return out
	}

	trap := run(quadrature.TrapezoidRule)
	simp := run(quadrature.SimpsonRule)
	assert.Less(t, simp.Evaluations, trap.Evaluations)
}

// TestRefined_NoReevaluation: total evaluations after L levels must be
// exactly 2^(L−1)+1 — every abscissa sampled once.
func TestRefined_NoReevaluation(t *testing.T) {
	q, err := quadrature.NewRefined(math.Sin, 0, math.Pi, nil)
	require.NoError(t, err)

	out, err := q.Integrate()
	require.NoError(t, err)
	levels := out.Iterations
	assert.Equal(t, 1<<(levels-1)+1, out.Evaluations,
		"midpoint-only refresh must not re-sample old points")
}

// TestRefined_ZeroIntegrand: the exactly-zero escape hatch converges even
// though the relative criterion is undefined at zero.
func TestRefined_ZeroIntegrand(t *testing.T) {
	zero := func(float64) float64 { return 0 }
	q, err := quadrature.NewRefined(zero, 0, 1, nil)
	require.NoError(t, err)

	out, err := q.Integrate()
	require.NoError(t, err)
	assert.Equal(t, integrator.Success, out.Status)
	assert.Zero(t, out.Estimate)
}

// TestRefined_EvaluationBudget: a tiny budget terminates with
// MaxEvaluationsReached and keeps the best estimate so far.
func TestRefined_EvaluationBudget(t *testing.T) {
	opts := quadrature.DefaultRefinedOptions()
	opts.Integrator.MaxEvaluations = 20

	q, err := quadrature.NewRefined(math.Sin, 0, math.Pi, &opts)
	require.NoError(t, err)

	out, err := q.Integrate()
	assert.NoError(t, err, "budget exhaustion is not an error")
	assert.Equal(t, integrator.MaxEvaluationsReached, out.Status)
	assert.LessOrEqual(t, out.Evaluations, 20)
	assert.False(t, math.IsNaN(out.Estimate), "partial estimate survives")
}

// TestRefined_IterationBudget: refinement levels run out before the
// (very tight) tolerance is met.
func TestRefined_IterationBudget(t *testing.T) {
	opts := quadrature.DefaultRefinedOptions()
	opts.Rule = quadrature.TrapezoidRule
	opts.Integrator.MaxIterations = 4
	opts.Integrator.AbsoluteTolerance = 1e-14
	opts.Integrator.RelativeTolerance = 1e-14

	q, err := quadrature.NewRefined(math.Sin, 0, math.Pi, &opts)
	require.NoError(t, err)

	out, err := q.Integrate()
	assert.NoError(t, err)
	assert.Equal(t, integrator.MaxIterationsReached, out.Status)
	assert.Equal(t, 4, out.Iterations)
}

// TestRefined_ConfigErrors: invalid construction and invalid options both
// fail before any evaluation.
func TestRefined_ConfigErrors(t *testing.T) {
	_, err := quadrature.NewRefined(nil, 0, 1, nil)
	assert.ErrorIs(t, err, integrator.ErrNilFunction)

	_, err = quadrature.NewRefined(math.Sin, 1, 0, nil)
	assert.ErrorIs(t, err, integrator.ErrBoundsOrder)

	evals := 0
	counting := func(x float64) float64 { evals++; return x }
	opts := quadrature.DefaultRefinedOptions()
	opts.Integrator.AbsoluteTolerance = 2.0 // out of range

	q, err := quadrature.NewRefined(counting, 0, 1, &opts)
	require.NoError(t, err)
	out, err := q.Integrate()
	assert.ErrorIs(t, err, integrator.ErrToleranceRange, "config errors always propagate")
	assert.Equal(t, integrator.Failure, out.Status)
	assert.Zero(t, evals, "no evaluation before validation")
}

// TestRefined_PanicCapture: an integrand panic becomes a Failure outcome,
// re-raised only under ReportFailure.
func TestRefined_PanicCapture(t *testing.T) {
	bad := func(x float64) float64 { panic("singularity") }

	q, err := quadrature.NewRefined(bad, 0, 1, nil)
	require.NoError(t, err)
	out, err := q.Integrate()
	assert.ErrorIs(t, err, integrator.ErrIntegrandPanic)
	assert.Equal(t, integrator.Failure, out.Status)

	opts := quadrature.DefaultRefinedOptions()
	opts.Integrator.ReportFailure = false
	q, err = quadrature.NewRefined(bad, 0, 1, &opts)
	require.NoError(t, err)
	out, err = q.Integrate()
	assert.NoError(t, err, "silent mode records Failure without an error")
	assert.Equal(t, integrator.Failure, out.Status)
}

// TestRefined_Deterministic: identical configuration replays identically.
func TestRefined_Deterministic(t *testing.T) {
	run := func() integrator.Outcome {
		q, err := quadrature.NewRefined(math.Sin, 0, math.Pi, nil)
		require.NoError(t, err)
		out, err := q.Integrate()
		require.NoError(t, err)

		return out
	}
	assert.Equal(t, run(), run())
}
