package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/montecarlo"
)

// gaussBump2D is a normalized 2-D Gaussian; its integral over a box a
// few sigma wide is ≈ 1.
func gaussBump2D(sigma float64) integrator.WeightedFuncND {
	norm := 1 / (2 * math.Pi * sigma * sigma)

	return func(x []float64, _ float64) float64 {
		return norm * math.Exp(-(x[0]*x[0]+x[1]*x[1])/(2*sigma*sigma))
	}
}

// TestVegas_GaussianBump2D: the adaptive run lands within a few standard
// errors of the normalization constant with a sane chi-squared.
func TestVegas_GaussianBump2D(t *testing.T) {
	v, err := montecarlo.NewVegas(gaussBump2D(0.5), []float64{-5, -5}, []float64{5, 5}, nil)
	require.NoError(t, err)

	out, err := v.Integrate()
	require.NoError(t, err)
	assert.Equal(t, integrator.MaxIterationsReached, out.Status,
		"default tolerances are far below Monte Carlo reach")
	assert.InDelta(t, 1.0, out.Estimate, 0.05)
	assert.Less(t, math.Abs(out.Estimate-1), 5*out.StandardError+1e-3)
	assert.GreaterOrEqual(t, v.ChiSquared(), 0.0)
	assert.Less(t, v.ChiSquared(), 5.0)
}

// TestVegas_GridConcentratesNearPeak: after adaptation the bins covering
// a sharp peak are much narrower than the average bin.
func TestVegas_GridConcentratesNearPeak(t *testing.T) {
	peak := func(x []float64, _ float64) float64 {
		return math.Exp(-x[0] * x[0] / 0.002)
	}

	v, err := montecarlo.NewVegas(peak, []float64{-1}, []float64{1}, nil)
	require.NoError(t, err)
	_, err = v.Integrate()
	require.NoError(t, err)

	edges := v.GridBoundaries(0)
	require.Greater(t, len(edges), 2)

	nBins := len(edges) - 1
	avgWidth := (edges[nBins] - edges[0]) / float64(nBins)
	peakWidth := math.Inf(1)
	for i := 0; i < nBins; i++ {
		if edges[i] <= 0 && 0 < edges[i+1] {
			peakWidth = edges[i+1] - edges[i]
		}
	}
	assert.Less(t, peakWidth, avgWidth/2, "sampling density must pile up at the peak")
}

// TestVegas_WarmGridImproves: a second run inheriting the adapted grid
// reports a smaller standard error than the cold first run.
func TestVegas_WarmGridImproves(t *testing.T) {
	opts := montecarlo.DefaultVegasOptions()
	opts.Warmth = montecarlo.KeepGrid
	opts.Integrator.MaxIterations = 3

	v, err := montecarlo.NewVegas(gaussBump2D(0.1), []float64{-5, -5}, []float64{5, 5}, &opts)
	require.NoError(t, err)

	cold, err := v.Integrate()
	require.NoError(t, err)
	warm, err := v.Integrate()
	require.NoError(t, err)

	assert.Less(t, warm.StandardError, cold.StandardError)
}

// TestVegas_KeepAllContinues: warm continuation keeps accumulating the
// weighted estimate instead of starting over.
func TestVegas_KeepAllContinues(t *testing.T) {
	opts := montecarlo.DefaultVegasOptions()
	opts.Warmth = montecarlo.KeepAll
	opts.Integrator.MaxIterations = 3

	v, err := montecarlo.NewVegas(gaussBump2D(0.5), []float64{-5, -5}, []float64{5, 5}, &opts)
	require.NoError(t, err)

	first, err := v.Integrate()
	require.NoError(t, err)
	second, err := v.Integrate()
	require.NoError(t, err)

	assert.Less(t, second.StandardError, first.StandardError)
	assert.InDelta(t, 1.0, second.Estimate, 0.05)
}

// TestVegas_ProbabilityDomain: ∫ f·φ over [-2,2]^2 with f ≡ 1 equals the
// square of the central normal mass.
func TestVegas_ProbabilityDomain(t *testing.T) {
	one := func([]float64) float64 { return 1 }

	v, err := montecarlo.NewVegasProbability(one, []float64{-2, -2}, []float64{2, 2}, nil)
	require.NoError(t, err)

	out, err := v.Integrate()
	require.NoError(t, err)

	mass := distuv.UnitNormal.CDF(2) - distuv.UnitNormal.CDF(-2)
	assert.InDelta(t, mass*mass, out.Estimate, 0.01)
}

// TestVegas_SeededBins: pre-trained bins shift the initial grid toward
// the heavy interval before any sampling happens.
func TestVegas_SeededBins(t *testing.T) {
	heavy, err := montecarlo.NewStratificationBin(0, 0.5, 9)
	require.NoError(t, err)
	light, err := montecarlo.NewStratificationBin(0.5, 1, 1)
	require.NoError(t, err)

	opts := montecarlo.DefaultVegasOptions()
	opts.Bins = [][]montecarlo.StratificationBin{{heavy, light}}

	v, err := montecarlo.NewVegas(
		func([]float64, float64) float64 { return 1 },
		[]float64{0}, []float64{1}, &opts)
	require.NoError(t, err)

	edges := v.GridBoundaries(0)
	inHeavy := 0
	for _, e := range edges[1:] {
		if e <= 0.5+1e-9 {
			inHeavy++
		}
	}
	assert.Greater(t, inHeavy, (len(edges)-1)*2/3,
		"most bins should sit inside the heavy interval")
}

// TestVegas_BinValidation: malformed bins and bin sets are rejected.
func TestVegas_BinValidation(t *testing.T) {
	_, err := montecarlo.NewStratificationBin(0.5, 0.2, 1)
	assert.ErrorIs(t, err, montecarlo.ErrBinOrder)

	_, err = montecarlo.NewStratificationBin(0, 1, -1)
	assert.ErrorIs(t, err, montecarlo.ErrBinWeight)

	bin, err := montecarlo.NewStratificationBin(0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, bin.Lower())
	assert.Equal(t, 1.0, bin.Upper())
	assert.Equal(t, 1.0, bin.Weight())
	assert.Equal(t, 1.0, bin.Width())

	// axis count must match the dimension
	opts := montecarlo.DefaultVegasOptions()
	opts.Bins = [][]montecarlo.StratificationBin{{bin}}
	_, err = montecarlo.NewVegas(
		func([]float64, float64) float64 { return 1 },
		[]float64{0, 0}, []float64{1, 1}, &opts)
	assert.ErrorIs(t, err, montecarlo.ErrBinSeed)

	// bins must cover the axis up to the upper bound
	short, err := montecarlo.NewStratificationBin(0, 0.8, 1)
	require.NoError(t, err)
	opts = montecarlo.DefaultVegasOptions()
	opts.Bins = [][]montecarlo.StratificationBin{{short}}
	_, err = montecarlo.NewVegas(
		func([]float64, float64) float64 { return 1 },
		[]float64{0}, []float64{1}, &opts)
	assert.ErrorIs(t, err, montecarlo.ErrBinSeed)
}

// TestVegas_DimensionCap: construction above MaxDimension fails.
func TestVegas_DimensionCap(t *testing.T) {
	dim := montecarlo.MaxDimension + 1
	min := make([]float64, dim)
	max := make([]float64, dim)
	for i := range max {
		max[i] = 1
	}

	_, err := montecarlo.NewVegas(
		func([]float64, float64) float64 { return 1 }, min, max, nil)
	assert.ErrorIs(t, err, montecarlo.ErrDimensionLimit)
}

// TestVegas_SamplingValidation: degenerate sampling geometry fails at
// construction.
func TestVegas_SamplingValidation(t *testing.T) {
	f := func([]float64, float64) float64 { return 1 }

	opts := montecarlo.DefaultVegasOptions()
	opts.EvaluationsPerIteration = 1
	_, err := montecarlo.NewVegas(f, []float64{0}, []float64{1}, &opts)
	assert.ErrorIs(t, err, montecarlo.ErrBadSampling)

	opts = montecarlo.DefaultVegasOptions()
	opts.MaxBins = 0
	_, err = montecarlo.NewVegas(f, []float64{0}, []float64{1}, &opts)
	assert.ErrorIs(t, err, montecarlo.ErrBadSampling)

	opts = montecarlo.DefaultVegasOptions()
	opts.Alpha = 0
	_, err = montecarlo.NewVegas(f, []float64{0}, []float64{1}, &opts)
	assert.ErrorIs(t, err, montecarlo.ErrBadSampling)
}

// TestVegas_BadBudgetFailsBeforeSampling: an inverted budget is caught
// by Validate, the run is marked Failure, and no points are drawn.
func TestVegas_BadBudgetFailsBeforeSampling(t *testing.T) {
	evals := 0
	f := func([]float64, float64) float64 { evals++; return 1 }

	opts := montecarlo.DefaultVegasOptions()
	opts.Integrator.MinIterations = 10
	opts.Integrator.MaxIterations = 5

	v, err := montecarlo.NewVegas(f, []float64{0}, []float64{1}, &opts)
	require.NoError(t, err)

	out, err := v.Integrate()
	assert.ErrorIs(t, err, integrator.ErrBudgetOrder)
	assert.Equal(t, integrator.Failure, out.Status)
	assert.Zero(t, out.Evaluations)
	assert.Zero(t, evals)
}

// TestVegas_EarlyStopOnTolerance: loose tolerances end the schedule with
// Success before MaxIterations.
func TestVegas_EarlyStopOnTolerance(t *testing.T) {
	opts := montecarlo.DefaultVegasOptions()
	opts.Integrator.MaxIterations = 20
	opts.Integrator.RelativeTolerance = 0.5

	v, err := montecarlo.NewVegas(gaussBump2D(0.5), []float64{-5, -5}, []float64{5, 5}, &opts)
	require.NoError(t, err)

	out, err := v.Integrate()
	require.NoError(t, err)
	assert.Equal(t, integrator.Success, out.Status)
	assert.Less(t, out.Iterations, 20)
}

// TestVegas_SeedDeterminism: equal seeds reproduce the whole schedule.
func TestVegas_SeedDeterminism(t *testing.T) {
	run := func(seed int64) integrator.Outcome {
		opts := montecarlo.DefaultVegasOptions()
		opts.Seed = seed
		opts.Integrator.MaxIterations = 3
		v, err := montecarlo.NewVegas(gaussBump2D(0.5), []float64{-5, -5}, []float64{5, 5}, &opts)
		require.NoError(t, err)
		out, err := v.Integrate()
		require.NoError(t, err)

		return out
	}

	assert.Equal(t, run(21), run(21))
	assert.NotEqual(t, run(21).Estimate, run(22).Estimate)
}
