package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edges must stay strictly increasing and end at 1 through resize,
// refine, and seeding; every sampler guarantee rests on that.
func assertMonotoneEdges(t *testing.T, g *adaptiveGrid, axis int) {
	t.Helper()
	prev := 0.0
	for i := 0; i < g.nBins; i++ {
		e := g.xi[g.idx(axis, i)]
		assert.Greater(t, e, prev, "bin %d", i)
		prev = e
	}
	assert.Equal(t, 1.0, g.xi[g.idx(axis, g.nBins-1)])
}

func TestAdaptiveGrid_ResizeKeepsMonotoneEdges(t *testing.T) {
	g := newAdaptiveGrid(2, 50)
	g.resize(50)
	for axis := 0; axis < 2; axis++ {
		assertMonotoneEdges(t, g, axis)
	}

	g.resize(10)
	assert.Equal(t, 10, g.nBins)
	for axis := 0; axis < 2; axis++ {
		assertMonotoneEdges(t, g, axis)
	}
}

func TestAdaptiveGrid_RefineFollowsWeight(t *testing.T) {
	g := newAdaptiveGrid(1, 50)
	g.resize(10)

	// pile all variance into the first bin across several refinements
	for iter := 0; iter < 5; iter++ {
		g.clearWeights()
		g.accumulate(0, 0, 100)
		for i := 1; i < g.nBins; i++ {
			g.accumulate(0, i, 1)
		}
		g.refine(1.5)
		assertMonotoneEdges(t, g, 0)
	}

	first := g.xi[g.idx(0, 0)]
	assert.Less(t, first, 0.1/2, "the heavy bin must shrink below uniform width")
}

func TestAdaptiveGrid_MapAxisCoversUnitInterval(t *testing.T) {
	g := newAdaptiveGrid(1, 50)
	g.resize(50)

	x0, _, bin0 := g.mapAxis(0, 0)
	assert.Equal(t, 0.0, x0)
	assert.Equal(t, 0, bin0)

	xEnd, _, binEnd := g.mapAxis(0, float64(g.nBins)-1e-9)
	assert.InDelta(t, 1.0, xEnd, 1e-6)
	assert.Equal(t, g.nBins-1, binEnd)

	// uniform grid: Jacobian factor is 1 everywhere
	_, w, _ := g.mapAxis(0, 12.34)
	assert.InDelta(t, 1.0, w, 1e-9)
}

func TestAdaptiveGrid_SeedAxisValidation(t *testing.T) {
	g := newAdaptiveGrid(1, 50)

	require.ErrorIs(t, g.seedAxis(0, nil, nil, 10), ErrBinSeed)
	require.ErrorIs(t, g.seedAxis(0, []float64{0.5, 0.4}, []float64{1, 1}, 10), ErrBinSeed)
	require.ErrorIs(t, g.seedAxis(0, []float64{0.5, 1}, []float64{0, 0}, 10), ErrBinSeed)
	require.ErrorIs(t, g.seedAxis(0, []float64{0.5, 0.8}, []float64{1, 1}, 10), ErrBinSeed,
		"edges must span the axis, not stop short of 1")

	require.NoError(t, g.seedAxis(0, []float64{0.5, 1}, []float64{9, 1}, 10))
	require.NoError(t, g.seedAxis(0, []float64{0.5, 1 - 1e-12}, []float64{9, 1}, 10),
		"rounding from the domain mapping stays within tolerance")
	g.nBins = 10
	assertMonotoneEdges(t, g, 0)
}
