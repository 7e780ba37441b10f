// SPDX-License-Identifier: MIT

package montecarlo

import "math"

const (
	gridTiny = 1e-30

	// seedEdgeTol absorbs the rounding of mapping domain-space bin
	// edges onto the unit cube; the final seeded edge must still land
	// on 1 within it.
	seedEdgeTol = 1e-9
)

// adaptiveGrid is the per-axis importance map a Vegas run adapts: for
// every axis, an increasing sequence of bin upper edges in (0, 1] (the
// cumulative marginal) and an accumulated squared-weight histogram. Both
// live in flat row-major buffers sized once at construction, so a run
// never allocates while sampling.
type adaptiveGrid struct {
	dim     int
	maxBins int
	nBins   int

	xi []float64 // dim × maxBins bin upper edges, last edge of each axis = 1
	d  []float64 // dim × maxBins accumulated squared weight

	dt  []float64 // per-axis histogram totals, refine scratch
	r   []float64 // per-bin importance, rebin scratch
	xin []float64 // new edges, rebin scratch
}

// newAdaptiveGrid allocates a grid with a single uniform bin per axis.
func newAdaptiveGrid(dim, maxBins int) *adaptiveGrid {
	g := &adaptiveGrid{
		dim:     dim,
		maxBins: maxBins,
		xi:      make([]float64, dim*maxBins),
		d:       make([]float64, dim*maxBins),
		dt:      make([]float64, dim),
		r:       make([]float64, maxBins),
		xin:     make([]float64, maxBins),
	}
	g.resetUniform()

	return g
}

func (g *adaptiveGrid) idx(axis, bin int) int { return axis*g.maxBins + bin }

// resetUniform collapses every axis back to one bin spanning [0, 1].
func (g *adaptiveGrid) resetUniform() {
	g.nBins = 1
	for j := 0; j < g.dim; j++ {
		g.xi[g.idx(j, 0)] = 1
	}
}

// resize rebins every axis to n bins, preserving the shape of the
// current cumulative marginals.
func (g *adaptiveGrid) resize(n int) {
	if n == g.nBins {
		return
	}
	old := g.nBins
	limit := old
	if n > limit {
		limit = n
	}
	for j := 0; j < g.dim; j++ {
		for i := 0; i < limit; i++ {
			g.r[i] = 1
		}
		g.rebinAxis(float64(old)/float64(n), old, n, j)
	}
	g.nBins = n
}

// clearWeights zeroes the accumulated histograms before an iteration.
func (g *adaptiveGrid) clearWeights() {
	for j := 0; j < g.dim; j++ {
		for i := 0; i < g.nBins; i++ {
			g.d[g.idx(j, i)] = 0
		}
	}
}

// accumulate adds w to bin's histogram entry on axis.
func (g *adaptiveGrid) accumulate(axis, bin int, w float64) {
	g.d[g.idx(axis, bin)] += w
}

// mapAxis maps a grid position pos ∈ [0, nBins) to a point in the unit
// interval via the axis's piecewise-linear inverse CDF. It returns the
// unit-cube coordinate, the Jacobian factor (bin width × bin count), and
// the bin index for histogram accumulation.
func (g *adaptiveGrid) mapAxis(axis int, pos float64) (x, wgt float64, bin int) {
	bin = int(pos)
	if bin < 0 {
		bin = 0
	}
	if bin > g.nBins-1 {
		bin = g.nBins - 1
	}

	var xo float64
	if bin > 0 {
		xo = g.xi[g.idx(axis, bin-1)]
	}
	dx := g.xi[g.idx(axis, bin)] - xo

	return xo + (pos-float64(bin))*dx, dx * float64(g.nBins), bin
}

// refine smooths each axis's histogram (3-point moving average, 2-point
// at the edges), converts it to a damped bin-importance target
// r_i = ((1 − d_i/D)/(ln D − ln d_i))^alpha, and rebins the axis so each
// new bin carries equal importance. A single-bin grid has nothing to
// adapt and is left untouched.
func (g *adaptiveGrid) refine(alpha float64) {
	nd := g.nBins
	if nd < 2 {
		return
	}

	for j := 0; j < g.dim; j++ {
		xo := g.d[g.idx(j, 0)]
		xn := g.d[g.idx(j, 1)]
		g.d[g.idx(j, 0)] = (xo + xn) / 2
		g.dt[j] = g.d[g.idx(j, 0)]
		for i := 1; i < nd-1; i++ {
			rc := xo + xn
			xo = xn
			xn = g.d[g.idx(j, i+1)]
			g.d[g.idx(j, i)] = (rc + xn) / 3
			g.dt[j] += g.d[g.idx(j, i)]
		}
		g.d[g.idx(j, nd-1)] = (xo + xn) / 2
		g.dt[j] += g.d[g.idx(j, nd-1)]
	}

	for j := 0; j < g.dim; j++ {
		if g.dt[j] <= 0 {
			// nothing accumulated on this axis, leave it as is
			continue
		}
		rc := 0.0
		for i := 0; i < nd; i++ {
			di := g.d[g.idx(j, i)]
			if di < gridTiny {
				di = gridTiny
			}
			g.r[i] = math.Pow((1-di/g.dt[j])/(math.Log(g.dt[j])-math.Log(di)), alpha)
			rc += g.r[i]
		}
		g.rebinAxis(rc/float64(nd), nd, nd, j)
	}
}

// rebinAxis redistributes the axis's cumulative marginal from oldCount
// bins into newCount bins so that each new bin accumulates rc of the
// importance weights in g.r, interpolating linearly inside a source bin
// to place each new boundary.
func (g *adaptiveGrid) rebinAxis(rc float64, oldCount, newCount, axis int) {
	k := -1
	var dr, xo, xn float64
	for i := 0; i < newCount-1; i++ {
		for dr < rc && k+1 < oldCount {
			k++
			dr += g.r[k]
		}
		xo = 0
		if k > 0 {
			xo = g.xi[g.idx(axis, k-1)]
		}
		xn = g.xi[g.idx(axis, k)]
		dr -= rc
		g.xin[i] = xn - (xn-xo)*dr/g.r[k]
	}
	for i := 0; i < newCount-1; i++ {
		g.xi[g.idx(axis, i)] = g.xin[i]
	}
	g.xi[g.idx(axis, newCount-1)] = 1
}

// seedAxis installs pre-trained bin edges and weights on one axis, then
// redistributes them into target equal-weight bins. Edges are unit-cube
// positions and must be strictly increasing and end at 1; weights must
// be non-negative with a positive total.
func (g *adaptiveGrid) seedAxis(axis int, edges, weights []float64, target int) error {
	m := len(edges)
	if m == 0 || m > g.maxBins || len(weights) != m || target < 1 || target > g.maxBins {
		return ErrBinSeed
	}

	prev, total := 0.0, 0.0
	for i := 0; i < m; i++ {
		if !(edges[i] > prev) || edges[i] > 1+seedEdgeTol {
			return ErrBinSeed
		}
		prev = edges[i]
		if weights[i] < 0 || math.IsNaN(weights[i]) {
			return ErrBinSeed
		}
		total += weights[i]
	}
	if math.Abs(edges[m-1]-1) > seedEdgeTol || !(total > 0) {
		return ErrBinSeed
	}

	for i := 0; i < m; i++ {
		g.xi[g.idx(axis, i)] = edges[i]
		g.r[i] = weights[i]
	}
	g.xi[g.idx(axis, m-1)] = 1
	g.rebinAxis(total/float64(target), m, target, axis)

	return nil
}

// boundaries returns the axis's nBins+1 unit-cube edges, 0 first.
func (g *adaptiveGrid) boundaries(axis int) []float64 {
	out := make([]float64, g.nBins+1)
	for i := 0; i < g.nBins; i++ {
		out[i+1] = g.xi[g.idx(axis, i)]
	}

	return out
}
