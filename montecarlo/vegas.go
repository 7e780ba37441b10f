// SPDX-License-Identifier: MIT

// Package montecarlo - VEGAS adaptive importance sampling.
//
// Each iteration sweeps a lattice of stratification cells, drawing npg
// samples per cell through the grid's piecewise-linear inverse CDF so
// that sampling density tracks the previous iterations' variance
// histogram. Iteration estimates are combined by inverse-variance
// weighting, with a chi-squared diagnostic flagging inconsistency
// between iterations.

package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/randsrc"
)

// Warmth selects how much prior state a repeated Integrate call inherits.
type Warmth int

const (
	// ColdStart resets the grid and the running statistics.
	ColdStart Warmth = iota

	// KeepGrid keeps the adapted grid but resets the running statistics.
	KeepGrid

	// KeepAll continues the weighted estimate across calls.
	KeepAll
)

// String implements fmt.Stringer.
func (w Warmth) String() string {
	switch w {
	case ColdStart:
		return "ColdStart"
	case KeepGrid:
		return "KeepGrid"
	case KeepAll:
		return "KeepAll"
	default:
		return "Unknown"
	}
}

// Vegas tuning defaults and limits.
const (
	// MaxDimension caps the dimension count; stratification cells grow
	// exponentially with it.
	MaxDimension = 20

	// DefaultMaxBins (NDMX) is the per-axis grid resolution ceiling.
	DefaultMaxBins = 50

	// DefaultAlpha (ALPH) damps grid adaptation between iterations.
	DefaultAlpha = 1.5

	// DefaultEvaluationsPerIteration is the nominal sample count per
	// iteration; the stratification geometry rounds it up as needed.
	DefaultEvaluationsPerIteration = 10000

	vegasTiny = 1e-30
)

// VegasOptions configures a Vegas integrator.
//
// Fields:
//   - EvaluationsPerIteration — nominal samples per iteration (≥ 2).
//   - MaxBins    — per-axis grid resolution ceiling, ≥ 1.
//   - Alpha      — grid adaptation damping, > 0.
//   - Stratified — combine stratification with importance sampling;
//     when false the run is pure importance sampling.
//   - Warmth     — state inherited by repeated Integrate calls.
//   - Bins       — optional per-axis pre-trained bins seeding the grid;
//     empty means a uniform start.
//   - Seed/UseSobol/Source — deviate source selection, as in PlainOptions.
//   - Integrator — iteration and evaluation budgets plus the tolerance
//     the running standard error is held against.
type VegasOptions struct {
	EvaluationsPerIteration int
	MaxBins                 int
	Alpha                   float64
	Stratified              bool
	Warmth                  Warmth
	Bins                    [][]StratificationBin
	Seed                    int64
	UseSobol                bool
	Source                  randsrc.Source
	Integrator              integrator.Options
}

// DefaultVegasOptions returns the documented defaults with a 10-iteration
// schedule.
func DefaultVegasOptions() VegasOptions {
	iopts := integrator.DefaultOptions()
	iopts.MinIterations = 2
	iopts.MaxIterations = 10

	return VegasOptions{
		EvaluationsPerIteration: DefaultEvaluationsPerIteration,
		MaxBins:                 DefaultMaxBins,
		Alpha:                   DefaultAlpha,
		Stratified:              true,
		Warmth:                  ColdStart,
		Integrator:              iopts,
	}
}

// Vegas integrates a weighted integrand over a D-dimensional box with
// adaptive importance sampling. Not reentrant.
type Vegas struct {
	integrator.Base

	f      integrator.WeightedFuncND
	bounds integrator.Bounds
	src    randsrc.Source
	opts   VegasOptions
	grid   *adaptiveGrid

	// fromUnit maps a unit-cube coordinate on one axis back to the
	// caller's domain, for GridBoundaries.
	fromUnit func(axis int, e float64) float64

	// seed state re-applied on every cold start
	seedEdges   [][]float64
	seedWeights [][]float64

	// running statistics surviving KeepAll warmth
	si, swgt, schi float64
	itCum          int
	chi2           float64

	x, ux []float64
	dx    []float64
	ia    []int
	kg    []int
}

// NewVegas constructs a VEGAS integrator over [min[i], max[i]]^D. The
// integrand receives the point and its sampling weight. A nil opts
// selects DefaultVegasOptions.
//
// Errors: integrator.ErrNilFunction, integrator.ErrDimension,
// integrator.ErrBoundsLength, integrator.ErrBoundsOrder,
// ErrDimensionLimit, ErrBadSampling, ErrBinOrder, ErrBinSeed,
// randsrc.ErrSobolDimension.
func NewVegas(f integrator.WeightedFuncND, min, max []float64, opts *VegasOptions) (*Vegas, error) {
	if f == nil {
		return nil, integrator.ErrNilFunction
	}
	bounds, err := integrator.NewBounds(min, max)
	if err != nil {
		return nil, err
	}

	v, err := newVegas(f, bounds, opts)
	if err != nil {
		return nil, err
	}
	v.fromUnit = func(axis int, e float64) float64 {
		return v.bounds.Lower(axis) + e*v.bounds.Width(axis)
	}
	if err := v.applyBins(binEdge); err != nil {
		return nil, err
	}

	return v, nil
}

// NewVegasProbability constructs a VEGAS integrator for the
// normal-weighted integral ∫ f(x)·φ(x) dx over [min[i], max[i]]^D, with
// φ the independent standard normal density per axis. The bounds are
// pushed through the normal CDF and sampling runs on the probability
// scale, so the Jacobian of the transform cancels the density exactly.
// Seed bins, when given, are stated in the caller's x-space and mapped
// through the same transform.
func NewVegasProbability(f integrator.FuncND, min, max []float64, opts *VegasOptions) (*Vegas, error) {
	if f == nil {
		return nil, integrator.ErrNilFunction
	}
	xb, err := integrator.NewBounds(min, max)
	if err != nil {
		return nil, err
	}

	norm := distuv.UnitNormal
	dim := xb.Dim()
	plo := make([]float64, dim)
	phi := make([]float64, dim)
	for j := 0; j < dim; j++ {
		plo[j] = norm.CDF(xb.Lower(j))
		phi[j] = norm.CDF(xb.Upper(j))
	}
	pb, err := integrator.NewBounds(plo, phi)
	if err != nil {
		// degenerate probability range, e.g. both bounds far in a tail
		return nil, err
	}

	wrapped := func(p []float64, _ float64) float64 {
		// reuse of p as the quantile buffer is safe: the sampler
		// rebuilds it before every evaluation
		for j := 0; j < dim; j++ {
			p[j] = norm.Quantile(p[j])
		}

		return f(p)
	}

	v, err := newVegas(wrapped, pb, opts)
	if err != nil {
		return nil, err
	}
	v.fromUnit = func(axis int, e float64) float64 {
		return norm.Quantile(v.bounds.Lower(axis) + e*v.bounds.Width(axis))
	}
	if err := v.applyBins(func(axis int, b StratificationBin) float64 {
		return norm.CDF(b.Upper())
	}); err != nil {
		return nil, err
	}

	return v, nil
}

// binEdge is the identity edge extractor for domain-space bins.
func binEdge(_ int, b StratificationBin) float64 { return b.Upper() }

func newVegas(f integrator.WeightedFuncND, bounds integrator.Bounds, opts *VegasOptions) (*Vegas, error) {
	dim := bounds.Dim()
	if dim > MaxDimension {
		return nil, ErrDimensionLimit
	}

	o := DefaultVegasOptions()
	if opts != nil {
		o = *opts
	}
	if o.EvaluationsPerIteration < 2 || o.MaxBins < 1 || !(o.Alpha > 0) {
		return nil, ErrBadSampling
	}

	src, err := pickSource(o.Source, o.UseSobol, o.Seed, dim)
	if err != nil {
		return nil, err
	}

	return &Vegas{
		Base:   integrator.NewBase(o.Integrator),
		f:      f,
		bounds: bounds,
		src:    src,
		opts:   o,
		grid:   newAdaptiveGrid(dim, o.MaxBins),
		x:      make([]float64, dim),
		ux:     make([]float64, dim),
		dx:     make([]float64, dim),
		ia:     make([]int, dim),
		kg:     make([]int, dim),
	}, nil
}

// applyBins normalizes the optional seed bins into unit-cube edges via
// edge (which maps a bin's upper boundary into the working space) and
// installs them on the grid.
func (v *Vegas) applyBins(edge func(axis int, b StratificationBin) float64) error {
	if len(v.opts.Bins) == 0 {
		return nil
	}
	dim := v.bounds.Dim()
	if len(v.opts.Bins) != dim {
		return ErrBinSeed
	}

	v.seedEdges = make([][]float64, dim)
	v.seedWeights = make([][]float64, dim)
	for j := 0; j < dim; j++ {
		bins := v.opts.Bins[j]
		edges := make([]float64, len(bins))
		weights := make([]float64, len(bins))
		lo, w := v.bounds.Lower(j), v.bounds.Width(j)
		for i, b := range bins {
			edges[i] = (edge(j, b) - lo) / w
			weights[i] = b.Weight()
		}
		v.seedEdges[j] = edges
		v.seedWeights[j] = weights
	}

	return v.reseed()
}

// reseed restores the grid to its construction state: seeded bins when
// given, a uniform single bin otherwise.
func (v *Vegas) reseed() error {
	v.grid.resetUniform()
	if v.seedEdges == nil {
		return nil
	}
	for j := range v.seedEdges {
		if err := v.grid.seedAxis(j, v.seedEdges[j], v.seedWeights[j], v.opts.MaxBins); err != nil {
			return err
		}
	}
	v.grid.nBins = v.opts.MaxBins

	return nil
}

// ChiSquared returns the per-degree-of-freedom consistency diagnostic of
// the last run; values far above 1 mean the iteration estimates disagree
// beyond their reported errors.
func (v *Vegas) ChiSquared() float64 { return v.chi2 }

// GridBoundaries returns the adapted bin boundaries on one axis, mapped
// back to the caller's domain. Narrow gaps mark where sampling
// concentrated.
func (v *Vegas) GridBoundaries(axis int) []float64 {
	out := v.grid.boundaries(axis)
	for i, e := range out {
		out[i] = v.fromUnit(axis, e)
	}

	return out
}

// Integrate runs up to MaxIterations adaptive sweeps, stopping early
// once the running standard error meets the combined tolerance after
// MinIterations.
func (v *Vegas) Integrate() (integrator.Outcome, error) {
	v.ClearResults()
	if err := v.Validate(); err != nil {
		err = v.FailConfig(err)

		return v.Outcome(), err
	}

	err := v.run()

	return v.Outcome(), err
}

func (v *Vegas) run() (err error) {
	defer v.RecoverInto(&err)

	switch v.opts.Warmth {
	case ColdStart:
		if err := v.reseed(); err != nil {
			return v.FailConfig(err)
		}
		v.si, v.swgt, v.schi, v.itCum = 0, 0, 0, 0
	case KeepGrid:
		v.si, v.swgt, v.schi, v.itCum = 0, 0, 0, 0
	case KeepAll:
		// keep grid and statistics
	}

	opts := v.Options()
	dim := v.bounds.Dim()

	// Sampling geometry: balance importance bins against stratification
	// cells. When cells would outnumber bins (mds < 0) the grid
	// resolution is folded into the cell lattice and refinement switches
	// to per-cell variance.
	nd := v.opts.MaxBins
	ng := 1
	mds := 0
	if v.opts.Stratified {
		mds = 1
		ng = int(math.Pow(float64(v.opts.EvaluationsPerIteration)/2+0.25, 1/float64(dim)))
		if ng < 1 {
			ng = 1
		}
		if 2*ng-nd >= 0 {
			mds = -1
			npg := ng/nd + 1
			nd = ng / npg
			ng = npg * nd
		}
	}

	cells := 1
	for j := 0; j < dim; j++ {
		cells *= ng
	}
	npg := v.opts.EvaluationsPerIteration / cells
	if npg < 2 {
		npg = 2
	}
	calls := float64(npg) * float64(cells)

	dxg := 1 / float64(ng)
	dv2g := 1.0
	for j := 0; j < dim; j++ {
		dv2g *= dxg
	}
	dv2g = (calls * dv2g) * (calls * dv2g) / float64(npg) / float64(npg) / (float64(npg) - 1)

	xjac := 1 / calls
	for j := 0; j < dim; j++ {
		v.dx[j] = v.bounds.Width(j)
		xjac *= v.dx[j]
	}
	dxg *= float64(nd) // grid units per cell
	v.grid.resize(nd)

	for it := 0; it < opts.MaxIterations; it++ {
		ti, tsi := 0.0, 0.0
		for j := 0; j < dim; j++ {
			v.kg[j] = 0
		}
		v.grid.clearWeights()

		for {
			fb, f2b := 0.0, 0.0
			for s := 0; s < npg; s++ {
				wgt := xjac
				v.src.NextVector(v.ux)
				for j := 0; j < dim; j++ {
					pos := (float64(v.kg[j]) + v.ux[j]) * dxg
					xu, w, bin := v.grid.mapAxis(j, pos)
					v.x[j] = v.bounds.Lower(j) + xu*v.dx[j]
					v.ia[j] = bin
					wgt *= w
				}

				f := wgt * v.f(v.x, wgt)
				v.CountEvaluations(1)
				f2 := f * f
				fb += f
				f2b += f2
				if mds >= 0 {
					for j := 0; j < dim; j++ {
						v.grid.accumulate(j, v.ia[j], f2)
					}
				}
			}

			f2b = math.Sqrt(f2b * float64(npg))
			f2b = (f2b - fb) * (f2b + fb)
			if f2b <= 0 {
				f2b = vegasTiny
			}
			ti += fb
			tsi += f2b
			if mds < 0 {
				for j := 0; j < dim; j++ {
					v.grid.accumulate(j, v.ia[j], f2b)
				}
			}

			done := true
			for j := dim - 1; j >= 0; j-- {
				v.kg[j]++
				if v.kg[j] < ng {
					done = false

					break
				}
				v.kg[j] = 0
			}
			if done {
				break
			}
		}

		tsi *= dv2g
		wgt := 1 / tsi
		v.si += wgt * ti
		v.schi += wgt * ti * ti
		v.swgt += wgt
		estimate := v.si / v.swgt
		v.itCum++
		v.chi2 = (v.schi - v.si*estimate) / (float64(v.itCum) - 0.9999)
		if v.chi2 < 0 {
			v.chi2 = 0
		}
		se := math.Sqrt(1 / v.swgt)

		v.SetEstimate(estimate, se)
		v.CountIteration()
		v.grid.refine(v.opts.Alpha)

		if v.Iterations() >= opts.MinIterations &&
			se <= opts.AbsoluteTolerance+opts.RelativeTolerance*math.Abs(estimate) {
			return v.UpdateStatus(integrator.Success, nil)
		}
		if v.EvaluationsExhausted() {
			return v.UpdateStatus(integrator.MaxEvaluationsReached, nil)
		}
	}

	return v.UpdateStatus(integrator.MaxIterationsReached, nil)
}
