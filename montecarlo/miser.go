// SPDX-License-Identifier: MIT

// Package montecarlo - MISER recursive stratified sampling.
//
// Each recursive call spends a preliminary fraction of its point budget
// probing the region, picks the bisection axis whose two halves promise
// the smallest combined variance (the (max−min)^(2/3) surrogate from the
// numerical-recipes literature), then splits the remaining budget between
// the halves in proportion to their variance contribution. Sub-regions
// too poor to bisect fall back to plain Monte Carlo.

package montecarlo

import (
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/randsrc"
)

// MISER tuning defaults.
const (
	// DefaultMinLeafPoints (MNPT) is the smallest sample a leaf may take;
	// bisection requires at least 4× this budget.
	DefaultMinLeafPoints = 15

	// DefaultPreliminaryFraction (PFAC) is the share of a call's budget
	// spent probing for the best bisection axis.
	DefaultPreliminaryFraction = 0.1

	// DefaultDither leaves the bisection midpoints exact. Positive values
	// (< 0.5) jitter them, which helps integrands aligned with the grid.
	DefaultDither = 0.0

	miserTiny = 1e-30
	miserBig  = 1e30
)

// MiserOptions configures a Miser integrator.
//
// Fields:
//   - MinLeafPoints       — per-leaf sample floor, ≥ 1.
//   - PreliminaryFraction — probe share of each call's budget, in (0, 0.5].
//   - Dither              — midpoint jitter, in [0, 0.5).
//   - Seed/UseSobol/Source — deviate source selection, as in PlainOptions.
//   - Integrator          — shared budgets; MaxEvaluations is the total
//     point budget the recursion apportions.
type MiserOptions struct {
	MinLeafPoints       int
	PreliminaryFraction float64
	Dither              float64
	Seed                int64
	UseSobol            bool
	Source              randsrc.Source
	Integrator          integrator.Options
}

// DefaultMiserOptions returns the documented defaults with a 60k-point
// total budget.
func DefaultMiserOptions() MiserOptions {
	iopts := integrator.DefaultOptions()
	iopts.MaxEvaluations = 60000

	return MiserOptions{
		MinLeafPoints:       DefaultMinLeafPoints,
		PreliminaryFraction: DefaultPreliminaryFraction,
		Dither:              DefaultDither,
		Integrator:          iopts,
	}
}

// Miser integrates f over a D-dimensional box by recursive stratified
// sampling. Not reentrant.
type Miser struct {
	integrator.Base

	f      integrator.FuncND
	bounds integrator.Bounds
	src    randsrc.Source
	aux    *randsrc.Pseudo // axis fallback + dither signs, never touches src's stream
	opts   MiserOptions

	pt []float64
}

// NewMiser constructs a MISER integrator over [min[i], max[i]]^D. A nil
// opts selects DefaultMiserOptions. Malformed dimensions, bounds, and
// tuning values fail here, before any evaluation.
//
// Errors: integrator.ErrNilFunction, integrator.ErrDimension,
// integrator.ErrBoundsLength, integrator.ErrBoundsOrder,
// ErrBadLeafPoints, ErrBadFraction, ErrBadDither,
// randsrc.ErrSobolDimension.
func NewMiser(f integrator.FuncND, min, max []float64, opts *MiserOptions) (*Miser, error) {
	if f == nil {
		return nil, integrator.ErrNilFunction
	}
	bounds, err := integrator.NewBounds(min, max)
	if err != nil {
		return nil, err
	}

	o := DefaultMiserOptions()
	if opts != nil {
		o = *opts
	}
	if o.MinLeafPoints < 1 {
		return nil, ErrBadLeafPoints
	}
	if !(o.PreliminaryFraction > 0 && o.PreliminaryFraction <= 0.5) {
		return nil, ErrBadFraction
	}
	if o.Dither < 0 || o.Dither >= 0.5 {
		return nil, ErrBadDither
	}

	src, err := pickSource(o.Source, o.UseSobol, o.Seed, bounds.Dim())
	if err != nil {
		return nil, err
	}

	return &Miser{
		Base:   integrator.NewBase(o.Integrator),
		f:      f,
		bounds: bounds,
		src:    src,
		aux:    randsrc.NewPseudo(o.Seed).Derive(1),
		opts:   o,
		pt:     make([]float64, bounds.Dim()),
	}, nil
}

// Integrate spends the full evaluation budget across the recursive
// partition and reports the combined estimate and standard error.
func (m *Miser) Integrate() (integrator.Outcome, error) {
	m.ClearResults()
	if err := m.Validate(); err != nil {
		err = m.FailConfig(err)

		return m.Outcome(), err
	}

	err := m.run()

	return m.Outcome(), err
}

func (m *Miser) run() (err error) {
	defer m.RecoverInto(&err)

	vol := m.bounds.Volume()
	ave, vr := m.recurse(regionFromBounds(m.bounds), m.Options().MaxEvaluations, m.opts.Dither)
	m.SetEstimate(ave*vol, math.Sqrt(vr)*vol)

	return m.UpdateStatus(integrator.Success, nil)
}

// recurse estimates the mean of f over reg with npt points, returning the
// mean and the variance of that mean. Each level either samples the leaf
// directly or bisects and recurses; the budget floors guarantee progress,
// so the recursion depth is bounded by the budget.
func (m *Miser) recurse(reg region, npt int, dither float64) (ave, vr float64) {
	mnpt := m.opts.MinLeafPoints
	if npt < 4*mnpt {
		return m.sampleLeaf(reg, npt)
	}

	dim := reg.dim()
	npre := int(float64(npt) * m.opts.PreliminaryFraction)
	if npre < mnpt {
		npre = mnpt
	}

	// Dithered midpoints; the jitter sign comes from the auxiliary
	// stream so the primary sequence stays aligned with the samples.
	rmid := make([]float64, dim)
	for j := 0; j < dim; j++ {
		s := dither
		if m.aux.Next() < 0.5 {
			s = -dither
		}
		rmid[j] = (0.5+s)*reg.lower(j) + (0.5-s)*reg.upper(j)
	}

	// Probe: track min/max of f on each side of every axis's midpoint.
	fminl := make([]float64, dim)
	fminr := make([]float64, dim)
	fmaxl := make([]float64, dim)
	fmaxr := make([]float64, dim)
	for j := 0; j < dim; j++ {
		fminl[j], fminr[j] = miserBig, miserBig
		fmaxl[j], fmaxr[j] = -miserBig, -miserBig
	}
	for i := 0; i < npre; i++ {
		m.samplePoint(reg)
		fv := m.f(m.pt)
		m.CountEvaluations(1)
		for j := 0; j < dim; j++ {
			if m.pt[j] <= rmid[j] {
				fminl[j] = math.Min(fminl[j], fv)
				fmaxl[j] = math.Max(fmaxl[j], fv)
			} else {
				fminr[j] = math.Min(fminr[j], fv)
				fmaxr[j] = math.Max(fmaxr[j], fv)
			}
		}
	}

	// Axis choice: minimize the combined variance surrogate; ties keep
	// the earliest axis. If no axis saw variation on both sides, pick one
	// pseudo-randomly.
	jb := -1
	sumBest := miserBig
	siglb, sigrb := 1.0, 1.0
	for j := 0; j < dim; j++ {
		if fmaxl[j] <= fminl[j] || fmaxr[j] <= fminr[j] {
			continue
		}
		sigl := math.Max(miserTiny, math.Pow(fmaxl[j]-fminl[j], 2.0/3.0))
		sigr := math.Max(miserTiny, math.Pow(fmaxr[j]-fminr[j], 2.0/3.0))
		if sigl+sigr < sumBest {
			sumBest = sigl + sigr
			jb = j
			siglb, sigrb = sigl, sigr
		}
	}
	if jb == -1 {
		jb = m.aux.Intn(dim)
	}

	// Apportion the remaining budget by variance contribution, flooring
	// both halves at the leaf minimum.
	fracl := (rmid[jb] - reg.lower(jb)) / reg.width(jb)
	remain := npt - npre
	nptl := mnpt + int(float64(remain-2*mnpt)*fracl*siglb/(fracl*siglb+(1-fracl)*sigrb))
	nptr := remain - nptl

	regl, regr := reg.split(jb, rmid[jb])
	avel, varl := m.recurse(regl, nptl, dither)
	aver, varr := m.recurse(regr, nptr, dither)

	ave = fracl*avel + (1-fracl)*aver
	vr = fracl*fracl*varl + (1-fracl)*(1-fracl)*varr

	return ave, vr
}

// sampleLeaf is the plain Monte Carlo fallback for budgets too small to
// bisect. Variance is floored at a tiny positive constant so upstream
// combination never divides by zero confidence.
func (m *Miser) sampleLeaf(reg region, npt int) (ave, vr float64) {
	if npt < 1 {
		npt = 1
	}

	var sum, sumSq float64
	for i := 0; i < npt; i++ {
		m.samplePoint(reg)
		fv := m.f(m.pt)
		m.CountEvaluations(1)
		sum += fv
		sumSq += fv * fv
	}
	m.CountIteration()

	n := float64(npt)
	ave = sum / n
	vr = math.Max(miserTiny, (sumSq-sum*sum/n)/(n*n))

	return ave, vr
}

// samplePoint fills m.pt with a uniform point inside reg.
func (m *Miser) samplePoint(reg region) {
	dim := reg.dim()
	m.src.NextVector(m.pt)
	for j := 0; j < dim; j++ {
		m.pt[j] = reg.lower(j) + reg.width(j)*m.pt[j]
	}
}
