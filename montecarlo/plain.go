// SPDX-License-Identifier: MIT

// Package montecarlo - plain (crude) Monte Carlo estimator.

package montecarlo

import (
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/randsrc"
	"gonum.org/v1/gonum/stat/distuv"
)

// StopPolicy selects between the two historical Monte Carlo stopping
// rules. Both are kept because call sites disagree about which they need;
// they are NOT equivalent.
type StopPolicy int

const (
	// StopQuantile (default) accepts once the standard error, scaled by
	// the standard-normal quantile of the configured confidence level
	// (1.96 at 95%), passes the combined check
	// z·SE ≤ AbsoluteTolerance + RelativeTolerance·|estimate|.
	StopQuantile StopPolicy = iota

	// StopRelativeError accepts on the plain relative check
	// |SE/estimate| < RelativeTolerance.
	StopRelativeError
)

// String implements fmt.Stringer.
func (s StopPolicy) String() string {
	switch s {
	case StopQuantile:
		return "Quantile"
	case StopRelativeError:
		return "RelativeError"
	default:
		return "Unknown"
	}
}

const (
	// DefaultConfidence is the confidence level behind StopQuantile.
	DefaultConfidence = 0.95

	// varianceFloor clamps the variance-of-the-mean against small
	// negative values produced by floating-point cancellation.
	varianceFloor = 1e-30
)

// PlainOptions configures a Plain integrator.
//
// Fields:
//   - Policy     — StopQuantile (default) or StopRelativeError.
//   - Confidence — confidence level for StopQuantile, in (0,1).
//   - Seed       — pseudo-random seed (0 ⇒ fixed default stream).
//   - UseSobol   — sample with the Sobol' sequence instead (≤ 6 dims).
//   - Source     — explicit deviate source; overrides Seed/UseSobol.
//   - Integrator — shared budgets/tolerances. Iterations and evaluations
//     coincide for this algorithm (one evaluation per draw).
type PlainOptions struct {
	Policy     StopPolicy
	Confidence float64
	Seed       int64
	UseSobol   bool
	Source     randsrc.Source
	Integrator integrator.Options
}

// DefaultPlainOptions returns the documented defaults. MinIterations is
// raised to 100 so the variance estimate has something to stand on
// before the stopping rule may fire.
func DefaultPlainOptions() PlainOptions {
	iopts := integrator.DefaultOptions()
	iopts.MinIterations = 100
	iopts.MaxIterations = iopts.MaxEvaluations

	return PlainOptions{
		Policy:     StopQuantile,
		Confidence: DefaultConfidence,
		Integrator: iopts,
	}
}

// Plain integrates f over a D-dimensional box by uniform sampling with a
// running mean and variance. Not reentrant.
type Plain struct {
	integrator.Base

	f      integrator.FuncND
	bounds integrator.Bounds
	src    randsrc.Source
	policy StopPolicy
	z      float64

	pt []float64
}

// NewPlain constructs a plain Monte Carlo integrator over the box
// [min[i], max[i]]^D. A nil opts selects DefaultPlainOptions. Domain and
// source configuration are validated here, before any evaluation.
//
// Errors: integrator.ErrNilFunction, integrator.ErrDimension,
// integrator.ErrBoundsLength, integrator.ErrBoundsOrder,
// randsrc.ErrSobolDimension.
func NewPlain(f integrator.FuncND, min, max []float64, opts *PlainOptions) (*Plain, error) {
	if f == nil {
		return nil, integrator.ErrNilFunction
	}
	bounds, err := integrator.NewBounds(min, max)
	if err != nil {
		return nil, err
	}

	o := DefaultPlainOptions()
	if opts != nil {
		o = *opts
	}
	src, err := pickSource(o.Source, o.UseSobol, o.Seed, bounds.Dim())
	if err != nil {
		return nil, err
	}

	conf := o.Confidence
	if !(conf > 0 && conf < 1) {
		conf = DefaultConfidence
	}

	return &Plain{
		Base:   integrator.NewBase(o.Integrator),
		f:      f,
		bounds: bounds,
		src:    src,
		policy: o.Policy,
		z:      distuv.UnitNormal.Quantile(0.5 + conf/2),
		pt:     make([]float64, bounds.Dim()),
	}, nil
}

// Integrate samples until the stopping policy is satisfied or a budget
// runs out, leaving a terminal status in the outcome.
func (p *Plain) Integrate() (integrator.Outcome, error) {
	p.ClearResults()
	if err := p.Validate(); err != nil {
		err = p.FailConfig(err)

		return p.Outcome(), err
	}

	err := p.run()

	return p.Outcome(), err
}

func (p *Plain) run() (err error) {
	defer p.RecoverInto(&err)

	opts := p.Options()
	vol := p.bounds.Volume()
	dim := p.bounds.Dim()

	var sum, sumSq float64
	for n := 1; ; n++ {
		if p.Evaluations() >= opts.MaxEvaluations {
			return p.UpdateStatus(integrator.MaxEvaluationsReached, nil)
		}
		if n > opts.MaxIterations {
			return p.UpdateStatus(integrator.MaxIterationsReached, nil)
		}

		p.src.NextVector(p.pt)
		for j := 0; j < dim; j++ {
			p.pt[j] = p.bounds.Lower(j) + p.bounds.Width(j)*p.pt[j]
		}
		fv := p.f(p.pt)
		p.CountEvaluations(1)
		p.CountIteration()

		sum += fv
		sumSq += fv * fv

		mean := sum / float64(n)
		varMean := (sumSq/float64(n) - mean*mean) / float64(n)
		if varMean < varianceFloor {
			varMean = varianceFloor
		}

		estimate := mean * vol
		se := math.Sqrt(varMean) * vol
		p.SetEstimate(estimate, se)

		if n >= opts.MinIterations && p.Evaluations() >= opts.MinEvaluations &&
			p.accepted(estimate, se) {
			return p.UpdateStatus(integrator.Success, nil)
		}
	}
}

// accepted applies the configured stopping rule to the current state.
func (p *Plain) accepted(estimate, se float64) bool {
	opts := p.Options()
	switch p.policy {
	case StopRelativeError:
		if estimate == 0 {
			return false
		}

		return math.Abs(se/estimate) < opts.RelativeTolerance
	default:
		return p.z*se <= opts.AbsoluteTolerance+opts.RelativeTolerance*math.Abs(estimate)
	}
}

// pickSource resolves the source configuration shared by the Monte Carlo
// integrators: explicit Source wins, then Sobol', then seeded pseudo.
func pickSource(src randsrc.Source, useSobol bool, seed int64, dim int) (randsrc.Source, error) {
	if src != nil {
		return src, nil
	}
	if useSobol {
		return randsrc.NewSobol(dim)
	}

	return randsrc.NewPseudo(seed), nil
}
