// SPDX-License-Identifier: MIT

// Package quadrature - recursive adaptive Simpson subdivision.
//
// The classic estimate-split-compare scheme: Simpson over the whole
// interval versus the sum of Simpson over both halves. The discrepancy,
// divided by 15, estimates the local error of the finer pair; intervals
// whose estimate is already inside their tolerance share are accepted
// with that correction applied, everything else is bisected.
//
// Termination guards (depth, machine-epsilon width, evaluation budget)
// are checked BEFORE the tolerance so a pathological integrand cannot
// recurse forever.

package quadrature

import (
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
)

// ErrorNorm selects how AdaptiveSimpson accumulates accepted local errors
// into the reported StandardError.
type ErrorNorm int

const (
	// ErrorAbsolute sums |δ| over accepted leaves (default).
	ErrorAbsolute ErrorNorm = iota

	// ErrorSquared sums δ²/(b−a) over accepted leaves, the stricter
	// variance-flavored variant.
	ErrorSquared
)

// String implements fmt.Stringer.
func (n ErrorNorm) String() string {
	switch n {
	case ErrorAbsolute:
		return "Absolute"
	case ErrorSquared:
		return "Squared"
	default:
		return "Unknown"
	}
}

// Adaptive depth defaults. MaxDepth is a hard stop against call-stack
// exhaustion; MinDepth forces at least that many bisection levels before
// the tolerance may accept an interval.
const (
	DefaultMinDepth = 2
	DefaultMaxDepth = 50
)

// machEps is the float64 machine epsilon; intervals narrower than this
// (relative to their endpoints) cannot be split meaningfully.
const machEps = 2.220446049250313e-16

// AdaptiveOptions configures AdaptiveSimpson.
//
// Fields:
//   - MinDepth/MaxDepth — recursion window, 1 ≤ min ≤ max.
//   - Norm             — ErrorAbsolute or ErrorSquared accumulation.
//   - Integrator       — shared budgets/tolerances. The local acceptance
//     test is |δ| ≤ AbsoluteTolerance + RelativeTolerance·|S_whole|.
type AdaptiveOptions struct {
	MinDepth   int
	MaxDepth   int
	Norm       ErrorNorm
	Integrator integrator.Options
}

// DefaultAdaptiveOptions returns the documented defaults.
func DefaultAdaptiveOptions() AdaptiveOptions {
	return AdaptiveOptions{
		MinDepth:   DefaultMinDepth,
		MaxDepth:   DefaultMaxDepth,
		Norm:       ErrorAbsolute,
		Integrator: integrator.DefaultOptions(),
	}
}

// AdaptiveSimpson integrates f over [a,b] by recursive bisection,
// concentrating evaluations where the local Simpson error is largest.
//
// Not reentrant; one Integrate call at a time per instance.
type AdaptiveSimpson struct {
	integrator.Base

	f        integrator.Func
	a, b     float64
	minDepth int
	maxDepth int
	norm     ErrorNorm

	errSum    float64
	budgetHit bool
}

// NewAdaptiveSimpson constructs an adaptive integrator for f over [a,b].
// A nil opts selects DefaultAdaptiveOptions. Integrand, interval, and the
// depth window are validated here, before any evaluation.
//
// Errors: integrator.ErrNilFunction, integrator.ErrBoundsOrder,
// ErrDepthOrder.
func NewAdaptiveSimpson(f integrator.Func, a, b float64, opts *AdaptiveOptions) (*AdaptiveSimpson, error) {
	if f == nil {
		return nil, integrator.ErrNilFunction
	}
	if _, err := integrator.NewInterval(a, b); err != nil {
		return nil, err
	}

	o := DefaultAdaptiveOptions()
	if opts != nil {
		o = *opts
	}
	if o.MinDepth < 1 || o.MaxDepth < 1 || o.MinDepth > o.MaxDepth {
		return nil, ErrDepthOrder
	}

	return &AdaptiveSimpson{
		Base:     integrator.NewBase(o.Integrator),
		f:        f,
		a:        a,
		b:        b,
		minDepth: o.MinDepth,
		maxDepth: o.MaxDepth,
		norm:     o.Norm,
	}, nil
}

// Integrate runs the subdivision to a terminal status. StandardError in
// the outcome is the accumulated local-error proxy over accepted leaves.
func (q *AdaptiveSimpson) Integrate() (integrator.Outcome, error) {
	q.ClearResults()
	if err := q.Validate(); err != nil {
		err = q.FailConfig(err)

		return q.Outcome(), err
	}

	err := q.run()

	return q.Outcome(), err
}

func (q *AdaptiveSimpson) run() (err error) {
	defer q.RecoverInto(&err)

	q.errSum = 0
	q.budgetHit = false

	fa := q.f(q.a)
	fb := q.f(q.b)
	m := 0.5 * (q.a + q.b)
	fm := q.f(m)
	q.CountEvaluations(3)

	whole := (q.b - q.a) / 6 * (fa + 4*fm + fb)
	est := q.subdivide(q.a, q.b, fa, fm, fb, whole, q.maxDepth)
	q.SetEstimate(est, q.errSum)

	if q.budgetHit {
		return q.UpdateStatus(integrator.MaxEvaluationsReached, nil)
	}

	return q.UpdateStatus(integrator.Success, nil)
}

// subdivide returns the estimate for [a,b] whose whole-interval Simpson
// value is whole, recursing while the local error is out of tolerance.
// depth counts down from MaxDepth; each accepted interval counts one
// iteration in the outcome.
func (q *AdaptiveSimpson) subdivide(a, b, fa, fm, fb, whole float64, depth int) float64 {
	h := b - a
	m := 0.5 * (a + b)

	// Hard stops that precede any further evaluation: depth floor,
	// unsplittable interval, spent budget.
	if depth <= 0 || h <= machEps*(math.Abs(a)+math.Abs(b)) ||
		q.Evaluations()+2 > q.Options().MaxEvaluations {
		if q.Evaluations()+2 > q.Options().MaxEvaluations {
			q.budgetHit = true
		}
		q.CountIteration()

		return whole
	}

	lm := 0.5 * (a + m)
	rm := 0.5 * (m + b)
	flm := q.f(lm)
	frm := q.f(rm)
	q.CountEvaluations(2)

	left := h / 12 * (fa + 4*flm + fm)
	right := h / 12 * (fm + 4*frm + fb)
	delta := (left + right - whole) / 15

	opts := q.Options()
	tol := opts.AbsoluteTolerance + opts.RelativeTolerance*math.Abs(whole)
	deepEnough := depth <= q.maxDepth-q.minDepth
	warmedUp := q.Evaluations() >= opts.MinEvaluations

	if warmedUp && deepEnough && math.Abs(delta) <= tol {
		q.recordError(delta, h)
		q.CountIteration()

		return left + right + delta
	}

	return q.subdivide(a, m, fa, flm, fm, left, depth-1) +
		q.subdivide(m, b, fm, frm, fb, right, depth-1)
}

func (q *AdaptiveSimpson) recordError(delta, h float64) {
	switch q.norm {
	case ErrorSquared:
		q.errSum += delta * delta / h
	default:
		q.errSum += math.Abs(delta)
	}
}
