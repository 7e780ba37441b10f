// SPDX-License-Identifier: MIT

// Package quadrature - iterated refinement (trapezoid / Simpson).
//
// Each refinement level doubles the abscissa count but evaluates ONLY the
// newly introduced midpoints, folding them into the previous trapezoid
// sum. The Simpson variant Richardson-combines two consecutive levels,
// cancelling the leading O(h²) error term.

package quadrature

import (
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"
)

// RefineRule selects how Refined combines refinement levels.
type RefineRule int

const (
	// TrapezoidRule reports the refined trapezoid sum directly.
	TrapezoidRule RefineRule = iota

	// SimpsonRule combines consecutive trapezoid levels as
	// S = (4·T_fine − T_coarse)/3 (Richardson extrapolation).
	SimpsonRule
)

// String implements fmt.Stringer.
func (r RefineRule) String() string {
	switch r {
	case TrapezoidRule:
		return "Trapezoid"
	case SimpsonRule:
		return "Simpson"
	default:
		return "Unknown"
	}
}

// refineMinLevels is the earliest level at which convergence may fire.
// The first two levels regularly agree by accident on oscillatory
// integrands, so the test starts at the third.
const refineMinLevels = 3

// RefinedOptions configures a Refined integrator.
//
// Fields:
//   - Rule       — TrapezoidRule or SimpsonRule (default).
//   - Integrator — shared budgets/tolerances; MaxIterations caps the
//     refinement levels (each level doubles the point count).
type RefinedOptions struct {
	Rule       RefineRule
	Integrator integrator.Options
}

// DefaultRefinedOptions returns the documented defaults.
func DefaultRefinedOptions() RefinedOptions {
	return RefinedOptions{
		Rule:       SimpsonRule,
		Integrator: integrator.DefaultOptions(),
	}
}

// Refined iteratively refines a fixed rule over [a,b] until two
// consecutive combined estimates satisfy the joint convergence test.
//
// Not reentrant; one Integrate call at a time per instance.
type Refined struct {
	integrator.Base

	f    integrator.Func
	a, b float64
	rule RefineRule
}

// NewRefined constructs a refinement integrator for f over [a,b].
// A nil opts selects DefaultRefinedOptions. The integrand and interval
// are validated here, before any evaluation; budget/tolerance options are
// validated at the start of Integrate.
//
// Errors: integrator.ErrNilFunction, integrator.ErrBoundsOrder.
func NewRefined(f integrator.Func, a, b float64, opts *RefinedOptions) (*Refined, error) {
	if f == nil {
		return nil, integrator.ErrNilFunction
	}
	if _, err := integrator.NewInterval(a, b); err != nil {
		return nil, err
	}

	o := DefaultRefinedOptions()
	if opts != nil {
		o = *opts
	}

	return &Refined{
		Base: integrator.NewBase(o.Integrator),
		f:    f,
		a:    a,
		b:    b,
		rule: o.Rule,
	}, nil
}

// Integrate runs refinement levels until Success, budget exhaustion, or
// Failure, leaving a terminal status in the outcome.
func (q *Refined) Integrate() (integrator.Outcome, error) {
	q.ClearResults()
	if err := q.Validate(); err != nil {
		err = q.FailConfig(err)

		return q.Outcome(), err
	}

	err := q.run()

	return q.Outcome(), err
}

func (q *Refined) run() (err error) {
	defer q.RecoverInto(&err)

	opts := q.Options()
	minLevel := opts.MinIterations
	if minLevel < refineMinLevels {
		minLevel = refineMinLevels
	}

	var (
		trap, prevTrap float64
		cur            float64
		prev           = math.NaN()
	)
	for level := 1; level <= opts.MaxIterations; level++ {
		newPoints := 2
		if level > 1 {
			newPoints = 1 << (level - 2)
		}
		if q.Evaluations()+newPoints > opts.MaxEvaluations {
			return q.UpdateStatus(integrator.MaxEvaluationsReached, nil)
		}

		prevTrap = trap
		trap = q.step(level, trap)
		q.CountEvaluations(newPoints)
		q.CountIteration()

		// Simpson's combination needs two levels; level 1 reports the raw
		// trapezoid estimate for both rules.
		if q.rule == SimpsonRule && level > 1 {
			cur = (4*trap - prevTrap) / 3
		} else {
			cur = trap
		}
		q.SetEstimate(cur, math.Abs(cur-prev))

		if level >= minLevel {
			if (cur == 0 && prev == 0) || q.Converged(prev, cur) {
				return q.UpdateStatus(integrator.Success, nil)
			}
		}
		prev = cur
	}

	return q.UpdateStatus(integrator.MaxIterationsReached, nil)
}

// step folds the level's new midpoints into the running trapezoid sum.
// Level 1 is the two-endpoint estimate; level L > 1 adds 2^(L-2) interior
// points, reusing everything sampled earlier.
func (q *Refined) step(level int, prev float64) float64 {
	if level == 1 {
		return 0.5 * (q.b - q.a) * (q.f(q.a) + q.f(q.b))
	}

	points := 1 << (level - 2)
	del := (q.b - q.a) / float64(points)
	x := q.a + 0.5*del

	sum := 0.0
	for j := 0; j < points; j++ {
		sum += q.f(x)
		x += del
	}

	return 0.5 * (prev + (q.b-q.a)*sum/float64(points))
}
