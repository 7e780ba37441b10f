package integrator

import (
	"fmt"
	"math"
)

// Base carries the state every concrete integrator embeds: the read-only
// Options and the run-private Outcome. It supplies the lifecycle helpers
// (ClearResults, Validate, Converged, UpdateStatus) so concrete algorithms
// only implement the iteration itself.
//
// Base is not reentrant: all mutation is confined to the embedding
// instance, and one Integrate call owns the Outcome for its duration.
type Base struct {
	opts Options
	out  Outcome
}

// NewBase returns a Base for the given options. Options are validated
// lazily by Validate at the start of each run, matching the contract that
// configuration errors surface before any integrand evaluation.
func NewBase(opts Options) Base {
	return Base{opts: opts}
}

// Options returns the configuration (a copy; runs never mutate it).
func (b *Base) Options() Options { return b.opts }

// Outcome returns a snapshot of the current outcome state.
func (b *Base) Outcome() Outcome { return b.out }

// ClearResults resets the outcome to the not-started state:
// zero counters, NaN estimate and standard error, Status NotStarted.
// Every Integrate implementation calls this first.
func (b *Base) ClearResults() {
	b.out = Outcome{
		Estimate:      math.NaN(),
		StandardError: math.NaN(),
		Status:        NotStarted,
	}
}

// Validate checks the configuration invariants. Every Integrate
// implementation calls this second, before touching the integrand.
func (b *Base) Validate() error { return b.opts.Validate() }

// Converged applies the shared convergence test to two successive
// estimates. It returns false when either value is NaN or infinite;
// otherwise true iff BOTH |cur−prev| < AbsoluteTolerance AND
// |cur−prev|/|cur| < RelativeTolerance hold. The joint criterion is
// deliberately stricter than the usual either/or.
func (b *Base) Converged(prev, cur float64) bool {
	if math.IsNaN(prev) || math.IsInf(prev, 0) ||
		math.IsNaN(cur) || math.IsInf(cur, 0) {
		return false
	}

	diff := math.Abs(cur - prev)
	if diff >= b.opts.AbsoluteTolerance {
		return false
	}

	return diff/math.Abs(cur) < b.opts.RelativeTolerance
}

// UpdateStatus records the terminal status for this run and applies the
// failure policy: a Failure with ReportFailure enabled propagates cause to
// the caller, any other combination returns nil. Budget-exhaustion
// statuses never propagate as errors.
func (b *Base) UpdateStatus(status Status, cause error) error {
	b.out.Status = status
	if status == Failure && b.opts.ReportFailure {
		return cause
	}

	return nil
}

// SetEstimate stores the running estimate and its standard-error measure.
func (b *Base) SetEstimate(estimate, stderr float64) {
	b.out.Estimate = estimate
	b.out.StandardError = stderr
}

// CountIteration advances the iteration counter by one.
func (b *Base) CountIteration() { b.out.Iterations++ }

// CountEvaluations advances the evaluation counter by n.
func (b *Base) CountEvaluations(n int) { b.out.Evaluations += n }

// Evaluations returns the evaluations performed so far in this run.
func (b *Base) Evaluations() int { return b.out.Evaluations }

// Iterations returns the iterations performed so far in this run.
func (b *Base) Iterations() int { return b.out.Iterations }

// EvaluationsExhausted reports whether the evaluation budget is spent.
func (b *Base) EvaluationsExhausted() bool {
	return b.out.Evaluations >= b.opts.MaxEvaluations
}

// FailConfig marks the run Failed and returns err unchanged. Configuration
// errors propagate unconditionally, ignoring ReportFailure, while still
// leaving a terminal status behind.
func (b *Base) FailConfig(err error) error {
	b.out.Status = Failure

	return err
}

// Recover converts a panic raised inside the integrand into a Failure
// outcome. Use in Integrate implementations as:
//
//	defer q.RecoverInto(&err)
//
// The wrapped ErrIntegrandPanic propagates only under ReportFailure; the
// partial estimate stays in place either way.
func (b *Base) RecoverInto(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	*errp = b.UpdateStatus(Failure, fmt.Errorf("%w: %v", ErrIntegrandPanic, r))
}
