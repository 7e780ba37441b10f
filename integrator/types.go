package integrator

// Func is a one-dimensional integrand.
type Func func(x float64) float64

// FuncND is a multidimensional integrand over a point x of fixed length D.
// The implementation must not retain x: the slice is reused between calls.
type FuncND func(x []float64) float64

// WeightedFuncND is a multidimensional integrand that also receives the
// sampling weight of the current point. VEGAS-style integrators use it so
// callers can accumulate weighted secondary quantities during a run.
type WeightedFuncND func(x []float64, weight float64) float64

// Status is the terminal state of an integration run.
//
// Transitions: NotStarted → exactly one terminal value per Integrate call;
// ClearResults is the only way back to NotStarted.
type Status int

const (
	// NotStarted means Integrate has not run (or results were cleared).
	NotStarted Status = iota

	// Success means the convergence criterion was satisfied in budget.
	Success

	// MaxIterationsReached means the iteration budget ran out first.
	// The outcome still carries the best estimate obtained so far.
	MaxIterationsReached

	// MaxEvaluationsReached means the function-evaluation budget ran out
	// first. The outcome still carries the best estimate obtained so far.
	MaxEvaluationsReached

	// Failure means the integrand (or the algorithm arithmetic) faulted.
	Failure
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Success:
		return "Success"
	case MaxIterationsReached:
		return "MaxIterationsReached"
	case MaxEvaluationsReached:
		return "MaxEvaluationsReached"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Terminal reports whether s is one of the post-run states.
func (s Status) Terminal() bool { return s != NotStarted }

// Outcome is the result vocabulary shared by all integrators: the running
// (then final) estimate, its standard-error measure where the algorithm
// provides one, the work counters, and the terminal status.
//
// An Outcome value returned by Integrate is a snapshot; the live copy is
// owned exclusively by the integrator instance that produced it.
type Outcome struct {
	// Estimate is the current integral estimate (NaN before the first
	// update of a run).
	Estimate float64

	// StandardError is the algorithm's uncertainty measure. Deterministic
	// rules report the last refinement difference (or an accumulated local
	// error proxy); Monte Carlo methods report the statistical standard
	// error. NaN when the algorithm has not produced one yet.
	StandardError float64

	// Iterations counts completed algorithm iterations (refinement levels,
	// Monte Carlo sweeps, ...).
	Iterations int

	// Evaluations counts integrand evaluations.
	Evaluations int

	// Status is NotStarted during a run and terminal afterwards.
	Status Status
}
