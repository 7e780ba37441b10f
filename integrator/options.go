package integrator

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMinIterations is the minimum iteration count before the
	// convergence test may terminate a run.
	DefaultMinIterations = 1

	// DefaultMaxIterations bounds refinement levels / Monte Carlo sweeps.
	DefaultMaxIterations = 1000

	// DefaultMinEvaluations is the minimum integrand-evaluation count
	// before the convergence test may terminate a run.
	DefaultMinEvaluations = 1

	// DefaultMaxEvaluations bounds total integrand evaluations per run.
	DefaultMaxEvaluations = 1 << 20

	// DefaultAbsoluteTolerance is the absolute convergence tolerance.
	DefaultAbsoluteTolerance = 1e-8

	// DefaultRelativeTolerance is the relative convergence tolerance.
	DefaultRelativeTolerance = 1e-8

	// DefaultReportFailure re-raises captured integrand faults to callers.
	DefaultReportFailure = true

	// ToleranceFloor / ToleranceCeil bound both tolerances. Anything at or
	// below the floor is numerically meaningless for float64; anything
	// above 1 accepts garbage.
	ToleranceFloor = 1e-15
	ToleranceCeil  = 1.0
)

// Options configures budgets, tolerances and the failure policy shared by
// every integrator. Set once at construction; read-only during a run.
//
// Fields:
//   - MinIterations/MaxIterations — iteration budget, 1 ≤ min ≤ max.
//   - MinEvaluations/MaxEvaluations — integrand-evaluation budget,
//     1 ≤ min ≤ max.
//   - AbsoluteTolerance/RelativeTolerance — joint convergence tolerances,
//     each in [1e-15, 1].
//   - ReportFailure — when true (default), a captured integrand fault is
//     returned from Integrate; when false it is only recorded in Status.
type Options struct {
	MinIterations  int
	MaxIterations  int
	MinEvaluations int
	MaxEvaluations int

	AbsoluteTolerance float64
	RelativeTolerance float64

	ReportFailure bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinIterations:     DefaultMinIterations,
		MaxIterations:     DefaultMaxIterations,
		MinEvaluations:    DefaultMinEvaluations,
		MaxEvaluations:    DefaultMaxEvaluations,
		AbsoluteTolerance: DefaultAbsoluteTolerance,
		RelativeTolerance: DefaultRelativeTolerance,
		ReportFailure:     DefaultReportFailure,
	}
}

// Validate checks the Options invariants.
//
// Errors: ErrBadBudget, ErrBudgetOrder, ErrToleranceRange.
// Complexity: O(1).
func (o Options) Validate() error {
	if o.MinIterations < 1 || o.MaxIterations < 1 ||
		o.MinEvaluations < 1 || o.MaxEvaluations < 1 {
		return ErrBadBudget
	}
	if o.MinIterations > o.MaxIterations || o.MinEvaluations > o.MaxEvaluations {
		return ErrBudgetOrder
	}
	if !toleranceInRange(o.AbsoluteTolerance) || !toleranceInRange(o.RelativeTolerance) {
		return ErrToleranceRange
	}

	return nil
}

func toleranceInRange(tol float64) bool {
	return tol > ToleranceFloor && tol <= ToleranceCeil
}
