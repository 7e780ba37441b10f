// Package integrator: sentinel error set.
// All validation failures across the integration packages surface as these
// sentinels (or package-local ones wrapping the same conditions) and are
// matched with errors.Is. Algorithms never panic on user input.

package integrator

import "errors"

var (
	// ErrNilFunction is returned when a nil integrand is supplied.
	ErrNilFunction = errors.New("integrator: integrand is nil")

	// ErrDimension is returned when the requested dimension count is < 1.
	ErrDimension = errors.New("integrator: dimension must be >= 1")

	// ErrBoundsLength indicates mismatched lower/upper bound array lengths.
	ErrBoundsLength = errors.New("integrator: bounds length mismatch")

	// ErrBoundsOrder indicates upper[i] <= lower[i] for some dimension.
	ErrBoundsOrder = errors.New("integrator: upper bound must exceed lower bound")

	// ErrBadBudget indicates an iteration or evaluation budget below 1.
	ErrBadBudget = errors.New("integrator: budget must be >= 1")

	// ErrBudgetOrder indicates a minimum budget exceeding its maximum.
	ErrBudgetOrder = errors.New("integrator: min budget exceeds max budget")

	// ErrToleranceRange indicates a tolerance outside (1e-15, 1].
	ErrToleranceRange = errors.New("integrator: tolerance out of range")

	// ErrIntegrandPanic wraps a panic raised inside the integrand. The run
	// records Status Failure; the wrapped error propagates only when
	// ReportFailure is enabled.
	ErrIntegrandPanic = errors.New("integrator: integrand panicked")
)
