// Package integrator defines the contract every integration algorithm in
// this module honors: configuration with budgets and tolerances, a mutable
// outcome owned by one running instance, a terminal status vocabulary, and
// the shared convergence test.
//
// Lifecycle (inside every Integrate):
//
//  1. ClearResults — outcome reset to {0 iterations, 0 evaluations,
//     NaN estimate, NotStarted}.
//  2. Validate — option invariants checked; violations return sentinel
//     errors before any integrand evaluation.
//  3. Iterate — the concrete algorithm evaluates the integrand, updating
//     the outcome after each well-defined step.
//  4. UpdateStatus — exactly one terminal status per run: Success on
//     convergence, MaxIterationsReached / MaxEvaluationsReached on budget
//     exhaustion (never an error), Failure on an integrand fault
//     (re-raised only when ReportFailure is set).
//
// Convergence is the joint criterion: |cur−prev| < AbsoluteTolerance AND
// |cur−prev|/|cur| < RelativeTolerance. Both must hold; NaN or Inf on
// either side fails the test outright.
//
// Instances are not reentrant and not goroutine-safe: the outcome is
// private to one logical call at a time. Concurrent integration requires
// separate instances (each with its own random source when reproducibility
// matters).
package integrator
