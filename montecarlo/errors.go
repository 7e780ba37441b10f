// Package montecarlo: sentinel error set. Matched via errors.Is; domain
// and budget validation sentinels shared with package integrator are
// reused from there.

package montecarlo

import "errors"

var (
	// ErrDimensionLimit is returned when a Vegas integrator is built for
	// more than MaxDimension dimensions (grid memory grows linearly, but
	// stratification cells grow exponentially).
	ErrDimensionLimit = errors.New("montecarlo: dimension exceeds limit")

	// ErrBadFraction indicates a MISER preliminary fraction outside (0, 0.5].
	ErrBadFraction = errors.New("montecarlo: preliminary fraction out of range")

	// ErrBadDither indicates a MISER dither outside [0, 0.5).
	ErrBadDither = errors.New("montecarlo: dither out of range")

	// ErrBadLeafPoints indicates a MISER minimum leaf size below 1.
	ErrBadLeafPoints = errors.New("montecarlo: minimum leaf points must be >= 1")

	// ErrBadSampling indicates a Vegas sampling geometry that cannot be
	// satisfied (iterations, evaluations per iteration, or bin count < 1).
	ErrBadSampling = errors.New("montecarlo: invalid sampling configuration")

	// ErrBinOrder indicates a stratification bin with upper < lower.
	ErrBinOrder = errors.New("montecarlo: bin upper below lower")

	// ErrBinWeight indicates a non-finite or negative stratification bin
	// weight.
	ErrBinWeight = errors.New("montecarlo: invalid bin weight")

	// ErrBinSeed indicates an unusable per-axis bin seed (empty axis, too
	// many bins, non-monotonic edges, or zero total weight).
	ErrBinSeed = errors.New("montecarlo: invalid stratification bin seed")
)
