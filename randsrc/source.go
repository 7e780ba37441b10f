package randsrc

import "errors"

// ErrSobolDimension is returned when a Sobol' sequence is requested for a
// dimension count outside [1, MaxSobolDim].
var ErrSobolDimension = errors.New("randsrc: sobol dimension out of range")

// Source yields uniform deviates in [0,1). The two implementations are
// Pseudo (seeded pseudo-random) and Sobol (low-discrepancy sequence);
// integrators depend only on this interface and take the concrete choice
// from configuration.
type Source interface {
	// Next returns the next uniform deviate in [0,1).
	Next() float64

	// NextVector fills dst with the next len(dst)-dimensional point in
	// [0,1)^len(dst), advancing internal state exactly once.
	NextVector(dst []float64)
}
