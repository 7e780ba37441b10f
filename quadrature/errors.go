package quadrature

import "errors"

var (
	// ErrPanelCount is returned when a fixed rule is asked for fewer than
	// one panel (or node).
	ErrPanelCount = errors.New("quadrature: panel count must be >= 1")

	// ErrPanelParity is returned when composite Simpson receives an odd
	// panel count; the rule pairs panels and cannot use a dangling one.
	ErrPanelParity = errors.New("quadrature: simpson needs an even panel count")

	// ErrDepthOrder indicates MinDepth > MaxDepth (or a depth below 1) in
	// the adaptive options.
	ErrDepthOrder = errors.New("quadrature: invalid recursion depth window")
)
