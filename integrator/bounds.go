package integrator

import "gonum.org/v1/gonum/floats"

// Bounds is the immutable integration domain: per-dimension (lower, upper)
// pairs with upper > lower everywhere and dimension ≥ 1. Construct through
// NewBounds or NewInterval; the constructors copy their inputs, so later
// mutation of the argument slices cannot corrupt a running integrator.
type Bounds struct {
	lo, hi []float64
}

// NewBounds builds a D-dimensional domain from lower/upper corner arrays.
//
// Errors: ErrDimension (empty input), ErrBoundsLength (len(min) != len(max)),
// ErrBoundsOrder (max[i] <= min[i] for some i).
// Complexity: O(D).
func NewBounds(min, max []float64) (Bounds, error) {
	if len(min) != len(max) {
		return Bounds{}, ErrBoundsLength
	}
	if len(min) == 0 {
		return Bounds{}, ErrDimension
	}
	for i := range min {
		if !(max[i] > min[i]) {
			return Bounds{}, ErrBoundsOrder
		}
	}

	b := Bounds{
		lo: make([]float64, len(min)),
		hi: make([]float64, len(max)),
	}
	copy(b.lo, min)
	copy(b.hi, max)

	return b, nil
}

// NewInterval builds the 1-D domain [a, b].
//
// Errors: ErrBoundsOrder when b <= a.
func NewInterval(a, b float64) (Bounds, error) {
	return NewBounds([]float64{a}, []float64{b})
}

// Dim returns the dimension count.
func (b Bounds) Dim() int { return len(b.lo) }

// Lower returns the lower bound of dimension i.
func (b Bounds) Lower(i int) float64 { return b.lo[i] }

// Upper returns the upper bound of dimension i.
func (b Bounds) Upper(i int) float64 { return b.hi[i] }

// Width returns Upper(i) - Lower(i); positive by construction.
func (b Bounds) Width(i int) float64 { return b.hi[i] - b.lo[i] }

// Volume returns the product of all widths.
func (b Bounds) Volume() float64 {
	w := make([]float64, len(b.lo))
	floats.SubTo(w, b.hi, b.lo)

	return floats.Prod(w)
}
