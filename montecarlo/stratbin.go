// SPDX-License-Identifier: MIT

package montecarlo

import "math"

// StratificationBin is one pre-trained axis bin used to seed a Vegas
// grid: the interval [lower, upper] it covers and the cumulative sample
// weight observed in it. Bins are value types; once constructed they
// never change.
type StratificationBin struct {
	lower  float64
	upper  float64
	weight float64
}

// NewStratificationBin validates and builds a bin.
//
// Errors: ErrBinOrder when upper < lower or either edge is non-finite,
// ErrBinWeight when weight is negative or non-finite.
func NewStratificationBin(lower, upper, weight float64) (StratificationBin, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) || upper < lower {
		return StratificationBin{}, ErrBinOrder
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return StratificationBin{}, ErrBinWeight
	}

	return StratificationBin{lower: lower, upper: upper, weight: weight}, nil
}

// Lower returns the bin's lower edge.
func (b StratificationBin) Lower() float64 { return b.lower }

// Upper returns the bin's upper edge.
func (b StratificationBin) Upper() float64 { return b.upper }

// Weight returns the accumulated sample weight.
func (b StratificationBin) Weight() float64 { return b.weight }

// Width returns upper − lower.
func (b StratificationBin) Width() float64 { return b.upper - b.lower }
