package montecarlo

import "github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub009/integrator"

// region is the sub-box a recursive call works on: a 2·D vector, first D
// entries the lower corner, last D the upper corner. A region is
// read-only within a call; children receive modified copies.
type region []float64

func regionFromBounds(b integrator.Bounds) region {
	d := b.Dim()
	r := make(region, 2*d)
	for j := 0; j < d; j++ {
		r[j] = b.Lower(j)
		r[d+j] = b.Upper(j)
	}

	return r
}

func (r region) dim() int { return len(r) / 2 }

func (r region) lower(j int) float64 { return r[j] }

func (r region) upper(j int) float64 { return r[r.dim()+j] }

func (r region) width(j int) float64 { return r[r.dim()+j] - r[j] }

// split returns the two halves of r cut at position at along axis.
// Both halves are fresh copies; r itself is untouched.
func (r region) split(axis int, at float64) (lo, hi region) {
	d := r.dim()
	lo = make(region, 2*d)
	hi = make(region, 2*d)
	copy(lo, r)
	copy(hi, r)
	lo[d+axis] = at
	hi[axis] = at

	return lo, hi
}
