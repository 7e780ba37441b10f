// Package randsrc - Sobol' low-discrepancy sequence (Press et al. 2007
// primitive polynomials and direction numbers, Antonov–Saleev update).
package randsrc

// Sequence capacity. Direction numbers cover MaxSobolDim dimensions; the
// index space is 2^sobolBits points.
const (
	// MaxSobolDim is the largest dimension the Sobol' tables support.
	MaxSobolDim = 6

	sobolBits   = 30
	sobolMaxSeq = 1 << sobolBits
	sobolFac    = 1.0 / sobolMaxSeq
)

// Primitive polynomial degrees, encoded interior coefficients, and the
// seed direction numbers (Press et al. 2007, §7.8).
var (
	sobolMDeg = [MaxSobolDim]uint32{1, 2, 3, 3, 4, 4}
	sobolIP   = [MaxSobolDim]uint32{0, 1, 1, 2, 1, 4}
	sobolIV   = [sobolBits * MaxSobolDim]uint32{
		1, 1, 1, 1, 1, 1, 3, 1, 3, 3, 1, 1, 5, 7, 7, 3, 3, 5, 15, 11, 5, 15, 13, 9,
	}
)

// Sobol is a quasi-random Source: a deterministic sequence that fills
// [0,1)^dim more evenly than independent draws. State advances by one
// Gray-code XOR per dimension per point; the whole sequence is a pure
// function of the index, so runs are reproducible without a seed.
type Sobol struct {
	dim    int
	seqNum uint32
	ix     [MaxSobolDim]uint32
	iv     [sobolBits * MaxSobolDim]uint32
}

var _ Source = (*Sobol)(nil)

// NewSobol prepares a dim-dimensional Sobol' sequence positioned at
// index 0.
//
// Errors: ErrSobolDimension when dim < 1 or dim > MaxSobolDim.
// Complexity: O(MaxSobolDim · sobolBits) table setup, one-off.
func NewSobol(dim int) (*Sobol, error) {
	if dim < 1 || dim > MaxSobolDim {
		return nil, ErrSobolDimension
	}

	s := &Sobol{dim: dim, iv: sobolIV}
	for k := uint32(0); k < MaxSobolDim; k++ {
		for j := uint32(0); j < sobolMDeg[k]; j++ {
			s.iv[MaxSobolDim*j+k] <<= sobolBits - j - 1
		}

		deg := sobolMDeg[k]
		for j := deg; j < sobolBits; j++ {
			ipp := sobolIP[k]
			i := s.iv[MaxSobolDim*(j-deg)+k]
			i ^= i >> deg
			for l := deg - 1; l >= 1; l-- {
				if ipp&1 == 1 {
					i ^= s.iv[MaxSobolDim*(j-l)+k]
				}
				ipp >>= 1
			}
			s.iv[MaxSobolDim*j+k] = i
		}
	}

	return s, nil
}

// Dim returns the dimension the sequence was built for.
func (s *Sobol) Dim() int { return s.dim }

// Index returns the number of points generated (or skipped) so far.
func (s *Sobol) Index() uint32 { return s.seqNum }

// advance performs one Antonov–Saleev step: XOR the direction numbers of
// the lowest zero bit of the incremented counter into the state.
func (s *Sobol) advance() {
	s.seqNum++

	var zeroBit uint32
	for zeroBit = 0; zeroBit < sobolBits; zeroBit++ {
		if s.seqNum&(1<<zeroBit) == 0 {
			break
		}
	}
	if zeroBit == sobolBits {
		// Counter 2^sobolBits−1 has no zero bit inside the table; the
		// index space is exhausted, so restart the sequence from 0.
		s.seqNum = 0
		s.ix = [MaxSobolDim]uint32{}
		s.advance()

		return
	}

	im := zeroBit * MaxSobolDim
	for k := 0; k < s.dim; k++ {
		s.ix[k] ^= s.iv[im+uint32(k)]
	}
}

// Next returns the first coordinate of the next point. For dim == 1 this
// is the scalar low-discrepancy stream; for higher dimensions prefer
// NextVector so coordinates stay paired.
func (s *Sobol) Next() float64 {
	s.advance()

	return float64(s.ix[0]) * sobolFac
}

// NextVector fills dst with the next point of the sequence. len(dst) may
// be at most the constructed dimension; shorter slices take the leading
// coordinates.
func (s *Sobol) NextVector(dst []float64) {
	s.advance()

	n := len(dst)
	if n > s.dim {
		n = s.dim
	}
	for k := 0; k < n; k++ {
		dst[k] = float64(s.ix[k]) * sobolFac
	}
}

// Skip fast-forwards the sequence by n points without materializing them.
// Each skipped point costs one XOR per dimension, so skipping is far
// cheaper than generating.
func (s *Sobol) Skip(n uint32) {
	for i := uint32(0); i < n; i++ {
		s.advance()
	}
}
