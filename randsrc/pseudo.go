// Package randsrc - deterministic pseudo-random source.
//
// This file centralizes the seed policy for every stochastic integrator.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
//   - Independence: SplitMix64-style mixing for derived substreams.
package randsrc

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Pseudo is a seeded pseudo-random Source backed by math/rand.
// Not goroutine-safe; derive independent streams instead of sharing.
type Pseudo struct {
	rng *rand.Rand
}

var _ Source = (*Pseudo)(nil)

// NewPseudo returns a deterministic pseudo-random source.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewPseudo(seed int64) *Pseudo {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return &Pseudo{rng: rand.New(rand.NewSource(s))}
}

// Next returns the next deviate in [0,1).
func (p *Pseudo) Next() float64 { return p.rng.Float64() }

// NextVector fills dst with independent deviates in [0,1).
func (p *Pseudo) NextVector(dst []float64) {
	for i := range dst {
		dst[i] = p.rng.Float64()
	}
}

// Intn returns a uniform int in [0,n). Used by integrators needing a
// random axis choice.
func (p *Pseudo) Intn(n int) int { return p.rng.Intn(n) }

// Derive creates an independent deterministic substream identified by
// stream. The parent state advances once, so reusing a stream id by
// mistake still yields distinct children.
//
// Complexity: O(1).
func (p *Pseudo) Derive(stream uint64) *Pseudo {
	return NewPseudo(deriveSeed(p.rng.Int63(), stream))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style avalanche (Vigna 2014 constants). Small
// input changes produce large, well-distributed output changes, which
// keeps substreams decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
