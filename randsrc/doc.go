// Package randsrc supplies the uniform deviate sources consumed by the
// stochastic integrators: a seeded pseudo-random generator and a Sobol'
// low-discrepancy (quasi-random) sequence, both behind one Source
// interface.
//
// ✨ Key properties:
//   - Determinism: same seed (pseudo) or same index (Sobol') ⇒ identical
//     deviates across platforms. No time-based seeding hidden anywhere.
//   - Substreams: Pseudo.Derive produces decorrelated child streams via a
//     SplitMix64-style mix, for callers running several integrators from
//     one base seed.
//   - Skippability: Sobol'.Skip fast-forwards the sequence at one XOR per
//     dimension per skipped point, so separate runs can continue one
//     global sequence without re-materializing it.
//
// ⚙️ Usage:
//
//	src := randsrc.NewPseudo(42)
//	u := src.Next()           // one deviate in [0,1)
//	pt := make([]float64, 3)
//	src.NextVector(pt)        // a 3-D point in [0,1)^3
//
//	qr, err := randsrc.NewSobol(2) // up to 6 dimensions
//	if err != nil { ... }
//	qr.NextVector(pt[:2])
//
// Concurrency: sources are NOT goroutine-safe. Give each integrator
// instance its own Source; use Derive for independent streams.
package randsrc
