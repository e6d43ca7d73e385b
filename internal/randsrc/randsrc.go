// Package randsrc defines the pseudo-random byte source consumed by
// magia's random-generation routines,
// mirroring the small interface seam the teacher used to substitute a
// deterministic source in tests.
package randsrc

import "math/rand/v2"

// Source produces uniformly distributed random 64-bit words. It is
// deliberately narrower than math/rand.Source so it can be backed by
// math/rand/v2, crypto/rand, or a mock in tests without adapters.
type Source interface {
	Uint64() uint64
}

// Default returns a Source backed by math/rand/v2's package-level
// generator (ChaCha8-based, safe for concurrent use).
func Default() Source { return defaultSource{} }

type defaultSource struct{}

func (defaultSource) Uint64() uint64 { return rand.Uint64() }

// FromSeed returns a Source seeded deterministically, for tests and
// reproducible golden-vector generation.
func FromSeed(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}
