package engine

import "math/rand"

// Rand is the randomness capability mine placement depends on.
// Any generator producing a uniform integer in [0, n) satisfies it;
// *math/rand.Rand does, and tests can inject fixed sequences.
type Rand interface {
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// NewSeededRand returns a Rand backed by math/rand with the given seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
