package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Lateral returns -1, 0 or +1 with equal probability. It satisfies
// particle.Bias.
func (r *RNG) Lateral() int {
	return r.r.IntN(3) - 1
}
