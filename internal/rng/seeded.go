package rng

import "math/rand"

// Seeded wraps math/rand with a fixed seed for reproducible rolls.
// Use in tests only; production code should use Crypto.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a deterministic generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
