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

// FillDensity sets each cell of buf to live with probability density and to
// zero otherwise.
func FillDensity(r *rand.Rand, buf []State, live State, density float64) {
	for i := range buf {
		if r.Float64() < density {
			buf[i] = live
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
