package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// UniformFloat64 returns a pseudo-random number in [lo, hi).
func (r *RNG) UniformFloat64(lo, hi float64) float64 {
	return lo + r.rand.Float64()*(hi-lo)
}

// UniformVector generates a vector of n values drawn uniformly from [lo, hi).
func (r *RNG) UniformVector(n int, lo, hi float64) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		vec[i] = r.UniformFloat64(lo, hi)
	}

	return vec
}
