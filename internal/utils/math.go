package utils

import "math/rand/v2"

// RNG is the randomness source consumed by game logic.
// Tests pass a scripted implementation; production uses GlobalRNG.
type RNG interface {
	// IntN returns a uniform integer in [0, n)
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0)
	Float64() float64
}

type globalRNG struct{}

func (globalRNG) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // Game logic randomness, not security critical

func (globalRNG) Float64() float64 { return rand.Float64() } //nolint:gosec // Game logic randomness, not security critical

// GlobalRNG is safe for concurrent use
var GlobalRNG RNG = globalRNG{}

// RandomIntFrom returns an integer in [min, max] drawn from rng. min > max yields min.
func RandomIntFrom(rng RNG, min, max int) int {
	if min > max {
		return min
	}
	return rng.IntN(max-min+1) + min
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
