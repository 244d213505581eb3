package physics

import "math/rand"

// Rand is the source of every random draw the simulation makes. Float32 returns a value in [0,1).
// *rand.Rand satisfies it; tests pass fixed sequences.
type Rand interface {
	Float32() float32
}

// NewRand returns a math/rand source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform draws from [min, max).
func Uniform(r Rand, min, max float32) float32 {
	return min + r.Float32()*(max-min)
}
