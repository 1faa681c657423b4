package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicSine32 is [DeterministicSine] rounded to float32.
func DeterministicSine32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	s := DeterministicSine(freqHz, sampleRate, amplitude, length)
	out := make([]float32, length)
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}

// FixedSource always returns the same value from Float64. It satisfies the
// engine's random source interface.
type FixedSource float64

// Float64 returns v.
func (v FixedSource) Float64() float64 { return float64(v) }

// CountingSource wraps a seeded generator and counts how many values were
// drawn from it.
type CountingSource struct {
	rng   *rand.Rand
	Calls int
}

// NewCountingSource returns a CountingSource seeded with seed.
func NewCountingSource(seed uint64) *CountingSource {
	return &CountingSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Float64 draws the next value.
func (c *CountingSource) Float64() float64 {
	c.Calls++
	return c.rng.Float64()
}
