package vmath

import (
	"math"
	"time"
)

// --- Randomness ---

// Rand is the uniform source used by spawning and gusts
// Implementations are not required to be safe for concurrent use
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// FastRand is a xorshift64 generator; cheap and deterministic for a fixed seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeededRand seeds from the wall clock
func NewTimeSeededRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Float64() float64 {
	// Top 53 bits fill the float64 mantissa
	return float64(r.Next()>>11) / (1 << 53)
}

// Between returns a uniform value in [min, max)
// Inverted bounds are sampled as given, so min > max yields (max, min]
func Between(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Round half away from zero, matching the density scaling rounding
func Round(v float64) int {
	return int(math.Round(v))
}

// FixedRand replays a fixed sequence, cycling when exhausted; for tests
type FixedRand struct {
	Values []float64
	i      int
}

func (f *FixedRand) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.i%len(f.Values)]
	f.i++
	return v
}
