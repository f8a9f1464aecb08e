package testutil

import (
	"math"
	"math/rand"
)

// ReferenceSignal returns the 20-sample integer-valued signal the reference
// scripts feed through the direct-form filters.
func ReferenceSignal() []float64 {
	return []float64{
		100, 10, 102, 23, 51, 1, -10, -53, 100, -100,
		100, -10, 10, 11, 20, 30, 123, 12, 90, 10,
	}
}

// ShortSignal returns the 12-sample signal used for the moving average and
// median vectors.
func ShortSignal() []float64 {
	return []float64{100, 100, 25, 25, 50, 123, 465, 75, 56, 50, 23, 41}
}

// DeterministicSine generates amplitude*sin(omega*n) for n in [0, length),
// omega in radians per sample.
func DeterministicSine(omega, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(omega*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
