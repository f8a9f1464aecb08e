package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lfilter/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = fmt.Errorf("conv: empty kernel: %w", core.ErrInvalidCoefficients)
)

// directThreshold is the longest kernel Convolve hands to Direct.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	if err := DirectTo(result, a, b); err != nil {
		return nil, err
	}
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) error {
	if want := len(a) + len(b) - 1; len(dst) != want {
		return fmt.Errorf("conv: %w: dst has %d samples, want %d", core.ErrLengthMismatch, len(dst), want)
	}

	core.Zero(dst)
	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
	return nil
}

// Convolve performs linear convolution with automatic algorithm selection.
// Kernels up to 64 samples use direct convolution, longer ones overlap-add.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Ensure a is the longer signal for efficient processing
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	oa, err := NewOverlapAdd(b)
	if err != nil {
		return nil, err
	}
	return oa.Process(a)
}

// Causal returns the first len(signal) samples of signal convolved with
// taps: the output of a FIR filter with zero initial conditions.
func Causal(signal, taps []float64) ([]float64, error) {
	full, err := Convolve(signal, taps)
	if err != nil {
		return nil, err
	}
	return full[:len(signal)], nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
