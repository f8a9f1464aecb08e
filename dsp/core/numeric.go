package core

import (
	"fmt"
	"math"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, absolute for
// small magnitudes and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite reports whether every value in buf is finite.
func AllFinite(buf []float64) bool {
	for _, v := range buf {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// RoundHalfEven rounds x to the nearest integer, ties to even. This is the
// rule numpy.round applies when float outputs are turned into integer
// vectors. It returns an error wrapping ErrNotRepresentable when the rounded
// value does not fit in an int64.
func RoundHalfEven(x float64) (int64, error) {
	r := math.RoundToEven(x)
	if math.IsNaN(r) || r < -(1<<63) || r >= 1<<63 {
		return 0, fmt.Errorf("%w: %v", ErrNotRepresentable, x)
	}
	return int64(r), nil
}

// RoundSignal rounds every sample with [RoundHalfEven]. The float result is
// always computed first; integer vectors are never produced by integer
// arithmetic. The first sample that cannot be rounded aborts with an error
// naming its index.
func RoundSignal(x []float64) ([]int64, error) {
	out := make([]int64, len(x))
	for i, v := range x {
		r, err := RoundHalfEven(v)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
