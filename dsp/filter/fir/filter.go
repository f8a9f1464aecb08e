package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-lfilter/dsp/core"
	"github.com/cwbudde/algo-lfilter/dsp/response"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("fir: %w: no taps", core.ErrInvalidCoefficients)
	}
	if !core.AllFinite(coeffs) {
		return nil, fmt.Errorf("fir: %w: non-finite tap", core.ErrInvalidCoefficients)
	}
	return &Filter{
		coeffs: core.Clone(coeffs),
		delay:  make([]float64, len(coeffs)),
	}, nil
}

// ProcessSample filters one input sample using direct convolution
// with a circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
//
// The sum runs from the oldest tap to h[0], the order lfilter's transposed
// form accumulates in, so outputs match iir.Filter with a = [1] exactly.
func (f *Filter) ProcessSample(x float64) float64 {
	f.delay[f.pos] = x
	var y float64
	n := len(f.coeffs)
	p := f.pos + 1
	for k := n - 1; k >= 0; k-- {
		if p == n {
			p = 0
		}
		y += float64(f.coeffs[k] * f.delay[p])
		p++
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("fir: %w: dst has %d samples, src has %d",
			core.ErrLengthMismatch, len(dst), len(src))
	}
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
	return nil
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	core.Zero(f.delay)
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	return core.Clone(f.coeffs)
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	return response.At(f.coeffs, nil, 2*math.Pi*freqHz/sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
