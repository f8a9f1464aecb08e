package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lfilter/dsp/core"
)

// NotchCoefficients returns the second-order FIR notch
//
//	H(z) = (1 - 2cos(w) z^-1 + z^-2) / (2 - 2cos(w)),  w = 2*pi*notchHz/fs
//
// which has a zero pair on the unit circle at w and unity gain at DC. The
// sample rate comes from the options (core.DefaultProcessorConfig otherwise).
//
// notchHz must lie in (0, fs/2]; at 0 the DC normalization divides by zero.
func NotchCoefficients(notchHz float64, opts ...core.ProcessorOption) ([]float64, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if !(notchHz > 0) || notchHz > cfg.Nyquist() {
		return nil, fmt.Errorf("fir: %w: notch at %g Hz outside (0, %g]",
			core.ErrInvalidCoefficients, notchHz, cfg.Nyquist())
	}

	omega := 2 * math.Pi * notchHz / cfg.SampleRate
	cosOmega := math.Cos(omega)
	h0 := 2 - 2*cosOmega

	return []float64{1 / h0, -2 * cosOmega / h0, 1 / h0}, nil
}

// NewNotch creates a Filter with [NotchCoefficients].
func NewNotch(notchHz float64, opts ...core.ProcessorOption) (*Filter, error) {
	b, err := NotchCoefficients(notchHz, opts...)
	if err != nil {
		return nil, err
	}
	return New(b)
}
