package sma

import (
	"fmt"

	"github.com/cwbudde/algo-lfilter/dsp/core"
	"github.com/cwbudde/algo-lfilter/dsp/filter/iir"
	"gonum.org/v1/gonum/floats"
)

// Coefficients returns the direct-form coefficients of an N-point moving
// average: b = ones(n) and a = [n].
func Coefficients(n int) (b, a []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("sma: %w: length %d", core.ErrInvalidWindow, n)
	}
	b = make([]float64, n)
	core.Fill(b, 1)
	return b, []float64{float64(n)}, nil
}

// NewDirectForm returns an iir.Filter computing the n-point moving average.
// Options are passed through to iir.New.
func NewDirectForm(n int, opts ...iir.Option) (*iir.Filter, error) {
	b, a, err := Coefficients(n)
	if err != nil {
		return nil, err
	}
	return iir.New(b, a, opts...)
}

// Filter is a running-sum moving average over the last N inputs.
// It is not safe for concurrent use.
type Filter struct {
	history []float64
	index   int
	sum     float64
	initial float64
}

// New creates an n-point moving average.
func New(n int, opts ...Option) (*Filter, error) {
	if n < 1 {
		return nil, fmt.Errorf("sma: %w: length %d", core.ErrInvalidWindow, n)
	}
	cfg := applyOptions(opts)
	f := &Filter{
		history: make([]float64, n),
		initial: cfg.initial,
	}
	f.Reset()
	return f, nil
}

// ProcessSample pushes x and returns the mean of the last N inputs.
func (f *Filter) ProcessSample(x float64) float64 {
	f.sum -= f.history[f.index]
	f.sum += x
	f.history[f.index] = x
	f.index++
	if f.index == len(f.history) {
		f.index = 0
	}
	return f.sum / float64(len(f.history))
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset refills the history with the initial value.
func (f *Filter) Reset() {
	core.Fill(f.history, f.initial)
	f.index = 0
	f.sum = floats.Sum(f.history)
}

// Len returns the window length N.
func (f *Filter) Len() int {
	return len(f.history)
}

// Apply returns the n-point moving average of x computed with the direct
// form, starting from zero history.
func Apply(n int, x []float64, opts ...iir.Option) ([]float64, error) {
	b, a, err := Coefficients(n)
	if err != nil {
		return nil, err
	}
	return iir.Apply(b, a, x, opts...)
}
