package median

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-lfilter/dsp/core"
)

// Median returns the median of window without modifying it. An even length
// yields the mean of the two middle values. Median of an empty window is 0.
func Median(window []float64) float64 {
	sorted := core.Clone(window)
	return medianSorted(sorted)
}

// medianSorted sorts buf in place and returns its median.
func medianSorted(buf []float64) float64 {
	n := len(buf)
	if n == 0 {
		return 0
	}
	slices.Sort(buf)
	if n%2 == 1 {
		return buf[n/2]
	}
	return (buf[n/2-1] + buf[n/2]) / 2
}

// Pad returns signal preceded by n-1 copies of fill, the input Apply needs
// to produce one output per sample of signal.
func Pad(signal []float64, n int, fill float64) []float64 {
	return core.Prepend(signal, n-1, fill)
}

// Apply returns out[i] = Median(padded[i:i+n]) for every full window, so
// len(out) == len(padded)-n+1.
//
// It returns an error wrapping core.ErrInvalidWindow if n < 1 or
// n > len(padded).
func Apply(padded []float64, n int) ([]float64, error) {
	if n < 1 || n > len(padded) {
		return nil, fmt.Errorf("median: %w: length %d for %d samples",
			core.ErrInvalidWindow, n, len(padded))
	}
	out := make([]float64, len(padded)-n+1)
	scratch := make([]float64, n)
	for i := range out {
		copy(scratch, padded[i:i+n])
		out[i] = medianSorted(scratch)
	}
	return out, nil
}

// Filter is a streaming median over the last N inputs.
// It is not safe for concurrent use.
type Filter struct {
	history []float64
	scratch []float64
	index   int
	initial float64
}

// New creates an n-point streaming median filter.
func New(n int, opts ...Option) (*Filter, error) {
	if n < 1 {
		return nil, fmt.Errorf("median: %w: length %d", core.ErrInvalidWindow, n)
	}
	cfg := applyOptions(opts)
	f := &Filter{
		history: make([]float64, n),
		scratch: make([]float64, n),
		initial: cfg.initial,
	}
	f.Reset()
	return f, nil
}

// ProcessSample pushes x and returns the median of the last N inputs.
func (f *Filter) ProcessSample(x float64) float64 {
	f.history[f.index] = x
	f.index++
	if f.index == len(f.history) {
		f.index = 0
	}
	copy(f.scratch, f.history)
	return medianSorted(f.scratch)
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
}

// Len returns the window length N.
func (f *Filter) Len() int {
	return len(f.history)
}
