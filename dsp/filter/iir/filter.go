package iir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lfilter/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Filter evaluates the difference equation in transposed direct form II over
// max(len(b), len(a)) zero-padded taps, the structure and rounding order of
// scipy.signal.lfilter. It is not safe for concurrent use.
type Filter struct {
	rawB, rawA []float64

	b  []float64 // padded, divided by a[0] unless deferred
	a  []float64 // padded, divided by a[0] unless deferred
	a0 float64   // divisor applied per sample, 1 when normalized

	z []float64 // transposed delay line, len(b)-1
}

// New creates a filter from numerator b and denominator a. The slices are
// copied. An empty a is treated as [1].
//
// It returns an error wrapping core.ErrInvalidCoefficients if b is empty,
// a[0] is zero or any coefficient is not finite.
func New(b, a []float64, opts ...Option) (*Filter, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("iir: %w: empty numerator", core.ErrInvalidCoefficients)
	}
	if len(a) == 0 {
		a = []float64{1}
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("iir: %w: a[0] is zero", core.ErrInvalidCoefficients)
	}
	if !core.AllFinite(b) || !core.AllFinite(a) {
		return nil, fmt.Errorf("iir: %w: non-finite coefficient", core.ErrInvalidCoefficients)
	}

	cfg := applyOptions(opts)

	n := max(len(b), len(a))
	f := &Filter{
		rawB: core.Clone(b),
		rawA: core.Clone(a),
		b:    make([]float64, n),
		a:    make([]float64, n),
		a0:   a[0],
		z:    make([]float64, n-1),
	}
	copy(f.b, b)
	copy(f.a, a)

	// Padded zeros are divided too, so their sign follows a[0] exactly as
	// lfilter's does.
	if !cfg.deferred {
		a0 := a[0]
		for i := range f.b {
			f.b[i] /= a0
			f.a[i] /= a0
		}
		f.a0 = 1
	}

	return f, nil
}

// Apply filters x with a fresh filter built from b and a and returns the
// output, which has the same length as x.
func Apply(b, a, x []float64, opts ...Option) ([]float64, error) {
	f, err := New(b, a, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f.ProcessSample(v)
	}
	return out, nil
}

// ProcessSample filters one input sample and returns the output.
//
//	y      = z[0] + b[0]*x
//	z[i]   = (z[i+1] + x*b[i+1]) - y*a[i+1]   for i < M-1
//	z[M-1] = x*b[M] - y*a[M]                  where M = Order()
//
// Products are converted explicitly so they are rounded before the sums and
// never fused into multiply-adds.
func (f *Filter) ProcessSample(x float64) float64 {
	m := len(f.z)
	if m == 0 {
		y := float64(x * f.b[0])
		if f.a0 != 1 {
			y /= f.a0
		}
		return y
	}

	y := f.z[0] + float64(f.b[0]*x)
	if f.a0 != 1 {
		y /= f.a0
	}
	for i := range m - 1 {
		f.z[i] = f.z[i+1] + float64(x*f.b[i+1]) - float64(y*f.a[i+1])
	}
	f.z[m-1] = float64(x*f.b[m]) - float64(y*f.a[m])

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. It returns an error wrapping
// core.ErrLengthMismatch if the lengths differ; no samples are processed in
// that case.
func (f *Filter) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("iir: %w: dst has %d samples, src has %d",
			core.ErrLengthMismatch, len(dst), len(src))
	}
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
	return nil
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	core.Zero(f.z)
}

// State returns a copy of the transposed delay line. It has Order() entries
// and matches lfilter's zi/zf for the same coefficients.
func (f *Filter) State() []float64 {
	return core.Clone(f.z)
}

// SetState restores a delay line taken with State, or an lfilter zi vector.
// It returns an error wrapping core.ErrLengthMismatch unless len(z) equals
// Order().
func (f *Filter) SetState(z []float64) error {
	if len(z) != len(f.z) {
		return fmt.Errorf("iir: %w: state has %d taps, filter has %d",
			core.ErrLengthMismatch, len(z), len(f.z))
	}
	copy(f.z, z)
	return nil
}

// Order returns max(len(b), len(a)) - 1.
func (f *Filter) Order() int {
	return len(f.z)
}

// IsFIR reports whether the filter has no feedback terms.
func (f *Filter) IsFIR() bool {
	return len(f.rawA) == 1
}

// Coefficients returns copies of b and a as passed to New.
func (f *Filter) Coefficients() (b, a []float64) {
	return core.Clone(f.rawB), core.Clone(f.rawA)
}

// DCGain returns sum(b) / sum(a), the steady-state response to a constant
// input. It is +-Inf when sum(a) is zero, NaN when both sums are zero.
func (f *Filter) DCGain() float64 {
	den := floats.Sum(f.rawA)
	num := floats.Sum(f.rawB)
	if den == 0 {
		if num == 0 {
			return math.NaN()
		}
		return math.Inf(int(math.Copysign(1, num)))
	}
	return num / den
}
