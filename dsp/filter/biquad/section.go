package biquad

import (
	"fmt"

	"github.com/cwbudde/algo-lfilter/dsp/core"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
// A first-order section has B2 == A2 == 0.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// FromTransfer builds section coefficients from a numerator b and
// denominator a of at most three terms each, dividing by a[0]. Shorter
// slices describe first- or zeroth-order sections and are zero-extended.
//
// It returns an error wrapping core.ErrInvalidCoefficients if either slice is
// empty or longer than three, a[0] is zero or any coefficient is not finite.
func FromTransfer(b, a []float64) (Coefficients, error) {
	if len(b) == 0 || len(b) > 3 || len(a) == 0 || len(a) > 3 {
		return Coefficients{}, fmt.Errorf("biquad: %w: need 1..3 terms, got len(b)=%d len(a)=%d",
			core.ErrInvalidCoefficients, len(b), len(a))
	}
	if a[0] == 0 {
		return Coefficients{}, fmt.Errorf("biquad: %w: a[0] is zero", core.ErrInvalidCoefficients)
	}
	if !core.AllFinite(b) || !core.AllFinite(a) {
		return Coefficients{}, fmt.Errorf("biquad: %w: non-finite coefficient", core.ErrInvalidCoefficients)
	}

	var bb, aa [3]float64
	copy(bb[:], b)
	copy(aa[:], a)
	a0 := aa[0]
	return Coefficients{
		B0: bb[0] / a0,
		B1: bb[1] / a0,
		B2: bb[2] / a0,
		A1: aa[1] / a0,
		A2: aa[2] / a0,
	}, nil
}

// Transfer returns the section as b = [B0 B1 B2] and a = [1 A1 A2].
func (c Coefficients) Transfer() (b, a []float64) {
	return []float64{c.B0, c.B1, c.B2}, []float64{1, c.A1, c.A2}
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// ProcessBlockTo filters src into dst. It returns an error wrapping
// core.ErrLengthMismatch if the lengths differ.
func (s *Section) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("biquad: %w: dst has %d samples, src has %d",
			core.ErrLengthMismatch, len(dst), len(src))
	}
	copy(dst, src)
	s.ProcessBlock(dst)
	return nil
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
