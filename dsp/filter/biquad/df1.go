package biquad

// SectionDF1 is a biquad in Direct Form I. It keeps two inputs and two
// outputs and sums feed-forward terms before subtracting feedback terms, the
// same order iir.Filter uses, so both produce identical samples for the same
// normalized coefficients.
type SectionDF1 struct {
	Coefficients

	x1, x2 float64
	y1, y2 float64
}

// NewSectionDF1 returns a Direct Form I section with zero state.
func NewSectionDF1(c Coefficients) *SectionDF1 {
	return &SectionDF1{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *SectionDF1) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2
	s.x2, s.x1 = s.x1, x
	s.y2, s.y1 = s.y1, y
	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *SectionDF1) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay lines to zero.
func (s *SectionDF1) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}
