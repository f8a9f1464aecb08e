package biquad

import (
	"fmt"

	"github.com/cwbudde/algo-lfilter/dsp/core"
	"github.com/cwbudde/algo-lfilter/internal/polyroot"
)

// FromDirectForm splits the direct-form transfer function b/a into cascaded
// sections, the inverse of Chain.TransferFunction up to rounding. Poles and
// zeros are grouped into conjugate or real pairs; an odd order leaves one
// first-order section. The overall gain b[0]/a[0] is folded into the first
// section's numerator.
//
// b[0] and a[0] must be non-zero. It returns an error wrapping
// core.ErrInvalidCoefficients if the coefficients are unusable or the roots
// cannot be paired.
func FromDirectForm(b, a []float64) ([]Coefficients, error) {
	if len(a) == 0 {
		a = []float64{1}
	}
	if len(b) == 0 || b[0] == 0 || a[0] == 0 {
		return nil, fmt.Errorf("biquad: %w: b[0] and a[0] must be non-zero", core.ErrInvalidCoefficients)
	}
	if !core.AllFinite(b) || !core.AllFinite(a) {
		return nil, fmt.Errorf("biquad: %w: non-finite coefficient", core.ErrInvalidCoefficients)
	}

	gainB, zeros, err := polyroot.Quadratics(b)
	if err != nil {
		return nil, fmt.Errorf("biquad: %w: numerator: %w", core.ErrInvalidCoefficients, err)
	}
	gainA, poles, err := polyroot.Quadratics(a)
	if err != nil {
		return nil, fmt.Errorf("biquad: %w: denominator: %w", core.ErrInvalidCoefficients, err)
	}

	n := max(len(zeros), len(poles), 1)
	sections := make([]Coefficients, n)
	for i := range sections {
		s := Coefficients{B0: 1}
		if i < len(zeros) {
			s.B1, s.B2 = zeros[i][0], zeros[i][1]
		}
		if i < len(poles) {
			s.A1, s.A2 = poles[i][0], poles[i][1]
		}
		sections[i] = s
	}

	g := gainB / gainA
	sections[0].B0 *= g
	sections[0].B1 *= g
	sections[0].B2 *= g
	return sections, nil
}
