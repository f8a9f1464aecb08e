package iir

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-lfilter/internal/polyroot"
)

// Poles returns the z-plane roots of a[0] + a[1]z^-1 + ... A filter without
// feedback has no poles except at the origin, which are not reported.
func (f *Filter) Poles() ([]complex128, error) {
	roots, err := polyroot.Roots(f.rawA)
	if err != nil {
		return nil, fmt.Errorf("iir: poles: %w", err)
	}
	return roots, nil
}

// Zeros returns the z-plane roots of b[0] + b[1]z^-1 + ... Leading zero
// coefficients are pure delay and contribute no zeros.
func (f *Filter) Zeros() ([]complex128, error) {
	roots, err := polyroot.Roots(f.rawB)
	if err != nil {
		return nil, fmt.Errorf("iir: zeros: %w", err)
	}
	return roots, nil
}

// IsStable reports whether every pole lies strictly inside the unit circle.
// FIR filters are always stable.
func (f *Filter) IsStable() (bool, error) {
	if f.IsFIR() {
		return true, nil
	}
	poles, err := f.Poles()
	if err != nil {
		return false, err
	}
	for _, p := range poles {
		if cmplx.Abs(p) >= 1 {
			return false, nil
		}
	}
	return true, nil
}
