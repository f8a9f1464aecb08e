package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-lfilter/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidPoints is returned when the requested point count is not positive.
var ErrInvalidPoints = errors.New("response: point count must be positive")

// Response holds H(e^jw) sampled at the angular frequencies W (rad/sample).
type Response struct {
	W []float64
	H []complex128
}

// At evaluates H(e^jw) = B(e^-jw) / A(e^-jw) at a single angular frequency.
// An empty a is treated as [1].
func At(b, a []float64, omega float64) complex128 {
	num := polyval(b, omega)
	if len(a) == 0 {
		return num
	}
	return num / polyval(a, omega)
}

// polyval returns sum_k c[k] e^{-j omega k}.
func polyval(c []float64, omega float64) complex128 {
	var acc complex128
	for k, v := range c {
		acc += complex(v, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}
	return acc
}

// Freqz samples the response at w[k] = pi*k/n for k in [0, n).
//
// When 2n is a power of two no shorter than either polynomial, both
// polynomials are transformed with a single FFT of size 2n; otherwise each
// point is evaluated directly.
func Freqz(b, a []float64, n int) (*Response, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, n)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("response: %w: empty numerator", core.ErrInvalidCoefficients)
	}
	if len(a) == 0 {
		a = []float64{1}
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("response: %w: a[0] is zero", core.ErrInvalidCoefficients)
	}

	r := &Response{
		W: make([]float64, n),
		H: make([]complex128, n),
	}
	for k := range r.W {
		r.W[k] = math.Pi * float64(k) / float64(n)
	}

	size := 2 * n
	if isPowerOf2(size) && len(b) <= size && len(a) <= size {
		num, err := spectrum(b, size)
		if err != nil {
			return nil, err
		}
		den, err := spectrum(a, size)
		if err != nil {
			return nil, err
		}
		for k := range r.H {
			r.H[k] = num[k] / den[k]
		}
		return r, nil
	}

	for k, w := range r.W {
		r.H[k] = At(b, a, w)
	}
	return r, nil
}

func spectrum(c []float64, size int) ([]complex128, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}
	in := make([]complex128, size)
	for i, v := range c {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}
	return out, nil
}

// Hz converts W to Hz for the given sample rate.
func (r *Response) Hz(sampleRate float64) []float64 {
	out := make([]float64, len(r.W))
	for i, w := range r.W {
		out[i] = w * sampleRate / (2 * math.Pi)
	}
	return out
}

// Magnitude returns |H| for every point.
func (r *Response) Magnitude() []float64 {
	re := make([]float64, len(r.H))
	im := make([]float64, len(r.H))
	for i, h := range r.H {
		re[i] = real(h)
		im[i] = imag(h)
	}
	out := make([]float64, len(r.H))
	vecmath.Magnitude(out, re, im)
	return out
}

// MagnitudeDB returns 20*log10|H| for every point.
func (r *Response) MagnitudeDB() []float64 {
	mag := r.Magnitude()
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return mag
}

// PhaseDeg returns the unwrapped phase of H in degrees.
func (r *Response) PhaseDeg() []float64 {
	phase := make([]float64, len(r.H))
	for i, h := range r.H {
		phase[i] = cmplx.Phase(h)
	}
	out := UnwrapPhase(phase)
	for i := range out {
		out[i] *= 180 / math.Pi
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
