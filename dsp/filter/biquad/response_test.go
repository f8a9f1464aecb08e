package biquad

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-lfilter/dsp/response"
)

var testFreqs = []float64{0, 100, 1000, 5000, 10000, 20000, 24000}

func TestMagnitudeMatchesResponse(t *testing.T) {
	c := lowpassLike()
	const sr = 48000.0

	for _, f := range testFreqs {
		h := c.Response(f, sr)
		sq := real(h)*real(h) + imag(h)*imag(h)
		if got := c.MagnitudeSquared(f, sr); math.Abs(got-sq) > 1e-10 {
			t.Errorf("f=%v: MagnitudeSquared=%.15f, |H|^2=%.15f", f, got, sq)
		}
		if got, want := c.MagnitudeDB(f, sr), 10*math.Log10(sq); math.Abs(got-want) > 1e-9 {
			t.Errorf("f=%v: MagnitudeDB=%.15f, want %.15f", f, got, want)
		}
		if got, want := c.Phase(f, sr), cmplx.Phase(h); math.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: Phase=%v, want %v", f, got, want)
		}
	}
}

func TestResponseAllpass(t *testing.T) {
	a1, a2 := -0.5, 0.3
	c := Coefficients{B0: a2, B1: a1, B2: 1, A1: a1, A2: a2}
	for _, f := range testFreqs {
		if mag := cmplx.Abs(c.Response(f, 48000)); math.Abs(mag-1) > 1e-10 {
			t.Errorf("f=%v: |H|=%.15f, want 1", f, mag)
		}
	}
}

func TestChainResponse(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs, WithGain(0.5))
	b, a := chain.TransferFunction()
	const sr = 48000.0

	for _, f := range testFreqs {
		want := 0.5 * coeffs[0].Response(f, sr) * coeffs[1].Response(f, sr)
		got := chain.Response(f, sr)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: chain=%v, product=%v", f, got, want)
		}
		if tf := response.At(b, a, 2*math.Pi*f/sr); cmplx.Abs(tf-want) > 1e-12 {
			t.Errorf("f=%v: transfer function=%v, product=%v", f, tf, want)
		}
		if db, want := chain.MagnitudeDB(f, sr), 20*math.Log10(cmplx.Abs(got)); math.Abs(db-want) > 1e-10 {
			t.Errorf("f=%v: MagnitudeDB=%v, want %v", f, db, want)
		}
	}
}

func TestSectionImpulseResponse(t *testing.T) {
	c := lowpassLike()
	s := NewSection(c)
	s.ProcessSample(0.5)
	s.ProcessSample(0.3)
	saved := s.State()

	ir := s.ImpulseResponse(8)
	if s.State() != saved {
		t.Fatal("ImpulseResponse modified section state")
	}

	ref := NewSection(c)
	for i, want := range ir {
		var x float64
		if i == 0 {
			x = 1
		}
		if got := ref.ProcessSample(x); got != want {
			t.Errorf("ir[%d]: got %.15f, want %.15f", i, got, want)
		}
	}

	if ir := s.ImpulseResponse(0); ir != nil {
		t.Errorf("ImpulseResponse(0) = %v, want nil", ir)
	}
	if ir := NewChain(nil).ImpulseResponse(-1); ir != nil {
		t.Errorf("ImpulseResponse(-1) = %v, want nil", ir)
	}
}
