package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-lfilter/dsp/core"
)

func TestAt(t *testing.T) {
	// One-pole lowpass y[n] = x[n] + 0.5 y[n-1]: H(1) = 2, H(-1) = 2/3.
	b := []float64{1}
	a := []float64{1, -0.5}
	if h := At(b, a, 0); cmplx.Abs(h-2) > 1e-12 {
		t.Fatalf("H(0) = %v, want 2", h)
	}
	if h := At(b, a, math.Pi); cmplx.Abs(h-complex(2.0/3, 0)) > 1e-12 {
		t.Fatalf("H(pi) = %v, want 2/3", h)
	}
	if h := At([]float64{0.25, 0.5, 0.25}, nil, 0); cmplx.Abs(h-1) > 1e-12 {
		t.Fatalf("FIR H(0) = %v, want 1", h)
	}
}

func TestFreqz_FFTMatchesDirect(t *testing.T) {
	b := []float64{0.2, 0.3, -0.1, 0.05}
	a := []float64{1, -0.6, 0.25}

	r, err := Freqz(b, a, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.W) != 64 || len(r.H) != 64 {
		t.Fatalf("len = %d/%d, want 64", len(r.W), len(r.H))
	}
	for k, w := range r.W {
		if want := At(b, a, w); cmplx.Abs(r.H[k]-want) > 1e-12 {
			t.Fatalf("H[%d] = %v, want %v", k, r.H[k], want)
		}
	}
}

func TestFreqz_NonPowerOfTwo(t *testing.T) {
	r, err := Freqz([]float64{1, 1}, []float64{2}, 50)
	if err != nil {
		t.Fatal(err)
	}
	if r.W[0] != 0 || !core.NearlyEqual(r.W[49], math.Pi*49/50, 1e-15) {
		t.Fatalf("W endpoints = %v, %v", r.W[0], r.W[49])
	}
	if cmplx.Abs(r.H[0]-1) > 1e-12 {
		t.Fatalf("H[0] = %v, want 1", r.H[0])
	}
}

func TestFreqz_Errors(t *testing.T) {
	if _, err := Freqz([]float64{1}, nil, 0); !errors.Is(err, ErrInvalidPoints) {
		t.Fatalf("err = %v, want ErrInvalidPoints", err)
	}
	if _, err := Freqz(nil, nil, 8); !errors.Is(err, core.ErrInvalidCoefficients) {
		t.Fatalf("err = %v, want ErrInvalidCoefficients", err)
	}
	if _, err := Freqz([]float64{1}, []float64{0, 1}, 8); !errors.Is(err, core.ErrInvalidCoefficients) {
		t.Fatalf("err = %v, want ErrInvalidCoefficients", err)
	}
}

func TestMagnitudeAndPhase(t *testing.T) {
	// Pure one-sample delay: |H| = 1, phase = -w.
	r, err := Freqz([]float64{0, 1}, nil, 32)
	if err != nil {
		t.Fatal(err)
	}
	mag := r.Magnitude()
	db := r.MagnitudeDB()
	phase := r.PhaseDeg()
	for k, w := range r.W {
		if math.Abs(mag[k]-1) > 1e-12 {
			t.Fatalf("|H[%d]| = %v, want 1", k, mag[k])
		}
		if math.Abs(db[k]) > 1e-10 {
			t.Fatalf("dB[%d] = %v, want 0", k, db[k])
		}
		if want := -w * 180 / math.Pi; math.Abs(phase[k]-want) > 1e-9 {
			t.Fatalf("phase[%d] = %v, want %v", k, phase[k], want)
		}
	}
}

func TestHz(t *testing.T) {
	r, err := Freqz([]float64{1}, nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	got := r.Hz(100)
	want := []float64{0, 12.5, 25, 37.5}
	for i := range want {
		if !core.NearlyEqual(got[i], want[i], 1e-12) {
			t.Fatalf("Hz[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{3, -3, -2.5, 3}
	got := UnwrapPhase(in)
	want := []float64{3, -3 + 2*math.Pi, -2.5 + 2*math.Pi, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("unwrapped[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if UnwrapPhase(nil) != nil {
		t.Fatal("UnwrapPhase(nil) should be nil")
	}
}

func TestBode_NotchNull(t *testing.T) {
	const fs, fc = 250.0, 50.0
	omega := 2 * math.Pi * fc / fs
	h0 := 2 - 2*math.Cos(omega)
	b := []float64{1 / h0, -2 * math.Cos(omega) / h0, 1 / h0}

	bd, err := Bode(b, []float64{1}, core.WithSampleRate(fs))
	if err != nil {
		t.Fatal(err)
	}
	if len(bd.FreqHz) != DefaultBodePoints {
		t.Fatalf("len = %d, want %d", len(bd.FreqHz), DefaultBodePoints)
	}
	if math.Abs(bd.MagnitudeDB[0]) > 1e-9 {
		t.Fatalf("DC magnitude = %v dB, want 0", bd.MagnitudeDB[0])
	}

	// 50 Hz at fs=250 with 4096 points lands exactly on bin 1638.4 -> check
	// the two neighbouring bins are far below the passband.
	k := int(fc / (fs / 2) * DefaultBodePoints)
	if bd.MagnitudeDB[k] > -40 || bd.MagnitudeDB[k+1] > -40 {
		t.Fatalf("magnitude near notch = %v / %v dB, want < -40", bd.MagnitudeDB[k], bd.MagnitudeDB[k+1])
	}
}
