package biquad

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lfilter/dsp/core"
	"github.com/cwbudde/algo-lfilter/internal/testutil"
)

const eps = 1e-12

func lowpassLike() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestFromTransfer(t *testing.T) {
	tests := []struct {
		name string
		b, a []float64
		want Coefficients
	}{
		{
			name: "normalized",
			b:    []float64{0.25, 0.5, 0.25}, a: []float64{1, -0.2, 0.04},
			want: lowpassLike(),
		},
		{
			name: "divides by a0",
			b:    []float64{1, 2, 3}, a: []float64{-1, -2, 3},
			want: Coefficients{B0: -1, B1: -2, B2: -3, A1: 2, A2: -3},
		},
		{
			name: "first order",
			b:    []float64{2, 2}, a: []float64{4, -2},
			want: Coefficients{B0: 0.5, B1: 0.5, A1: -0.5},
		},
		{
			name: "gain only",
			b:    []float64{3}, a: []float64{1},
			want: Coefficients{B0: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTransfer(tt.b, tt.a)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("FromTransfer = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromTransferErrors(t *testing.T) {
	tests := []struct {
		name string
		b, a []float64
	}{
		{name: "empty b", b: nil, a: []float64{1}},
		{name: "empty a", b: []float64{1}, a: nil},
		{name: "long b", b: []float64{1, 2, 3, 4}, a: []float64{1}},
		{name: "long a", b: []float64{1}, a: []float64{1, 2, 3, 4}},
		{name: "zero a0", b: []float64{1}, a: []float64{0, 1}},
		{name: "nan", b: []float64{math.NaN()}, a: []float64{1}},
		{name: "inf", b: []float64{1}, a: []float64{1, math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromTransfer(tt.b, tt.a); !errors.Is(err, core.ErrInvalidCoefficients) {
				t.Fatalf("err = %v, want ErrInvalidCoefficients", err)
			}
		})
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced with x = [1, 0, 0, 0]:
	//
	// n=0: y=0.25, d0=0.5+0.05=0.55, d1=0.25-0.01=0.24
	// n=1: y=0.55, d0=0.11+0.24=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.07-0.022=0.048, d1=-0.014
	// n=3: y=0.048
	s := NewSection(lowpassLike())
	want := []float64{0.25, 0.55, 0.35, 0.048}
	got := make([]float64, len(want))
	for i := range got {
		var x float64
		if i == 0 {
			x = 1
		}
		got[i] = s.ProcessSample(x)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, eps)
}

func TestProcessBlockMatchesSample(t *testing.T) {
	input := testutil.DeterministicNoise(11, 1, 257)

	s1 := NewSection(lowpassLike())
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(lowpassLike())
	block := core.Clone(input)
	s2.ProcessBlock(block)
	testutil.RequireSliceEqual(t, block, ref)
	if s1.State() != s2.State() {
		t.Fatalf("state differs: %v vs %v", s1.State(), s2.State())
	}

	s3 := NewSection(lowpassLike())
	dst := make([]float64, len(input))
	if err := s3.ProcessBlockTo(dst, input); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, dst, ref)
	testutil.RequireSliceEqual(t, input, testutil.DeterministicNoise(11, 1, 257))

	if err := s3.ProcessBlockTo(dst[:3], input); !errors.Is(err, core.ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestProcessSample_PureDelay(t *testing.T) {
	s := NewSection(Coefficients{B1: 1})
	buf := []float64{1, 2, 3, 4, 5}
	s.ProcessBlock(buf)
	testutil.RequireSliceEqual(t, buf, []float64{0, 1, 2, 3, 4})
}

func TestResetAndState(t *testing.T) {
	s := NewSection(lowpassLike())
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	saved := s.State()
	if saved == [2]float64{} {
		t.Fatal("state should be non-zero after processing")
	}

	y3 := s.ProcessSample(-0.3)
	y4 := s.ProcessSample(0.7)
	s.SetState(saved)
	if got := s.ProcessSample(-0.3); got != y3 {
		t.Errorf("after restore: %v, want %v", got, y3)
	}
	if got := s.ProcessSample(0.7); got != y4 {
		t.Errorf("after restore: %v, want %v", got, y4)
	}

	s.Reset()
	if st := s.State(); st != [2]float64{} {
		t.Fatalf("state not zero after reset: %v", st)
	}
}

func TestDF1MatchesDF2T(t *testing.T) {
	input := testutil.ReferenceSignal()

	df2 := NewSection(lowpassLike())
	want := core.Clone(input)
	df2.ProcessBlock(want)

	df1 := NewSectionDF1(lowpassLike())
	got := core.Clone(input)
	df1.ProcessBlock(got)
	testutil.RequireSliceRelNearlyEqual(t, got, want, 1e-12)

	df1.Reset()
	if y := df1.ProcessSample(1); y != 0.25 {
		t.Fatalf("after Reset: %v, want 0.25", y)
	}
}
