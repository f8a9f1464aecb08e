package vectors

import (
	"slices"
)

// Kind selects how a Case is evaluated.
type Kind int

const (
	// KindDirectForm runs B and A through iir.Apply.
	KindDirectForm Kind = iota
	// KindSOS cascades the sections in SectionsB and SectionsA.
	KindSOS
	// KindMovingAverage averages over Window samples. Pad fills the history
	// before the first sample.
	KindMovingAverage
	// KindMedian takes the median over Window samples of the signal padded
	// with Window-1 copies of Pad.
	KindMedian
	// KindNotch designs a three-tap FIR notch at NotchHz for SampleRate.
	KindNotch
)

var kindNames = map[Kind]string{
	KindDirectForm:    "direct-form",
	KindSOS:           "sos",
	KindMovingAverage: "moving-average",
	KindMedian:        "median",
	KindNotch:         "notch",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Case is one reference input and the filter to evaluate it with.
type Case struct {
	Name        string
	Description string
	Kind        Kind

	B, A                 []float64
	SectionsB, SectionsA [][]float64

	Window int
	Pad    float64

	NotchHz    float64
	SampleRate float64

	Signal []float64
	// Round reports whether the expected output is rendered as integers,
	// rounded half to even.
	Round bool
}

func referenceSignal() []float64 {
	return []float64{
		100, 10, 102, 23, 51, 1, -10, -53, 100, -100,
		100, -10, 10, 11, 20, 30, 123, 12, 90, 10,
	}
}

func shortSignal() []float64 {
	return []float64{100, 100, 25, 25, 50, 123, 465, 75, 56, 50, 23, 41}
}

// Catalog returns the reference cases in a fixed order. Each call returns
// fresh slices.
func Catalog() []Case {
	return []Case{
		{
			Name:        "fir-identity",
			Description: "single unit tap",
			Kind:        KindDirectForm,
			B:           []float64{1},
			Signal:      referenceSignal(),
			Round:       true,
		},
		{
			Name:        "fir-leading-tap",
			Description: "four taps, only the first non-zero",
			Kind:        KindDirectForm,
			B:           []float64{1, 0, 0, 0},
			Signal:      referenceSignal(),
			Round:       true,
		},
		{
			Name:        "fir-random",
			Description: "eleven integer taps",
			Kind:        KindDirectForm,
			B:           []float64{1, 2, 3, -4, -4, 5, 6, 1, 2, 1, -2},
			Signal:      referenceSignal(),
			Round:       true,
		},
		{
			Name:        "iir-random",
			Description: "integer coefficients with a[0] = -1",
			Kind:        KindDirectForm,
			B:           []float64{1, 10, 2, -3, -1},
			A:           []float64{-1, 2, -3},
			Signal:      referenceSignal(),
			Round:       true,
		},
		{
			Name:        "biquad-random",
			Description: "second-order integer coefficients with a[0] = -1",
			Kind:        KindDirectForm,
			B:           []float64{1, 10, -2},
			A:           []float64{-1, 2, -3},
			Signal:      referenceSignal(),
			Round:       true,
		},
		{
			Name:        "sos-random",
			Description: "two integer sections, equal to b=(4,13,28,27,18) a=(-1,1,7,-13,6)",
			Kind:        KindSOS,
			SectionsB:   [][]float64{{1, 2, 3}, {4, 5, 6}},
			SectionsA:   [][]float64{{-1, -2, 3}, {1, -3, 2}},
			Signal:      referenceSignal(),
			Round:       true,
		},
		{
			Name:        "sma-10",
			Description: "10-point moving average from zero history",
			Kind:        KindMovingAverage,
			Window:      10,
			Signal:      shortSignal(),
		},
		{
			Name:        "sma-10-prefill",
			Description: "10-point moving average with history filled with 100",
			Kind:        KindMovingAverage,
			Window:      10,
			Pad:         100,
			Signal:      shortSignal(),
		},
		{
			Name:        "median-5",
			Description: "5-point median padded with 3.14",
			Kind:        KindMedian,
			Window:      5,
			Pad:         3.14,
			Signal:      shortSignal(),
		},
		{
			Name:        "notch-50hz-360",
			Description: "three-tap 50 Hz notch at 360 Hz sample rate",
			Kind:        KindNotch,
			NotchHz:     50,
			SampleRate:  360,
			Signal:      referenceSignal(),
		},
	}
}

// Names returns the catalog names in catalog order.
func Names() []string {
	cases := Catalog()
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the catalog case with the given name.
func Lookup(name string) (Case, bool) {
	cases := Catalog()
	i := slices.IndexFunc(cases, func(c Case) bool { return c.Name == name })
	if i < 0 {
		return Case{}, false
	}
	return cases[i], true
}
