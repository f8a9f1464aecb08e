package vectors

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lfilter/dsp/core"
	"github.com/cwbudde/algo-lfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-lfilter/dsp/filter/fir"
	"github.com/cwbudde/algo-lfilter/dsp/filter/iir"
	"github.com/cwbudde/algo-lfilter/dsp/filter/median"
	"github.com/cwbudde/algo-lfilter/dsp/filter/sma"
)

// ErrUnknownKind is returned by Generate for a Kind it cannot evaluate.
var ErrUnknownKind = errors.New("vectors: unknown kind")

// Vector is a case together with the kernel output for its signal.
type Vector struct {
	Case   Case
	Output []float64
	// Rounded holds Output rounded half to even when Case.Round is set.
	Rounded []int64
}

// Generate evaluates c and returns the resulting vector.
func Generate(c Case) (Vector, error) {
	out, err := evaluate(c)
	if err != nil {
		return Vector{}, fmt.Errorf("vectors: %s: %w", c.Name, err)
	}
	v := Vector{Case: c, Output: out}
	if c.Round {
		if v.Rounded, err = core.RoundSignal(out); err != nil {
			return Vector{}, fmt.Errorf("vectors: %s: %w", c.Name, err)
		}
	}
	return v, nil
}

func evaluate(c Case) ([]float64, error) {
	switch c.Kind {
	case KindDirectForm:
		return iir.Apply(c.B, c.A, c.Signal)

	case KindSOS:
		chain, err := biquad.NewChainFromTransfer(c.SectionsB, c.SectionsA)
		if err != nil {
			return nil, err
		}
		out := core.Clone(c.Signal)
		chain.ProcessBlock(out)
		return out, nil

	case KindMovingAverage:
		b, a, err := sma.Coefficients(c.Window)
		if err != nil {
			return nil, err
		}
		// Run over the prepended history and drop it, so Pad acts as
		// x[-N] ... x[-1].
		y, err := iir.Apply(b, a, core.Prepend(c.Signal, c.Window, c.Pad))
		if err != nil {
			return nil, err
		}
		return y[c.Window:], nil

	case KindMedian:
		return median.Apply(median.Pad(c.Signal, c.Window, c.Pad), c.Window)

	case KindNotch:
		f, err := fir.NewNotch(c.NotchHz, core.WithSampleRate(c.SampleRate))
		if err != nil {
			return nil, err
		}
		out := core.Clone(c.Signal)
		f.ProcessBlock(out)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(c.Kind))
}

// GenerateAll evaluates the named catalog cases, or the whole catalog when
// names is empty.
func GenerateAll(names ...string) ([]Vector, error) {
	var cases []Case
	if len(names) == 0 {
		cases = Catalog()
	} else {
		for _, name := range names {
			c, ok := Lookup(name)
			if !ok {
				return nil, fmt.Errorf("vectors: unknown case %q", name)
			}
			cases = append(cases, c)
		}
	}

	out := make([]Vector, 0, len(cases))
	for _, c := range cases {
		v, err := Generate(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
