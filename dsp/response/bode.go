package response

import "github.com/cwbudde/algo-lfilter/dsp/core"

// DefaultBodePoints matches the point count of the reference plotting script.
const DefaultBodePoints = 4096

// BodeData is what a Bode plot renderer consumes.
type BodeData struct {
	SampleRate  float64
	FreqHz      []float64
	MagnitudeDB []float64
	PhaseDeg    []float64
}

// Bode computes the response with DefaultBodePoints points and converts it
// to Hz, dB and unwrapped degrees. The sample rate comes from opts.
func Bode(b, a []float64, opts ...core.ProcessorOption) (*BodeData, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	r, err := Freqz(b, a, DefaultBodePoints)
	if err != nil {
		return nil, err
	}

	return &BodeData{
		SampleRate:  cfg.SampleRate,
		FreqHz:      r.Hz(cfg.SampleRate),
		MagnitudeDB: r.MagnitudeDB(),
		PhaseDeg:    r.PhaseDeg(),
	}, nil
}
