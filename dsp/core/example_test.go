package core_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lfilter/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(250),
		core.WithBlockSize(64),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d fn(50Hz)=%.1f\n",
		cfg.SampleRate, cfg.BlockSize, cfg.NormalizedFrequency(50))

	// Output:
	// sampleRate=250 blockSize=64 fn(50Hz)=0.4
}

func ExampleRoundSignal() {
	r, err := core.RoundSignal([]float64{0.5, 1.5, -2.5, 3.51})
	fmt.Println(r, err)

	_, err = core.RoundSignal([]float64{1, math.NaN()})
	fmt.Println(err)

	// Output:
	// [0 2 -2 4] <nil>
	// sample 1: not representable as int64: NaN
}
