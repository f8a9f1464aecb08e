package core

// ProcessorConfig defines the settings a filter evaluation needs beyond its
// coefficients.
type ProcessorConfig struct {
	// SampleRate in Hz. Used to convert between Hz and normalized frequency.
	SampleRate float64
	// BlockSize used by block-based algorithms such as FFT convolution.
	BlockSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used by the reference scripts.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 100,
		BlockSize:  256,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size. Non-positive values are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Nyquist returns half the sample rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.SampleRate / 2
}

// NormalizedFrequency converts freqHz to half-cycles per sample, 2*f/fs.
func (c ProcessorConfig) NormalizedFrequency(freqHz float64) float64 {
	return 2 * freqHz / c.SampleRate
}
