package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-lfilter/dsp/core"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method:
// the input is cut into blocks, each block is convolved with the kernel in the
// frequency domain, and the block results are summed at their offsets.
type OverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	scratch []complex128
}

// NewOverlapAdd creates an overlap-add convolver for kernel. The block size
// comes from core.ProcessorConfig and is raised to the kernel length
// rounded up to a power of two when smaller.
func NewOverlapAdd(kernel []float64, opts ...core.ProcessorOption) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	cfg := core.ApplyProcessorOptions(opts...)
	blockSize := max(cfg.BlockSize, nextPowerOf2(len(kernel)))
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		scratch:   make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// Process convolves input with the kernel and returns the full linear
// convolution, len(input)+kernelLen-1 samples.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		for i := range oa.scratch {
			oa.scratch[i] = 0
		}
		for i, v := range input[start:end] {
			oa.scratch[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.scratch, oa.scratch); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i := range oa.scratch {
			oa.scratch[i] *= oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := end - start + oa.kernelLen - 1
		for i := 0; i < n && start+i < len(output); i++ {
			output[start+i] += real(oa.scratch[i])
		}
	}

	return output, nil
}
