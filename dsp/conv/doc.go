// Package conv provides linear convolution, the closed form of a
// feedback-free filter.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain sum, exact for integer-valued data
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// [Causal] truncates a full convolution to the input length, which is what a
// zero-initial-condition FIR filter produces. The iir and fir packages are
// checked against it.
//
// # Usage
//
//	full, err := conv.Convolve(signal, taps)  // len(signal)+len(taps)-1 samples
//	y, err := conv.Causal(signal, taps)       // len(signal) samples
package conv
