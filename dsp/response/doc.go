// Package response evaluates the frequency response of a transfer function
// given as numerator and denominator coefficients.
//
// [Freqz] samples H(e^jw) on n uniformly spaced points in [0, pi), the way
// scipy.signal.freqz does for an integer point count, and [Bode] converts the
// result into the three arrays a Bode plot needs. Rendering is left to the
// caller.
package response
