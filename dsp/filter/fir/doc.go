// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line, with zero initial conditions. It is the
// feedback-free special case of the iir package and produces bit-identical
// results to it for a = [1].
//
// [NotchCoefficients] builds the three-tap notch used by the reference
// visualisation scripts. Any other coefficient design is a separate concern.
package fir
