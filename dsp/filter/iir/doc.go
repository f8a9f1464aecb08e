// Package iir provides the direct-form difference equation runtime used as the
// reference oracle for generated filter test vectors.
//
// A [Filter] evaluates
//
//	y[n] = (1/a[0]) * ( sum_{k=0}^{Nb-1} b[k]*x[n-k] - sum_{j=1}^{Na-1} a[j]*y[n-j] )
//
// with zero initial conditions, which is what scipy.signal.lfilter does when
// no initial state is given. With a = [1] the filter is a plain FIR
// convolution.
//
// The runtime reproduces lfilter bit for bit, not just to within rounding:
// the coefficients are padded to a common length and divided by a[0] once,
// and the equation runs in transposed direct form II with lfilter's
// association order. For a FIR this sums the oldest tap first. All arithmetic
// is float64. Integer vectors are derived afterwards with core.RoundSignal.
//
// This package provides the processing runtime only. Coefficient design lives
// outside this module.
package iir
