// Package sma implements the simple moving average
//
//	y[n] = (1/N) * sum_{i=0}^{N-1} x[n-i]
//
// both as a parameterization of the direct-form filter in package iir
// (b = ones(N), a = [N]) and as a running-sum streaming filter.
//
// Before N samples have been seen the missing history is taken from the
// initial value, zero by default, so output i < N-1 equals the partial sum of
// x[0..i] divided by N.
//
// The two forms round differently. [Apply] and [NewDirectForm] sum x[i]/N
// tap by tap, exactly as lfilter does, while [Filter] divides an exact
// running sum, so integer inputs give the shortest decimal mean (101.9
// rather than 101.89999999999999). iir.WithDeferredNormalization gives the
// direct form the running-sum rounding.
package sma
