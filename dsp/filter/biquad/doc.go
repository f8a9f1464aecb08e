// Package biquad provides second-order section (SOS) filter primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// section defined by [Coefficients]; [SectionDF1] is the Direct Form I
// equivalent, which evaluates the difference equation in the same order as
// package iir. Sections are cascaded with [Chain], and
// [Chain.TransferFunction] expands a cascade into one direct-form numerator
// and denominator.
//
// Coefficient design lives outside this package. Coefficients are built from
// per-section (b, a) polynomials with [FromTransfer], or by factoring a whole
// direct-form transfer function with [FromDirectForm].
package biquad
