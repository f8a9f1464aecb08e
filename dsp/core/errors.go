package core

import "errors"

// Error taxonomy shared by all filter packages. Packages wrap these with
// context, so match them with errors.Is.
var (
	// ErrInvalidCoefficients reports an empty coefficient sequence, a zero
	// leading denominator coefficient or a non-finite coefficient.
	ErrInvalidCoefficients = errors.New("invalid coefficients")

	// ErrInvalidWindow reports a non-positive window length or a window
	// longer than the (padded) signal.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrLengthMismatch reports a violated length relation between buffers.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNotRepresentable reports a sample that cannot be rounded to an
	// int64: NaN, an infinity or a magnitude of 2^63 or more.
	ErrNotRepresentable = errors.New("not representable as int64")
)
