package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Fill sets all values in buf to v.
func Fill(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

// Clone returns a copy of src. A nil or empty src yields an empty, non-nil slice.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Prepend returns a new slice holding n copies of fill followed by signal.
func Prepend(signal []float64, n int, fill float64) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n+len(signal))
	Fill(out[:n], fill)
	copy(out[n:], signal)
	return out
}
