package biquad

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-lfilter/internal/testutil"
)

func BenchmarkProcessSample(b *testing.B) {
	s := NewSection(lowpassLike())
	x := 1.0
	for b.Loop() {
		x = s.ProcessSample(x)
	}
	_ = x
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("N=%d", size), func(b *testing.B) {
			s := NewSection(lowpassLike())
			buf := testutil.DeterministicNoise(1, 1, size)
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				s.ProcessBlock(buf)
			}
		})
	}
}

func BenchmarkProcessBlockDF1(b *testing.B) {
	s := NewSectionDF1(lowpassLike())
	buf := testutil.DeterministicNoise(1, 1, 1024)
	b.SetBytes(int64(len(buf) * 8))
	for b.Loop() {
		s.ProcessBlock(buf)
	}
}
