package gradient_test

import (
	"testing"

	"github.com/katalvlaran/lvnoise/gradient"
)

// benchmarkGradient runs GradientInto on an n-dimensional corner, varying
// the first coordinate so every iteration hashes a new corner.
func benchmarkGradient(b *testing.B, alg gradient.Algorithm, n int) {
	s := gradient.New(gradient.WithAlgorithm(alg))
	corner := make([]float32, n)
	for i := range corner {
		corner[i] = float32(i)
	}
	dst := make([]float32, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		corner[0] = float32(i)
		if err := s.GradientInto(dst, corner); err != nil {
			b.Fatalf("GradientInto failed: %v", err)
		}
	}
}

func BenchmarkGradient_PCG3(b *testing.B) { benchmarkGradient(b, gradient.PCG, 3) }
func BenchmarkGradient_PCG32(b *testing.B) { benchmarkGradient(b, gradient.PCG, 32) }
func BenchmarkGradient_ChaCha8_3(b *testing.B) { benchmarkGradient(b, gradient.ChaCha8, 3) }
func BenchmarkGradient_ChaCha8_32(b *testing.B) { benchmarkGradient(b, gradient.ChaCha8, 32) }
func BenchmarkGradient_SplitMix3(b *testing.B) { benchmarkGradient(b, gradient.SplitMix64, 3) }
func BenchmarkGradient_SplitMix32(b *testing.B) { benchmarkGradient(b, gradient.SplitMix64, 32) }

// BenchmarkDigest measures hashing alone.
func BenchmarkDigest(b *testing.B) {
	corner := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gradient.Digest(corner)
	}
}
