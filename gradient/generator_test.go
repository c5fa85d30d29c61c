package gradient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/gradient"
)

var allAlgorithms = []gradient.Algorithm{gradient.PCG, gradient.ChaCha8, gradient.SplitMix64}

// drawBits pulls count bits from a freshly seeded generator.
func drawBits(t *testing.T, alg gradient.Algorithm, digest uint64, count int) []int {
	t.Helper()
	gen, err := gradient.NewGenerator(alg, digest)
	require.NoError(t, err)
	bits := make([]int, count)
	for i := range bits {
		bits[i] = gen.Bit()
	}

	return bits
}

// TestNewGenerator_Reproducible verifies that equal digests replay equal streams.
func TestNewGenerator_Reproducible(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			a := drawBits(t, alg, 0xdeadbeef, 256)
			b := drawBits(t, alg, 0xdeadbeef, 256)
			assert.Equal(t, a, b, "same digest must replay the same bits")

			g1, err := gradient.NewGenerator(alg, 42)
			require.NoError(t, err)
			g2, err := gradient.NewGenerator(alg, 42)
			require.NoError(t, err)
			for n := 1; n <= 64; n++ {
				assert.Equal(t, g1.Index(n), g2.Index(n))
			}
		})
	}
}

// TestNewGenerator_DigestsDiverge verifies that different digests give different streams.
func TestNewGenerator_DigestsDiverge(t *testing.T) {
	for _, alg := range allAlgorithms {
		assert.NotEqual(t, drawBits(t, alg, 1, 128), drawBits(t, alg, 2, 128), alg.String())
	}
}

// TestNewGenerator_AlgorithmsDiffer verifies the algorithms are distinct streams.
func TestNewGenerator_AlgorithmsDiffer(t *testing.T) {
	pcg := drawBits(t, gradient.PCG, 7, 128)
	chacha := drawBits(t, gradient.ChaCha8, 7, 128)
	split := drawBits(t, gradient.SplitMix64, 7, 128)
	assert.NotEqual(t, pcg, chacha)
	assert.NotEqual(t, pcg, split)
	assert.NotEqual(t, chacha, split)
}

// TestNewGenerator_BitBalance checks that bits are roughly half ones
// (10000 draws, ±6σ window).
func TestNewGenerator_BitBalance(t *testing.T) {
	for _, alg := range allAlgorithms {
		ones := 0
		for _, b := range drawBits(t, alg, 0x1234567890abcdef, 10000) {
			require.Contains(t, []int{0, 1}, b)
			ones += b
		}
		assert.InDelta(t, 5000, ones, 300, "%s: %d ones out of 10000", alg, ones)
	}
}

// TestNewGenerator_IndexRange verifies Index stays within [0,n) and hits every slot.
func TestNewGenerator_IndexRange(t *testing.T) {
	const n = 7
	for _, alg := range allAlgorithms {
		gen, err := gradient.NewGenerator(alg, 99)
		require.NoError(t, err)
		seen := make(map[int]int)
		for i := 0; i < 7000; i++ {
			j := gen.Index(n)
			require.GreaterOrEqual(t, j, 0)
			require.Less(t, j, n)
			seen[j]++
		}
		assert.Len(t, seen, n, "%s must reach every index", alg)
	}
}

// TestNewGenerator_UnknownAlgorithm ensures invalid algorithms are rejected.
func TestNewGenerator_UnknownAlgorithm(t *testing.T) {
	gen, err := gradient.NewGenerator(gradient.Algorithm(99), 1)
	assert.ErrorIs(t, err, gradient.ErrUnknownAlgorithm)
	assert.Nil(t, gen)
}

// TestParseAlgorithm covers names, case folding and rejection.
func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want gradient.Algorithm
	}{
		{"pcg", gradient.PCG},
		{"ChaCha8", gradient.ChaCha8},
		{" splitmix64 ", gradient.SplitMix64},
	}
	for _, tc := range cases {
		got, err := gradient.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, mustParse(t, got.String()), "String must round-trip")
	}

	_, err := gradient.ParseAlgorithm("isaac")
	assert.ErrorIs(t, err, gradient.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(42)", gradient.Algorithm(42).String())
}

func mustParse(t *testing.T, name string) gradient.Algorithm {
	t.Helper()
	a, err := gradient.ParseAlgorithm(name)
	require.NoError(t, err)

	return a
}
