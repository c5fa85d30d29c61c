// SPDX-License-Identifier: MIT
// Package: lvnoise/gradient
//
// generator.go — deterministic draw streams seeded from a corner digest.
//
// Determinism:
//   • The same (Algorithm, digest) pair yields the same sequence of draws on
//     every platform; no global or time-based state is consulted.
//   • Seeds narrower than the generator's native width are zero-extended
//     (see Algorithm for the exact layout).

package gradient

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Generator is the draw interface consumed by the vector builder.
//   - Bit   — uniform 0 or 1.
//   - Index — uniform integer in [0, n); n must be > 0.
type Generator interface {
	Bit() int
	Index(n int) int
}

// NewGenerator seeds the selected algorithm with digest.
// Returns ErrUnknownAlgorithm for an unsupported algorithm.
func NewGenerator(alg Algorithm, digest uint64) (Generator, error) {
	src, err := newSource(alg, digest)
	if err != nil {
		return nil, err
	}

	return &stream{r: rand.New(src)}, nil
}

// newSource builds the raw 64-bit source for alg.
func newSource(alg Algorithm, digest uint64) (rand.Source, error) {
	switch alg {
	case PCG:
		return rand.NewPCG(digest, 0), nil
	case ChaCha8:
		var seed [32]byte
		binary.LittleEndian.PutUint64(seed[:8], digest)
		return rand.NewChaCha8(seed), nil
	case SplitMix64:
		return &splitMix{state: digest}, nil
	default:
		return nil, fmt.Errorf("NewGenerator(%d): %w", int(alg), ErrUnknownAlgorithm)
	}
}

// stream adapts a *rand.Rand to Generator.
type stream struct {
	r *rand.Rand
}

// Bit takes the most significant bit of the next output.
func (s *stream) Bit() int {
	return int(s.r.Uint64() >> 63)
}

// Index draws without modulo bias (rand.Rand.IntN rejects out-of-range samples).
func (s *stream) Index(n int) int {
	return s.r.IntN(n)
}

// splitMix is the SplitMix64 generator. It is owned by a single stream and
// never shared, so the state is updated without atomics.
type splitMix struct {
	state uint64
}

// splitMixGamma is the golden-ratio increment.
const splitMixGamma = 0x9e3779b97f4a7c15

// Uint64 implements rand.Source.
func (s *splitMix) Uint64() uint64 {
	s.state += splitMixGamma
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
