// SPDX-License-Identifier: MIT
// Package: lvnoise/gradient
//
// types.go — generator algorithms and sampler options.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • WithAlgorithm validates and PANICS on an unknown algorithm; sampling
//     itself never panics.
//   • DefaultOptions is deterministic: PCG.

package gradient

import (
	"fmt"
	"strings"
)

// Algorithm selects the deterministic generator seeded from a corner digest.
//
//   - PCG        — math/rand/v2 PCG-DXSM, 128-bit state. Seed: (digest, 0).
//   - ChaCha8    — math/rand/v2 ChaCha8, 32-byte seed. Seed: digest as
//     little-endian bytes [0,8), bytes [8,32) zero.
//   - SplitMix64 — 64-bit SplitMix, state = digest.
//
// Every algorithm yields a stable, unbiased stream, but the streams differ:
// gradients produced under one Algorithm are not interchangeable with another.
type Algorithm int

const (
	// PCG is the default generator.
	PCG Algorithm = iota

	// ChaCha8 trades speed for a cryptographic-quality stream.
	ChaCha8

	// SplitMix64 is the smallest generator; the digest is its whole state.
	SplitMix64
)

// algorithmNames maps each Algorithm to its canonical lowercase name.
var algorithmNames = map[Algorithm]string{
	PCG:        "pcg",
	ChaCha8:    "chacha8",
	SplitMix64: "splitmix64",
}

// String returns the canonical name ("pcg", "chacha8", "splitmix64").
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]

	return ok
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// Options configures a Sampler.
//
// Fields:
//   - Algorithm — generator seeded from each corner digest (default PCG).
type Options struct {
	Algorithm Algorithm
}

// DefaultOptions returns the deterministic defaults used by Generate.
func DefaultOptions() Options {
	return Options{Algorithm: PCG}
}

// Option customizes a Sampler at construction time.
type Option func(*Options)

// WithAlgorithm selects the generator. Panics on an unknown algorithm.
func WithAlgorithm(a Algorithm) Option {
	if !a.Valid() {
		panic(fmt.Sprintf("gradient: WithAlgorithm(%d): unknown algorithm", int(a)))
	}
	return func(o *Options) {
		o.Algorithm = a
	}
}
