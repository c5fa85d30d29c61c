// Package gradient produces deterministic pseudorandom unit gradients for
// n-dimensional lattice corners, the primitive underneath Perlin/Simplex-style
// gradient noise.
//
// 🚀 What is a lattice gradient?
//
//	Gradient noise assigns every integer lattice point ("corner") a direction
//	vector and blends dot products of those vectors across a cell. The field is
//	only continuous and reproducible if the same corner ALWAYS maps to the same
//	vector, across calls, processes and platforms.
//
// ✨ How a gradient is built:
//  1. Digest: the IEEE-754 bits of every coordinate, in order, are fed into a
//     64-bit xxHash stream.
//  2. Seed: the digest seeds a deterministic generator (PCG, ChaCha8 or
//     SplitMix64; zero-extended to the generator's native seed width).
//  3. Draw: n sign bits give n components of ±k where k = 1/√(n−1).
//  4. Zero: one index drawn uniformly in [0,n) is overwritten with exactly 0.
//
//	Before zeroing |g|² = n·k², after zeroing |g|² = (n−1)·k² = 1, so the result
//	is unit length without a square root over the vector.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvnoise/gradient"
//
//	g, err := gradient.Generate([]float32{1, 2, 3})
//	if errors.Is(err, gradient.ErrInvalidDimension) {
//	  // corners need at least two coordinates
//	}
//
//	s := gradient.New(gradient.WithAlgorithm(gradient.ChaCha8))
//	buf := make([]float32, 3)
//	err = s.GradientInto(buf, []float32{4, 5, 6}) // no allocation per call
//
// Concurrency:
//
//	A Sampler holds configuration only. Each call allocates its own generator,
//	so a single Sampler may be shared by any number of goroutines.
//
// Performance:
//
//   - Time:   O(n) per gradient
//   - Memory: O(n) for the result (O(1) extra with GradientInto)
package gradient
