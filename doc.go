// Package lvnoise is the gradient layer for lattice noise: deterministic,
// pseudorandom unit gradients for corners of any dimension.
//
// 🚀 What is lvnoise?
//
//	A small, dependency-light library for the one primitive every
//	Perlin/Simplex-style noise function needs:
//		• Corner digest: coordinate bits → stable 64-bit xxHash
//		• Seeded streams: PCG, ChaCha8 or SplitMix64, chosen per Sampler
//		• Gradients: ±1/√(n−1) components with one axis zeroed (unit length)
//		• Isotropy survey: Student's t check for directional bias
//
// ✨ Why choose lvnoise?
//
//   - Reproducible – the same corner gives the same gradient, everywhere
//   - Typed failures – corners with fewer than two coordinates are rejected
//     with ErrInvalidDimension instead of producing NaN/Inf
//   - Lock-free – a Sampler is immutable and shared freely across goroutines
//
// Packages:
//
//	gradient/  — Digest, generators, Generate/Sampler, Verify
//	isotropy/  — statistical bias survey over sampled gradients
//	config/    — YAML + environment configuration for the CLI
//	cmd/lvnoise — demo and survey command line
//
// Quick example:
//
//	g, err := gradient.Generate([]float32{1, 2, 3})
//	// g == one exact 0 and two entries of ±0.70710677
//
//	go get github.com/katalvlaran/lvnoise
package lvnoise
