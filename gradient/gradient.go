// SPDX-License-Identifier: MIT
// Package: lvnoise/gradient
//
// gradient.go — Generate / Sampler: corner → digest → generator → gradient.
//
// Algorithm Outline:
//  1. n = len(corner). n < 2 → ErrInvalidDimension.
//  2. k = 1/√(n−1) (float32).
//  3. For i = 0..n−1: bit ← Bit(); g[i] = +k if bit == 1 else −k.
//  4. j ← Index(n); g[j] = 0.
//
// Draw order (n bits, then one index) is part of the output contract: changing
// it changes every gradient.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) (Gradient) or O(1) extra (GradientInto)

package gradient

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Method names used as error context.
const (
	methodGenerate     = "Generate"
	methodGradient     = "Gradient"
	methodGradientInto = "GradientInto"
	methodVerify       = "Verify"
)

// minDimension is the smallest corner length with a finite scale factor.
const minDimension = 2

// Sampler turns corners into gradients using a fixed generator algorithm.
// It is immutable after New and safe for concurrent use.
type Sampler struct {
	opts Options
}

// defaultSampler backs the package-level Generate.
var defaultSampler = New()

// New returns a Sampler configured by opts (applied in order, last wins).
func New(opts ...Option) *Sampler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Sampler{opts: o}
}

// Algorithm reports the generator used by s.
func (s *Sampler) Algorithm() Algorithm {
	return s.opts.Algorithm
}

// Generate returns the gradient of corner using DefaultOptions.
//
// Example:
//
//	g, err := gradient.Generate([]float32{1, 2, 3})
//	// g has one exact 0 and two entries of ±0.70710677
func Generate(corner []float32) ([]float32, error) {
	g, err := defaultSampler.gradient(corner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return g, nil
}

// Gradient returns a freshly allocated gradient for corner.
// The caller owns the result.
func (s *Sampler) Gradient(corner []float32) ([]float32, error) {
	g, err := s.gradient(corner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGradient, err)
	}

	return g, nil
}

// GradientInto writes the gradient for corner into dst.
// len(dst) must equal len(corner); dst is left untouched on error.
func (s *Sampler) GradientInto(dst, corner []float32) error {
	if len(dst) != len(corner) {
		return fmt.Errorf("%s: len(dst)=%d, len(corner)=%d: %w",
			methodGradientInto, len(dst), len(corner), ErrLengthMismatch)
	}
	if err := s.fill(dst, corner); err != nil {
		return fmt.Errorf("%s: %w", methodGradientInto, err)
	}

	return nil
}

func (s *Sampler) gradient(corner []float32) ([]float32, error) {
	if len(corner) < minDimension {
		return nil, dimensionError(len(corner))
	}
	g := make([]float32, len(corner))
	if err := s.fill(g, corner); err != nil {
		return nil, err
	}

	return g, nil
}

// fill runs the build steps into dst (len(dst) == len(corner) already holds).
func (s *Sampler) fill(dst, corner []float32) error {
	n := len(corner)
	if n < minDimension {
		return dimensionError(n)
	}

	gen, err := NewGenerator(s.opts.Algorithm, Digest(corner))
	if err != nil {
		return err
	}

	k := scale(n)
	for i := range dst {
		if gen.Bit() == 1 {
			dst[i] = k
		} else {
			dst[i] = -k
		}
	}
	dst[gen.Index(n)] = 0

	return nil
}

// scale returns 1/√(n−1); callers guarantee n ≥ 2.
func scale(n int) float32 {
	return 1 / math32.Sqrt(float32(n-1))
}

func dimensionError(n int) error {
	return fmt.Errorf("n=%d < min=%d: %w", n, minDimension, ErrInvalidDimension)
}
