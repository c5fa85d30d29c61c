// SPDX-License-Identifier: MIT
// Package: lvnoise/isotropy
//
// isotropy.go — Survey / Analyze: per-component Student's t bias check.

package isotropy

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvnoise/gradient"
)

var (
	// ErrTooFewSamples indicates fewer than two samples; no variance exists.
	ErrTooFewSamples = errors.New("isotropy: at least 2 samples required")

	// ErrRaggedInput indicates gradients of differing lengths.
	ErrRaggedInput = errors.New("isotropy: gradients differ in length")

	// ErrBadConfidence indicates a confidence level outside (0,1).
	ErrBadConfidence = errors.New("isotropy: confidence must be in (0,1)")

	// ErrInvalidConfig indicates a non-positive corner span.
	ErrInvalidConfig = errors.New("isotropy: invalid survey config")
)

// Config describes one survey.
type Config struct {
	Dim        int     // gradient dimension (≥ 2)
	Samples    int     // number of random corners (≥ 2)
	Confidence float64 // two-sided confidence level, e.g. 0.99
	Seed       uint64  // corner source seed
	Span       float32 // corners are drawn uniformly from [-Span, Span)
}

// DefaultConfig returns a 99% survey of 500 corners for dim.
func DefaultConfig(dim int) Config {
	return Config{
		Dim:        dim,
		Samples:    500,
		Confidence: 0.99,
		Seed:       1,
		Span:       1000,
	}
}

// Report is the outcome of Analyze or Survey.
type Report struct {
	Dim        int
	Samples    int
	Confidence float64
	Mean       []float64 // per-component sample mean
	HalfWidth  []float64 // per-component confidence interval half-width
	Biased     []int     // components whose interval excludes zero, ascending
}

// Isotropic reports whether every component interval contains zero.
func (r Report) Isotropic() bool {
	return len(r.Biased) == 0
}

// Survey samples cfg.Samples random corners, generates their gradients with s
// and analyzes them. The same cfg always yields the same report.
func Survey(s *gradient.Sampler, cfg Config) (Report, error) {
	if cfg.Dim < 2 {
		return Report{}, fmt.Errorf("Survey: dim=%d: %w", cfg.Dim, gradient.ErrInvalidDimension)
	}
	if cfg.Samples < 2 {
		return Report{}, fmt.Errorf("Survey: samples=%d: %w", cfg.Samples, ErrTooFewSamples)
	}
	if !(cfg.Span > 0) {
		return Report{}, fmt.Errorf("Survey: span=%v: %w", cfg.Span, ErrInvalidConfig)
	}

	r := rand.New(rand.NewPCG(cfg.Seed, 0))
	grads := make([][]float32, cfg.Samples)
	corner := make([]float32, cfg.Dim)
	for i := range grads {
		for j := range corner {
			corner[j] = (r.Float32()*2 - 1) * cfg.Span
		}
		g, err := s.Gradient(corner)
		if err != nil {
			return Report{}, fmt.Errorf("Survey: %w", err)
		}
		grads[i] = g
	}

	return Analyze(grads, cfg.Confidence)
}

// Analyze computes per-component means and Student's t intervals
// (ν = m−1, half-width = t·s/√m) at the given two-sided confidence.
func Analyze(grads [][]float32, confidence float64) (Report, error) {
	if !(confidence > 0 && confidence < 1) {
		return Report{}, fmt.Errorf("Analyze: confidence=%v: %w", confidence, ErrBadConfidence)
	}
	m := len(grads)
	if m < 2 {
		return Report{}, fmt.Errorf("Analyze: samples=%d: %w", m, ErrTooFewSamples)
	}
	dim := len(grads[0])
	for i, g := range grads {
		if len(g) != dim {
			return Report{}, fmt.Errorf("Analyze: len(grads[%d])=%d, want %d: %w",
				i, len(g), dim, ErrRaggedInput)
		}
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m - 1)}
	tq := tDist.Quantile(1 - (1-confidence)/2)
	sqrtM := math.Sqrt(float64(m))

	rep := Report{
		Dim:        dim,
		Samples:    m,
		Confidence: confidence,
		Mean:       make([]float64, dim),
		HalfWidth:  make([]float64, dim),
	}
	column := make([]float64, m)
	for j := 0; j < dim; j++ {
		for i, g := range grads {
			column[i] = float64(g[j])
		}
		mean, std := stat.MeanStdDev(column, nil)
		rep.Mean[j] = mean
		rep.HalfWidth[j] = tq * std / sqrtM
		if math.Abs(mean) > rep.HalfWidth[j] {
			rep.Biased = append(rep.Biased, j)
		}
	}

	return rep, nil
}
