// SPDX-License-Identifier: MIT
// Package: lvnoise/gradient
//
// errors.go — sentinel errors for the gradient package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (method name, offending values).
//   • Sampling never panics. Option constructors (WithX) may panic on
//     meaningless inputs.

package gradient

import "errors"

// ErrInvalidDimension indicates a corner (or gradient) with fewer than two
// coordinates. The scale factor 1/√(n−1) has no finite value for n ≤ 1.
// Usage: if errors.Is(err, ErrInvalidDimension) { /* reject corner */ }.
var ErrInvalidDimension = errors.New("gradient: dimension must be at least 2")

// ErrLengthMismatch indicates that the destination buffer passed to
// GradientInto does not have the same length as the corner.
var ErrLengthMismatch = errors.New("gradient: destination length mismatch")

// ErrUnknownAlgorithm indicates an Algorithm value (or name) outside the
// supported set.
var ErrUnknownAlgorithm = errors.New("gradient: unknown algorithm")

// ErrZeroCount indicates that a vector passed to Verify does not contain
// exactly one component equal to 0.0.
var ErrZeroCount = errors.New("gradient: expected exactly one zero component")

// ErrComponentMagnitude indicates that a non-zero component passed to Verify
// differs from ±1/√(n−1).
var ErrComponentMagnitude = errors.New("gradient: component magnitude is not 1/sqrt(n-1)")

// ErrNonFinite indicates NaN or ±Inf in a vector passed to Verify.
var ErrNonFinite = errors.New("gradient: non-finite component")
