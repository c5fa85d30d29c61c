// SPDX-License-Identifier: MIT
// Package: lvnoise/gradient
//
// verify.go — invariant check for gradients (generated or received).

package gradient

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// ComponentTolerance bounds | |g[i]| − 1/√(n−1) | for non-zero components.
const ComponentTolerance = 1e-6

// Verify reports whether g satisfies the gradient invariants:
//   - len(g) ≥ 2                                  (ErrInvalidDimension)
//   - every component finite                      (ErrNonFinite)
//   - every non-zero component is ±1/√(n−1)       (ErrComponentMagnitude)
//   - exactly one component equal to 0.0          (ErrZeroCount)
//
// Checks run in that order; the first violation is returned. Unit length
// follows from the last two: (n−1)·k² = 1, so the norm is not checked
// separately.
func Verify(g []float32) error {
	n := len(g)
	if n < minDimension {
		return fmt.Errorf("%s: %w", methodVerify, dimensionError(n))
	}

	k := scale(n)
	zeros := 0
	for i, x := range g {
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			return fmt.Errorf("%s: g[%d]=%v: %w", methodVerify, i, x, ErrNonFinite)
		}
		if x == 0 {
			zeros++
			continue
		}
		if math32.Abs(math32.Abs(x)-k) > ComponentTolerance {
			return fmt.Errorf("%s: |g[%d]|=%v, want %v: %w",
				methodVerify, i, math32.Abs(x), k, ErrComponentMagnitude)
		}
	}
	if zeros != 1 {
		return fmt.Errorf("%s: %d zero components: %w", methodVerify, zeros, ErrZeroCount)
	}

	return nil
}

// Norm returns the Euclidean norm of v.
func Norm(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}

	return vek32.Norm(v)
}
