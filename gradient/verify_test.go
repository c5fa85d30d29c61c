package gradient_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvnoise/gradient"
)

// TestVerify_Table covers accepted and rejected vectors.
func TestVerify_Table(t *testing.T) {
	k3 := float32(1 / math.Sqrt2)
	cases := []struct {
		name string
		g    []float32
		want error
	}{
		{"valid n=2", []float32{0, -1}, nil},
		{"valid n=3", []float32{k3, 0, -k3}, nil},
		{"valid n=5", []float32{0.5, -0.5, -0.5, 0, 0.5}, nil},
		{"empty", nil, gradient.ErrInvalidDimension},
		{"single", []float32{0}, gradient.ErrInvalidDimension},
		{"nan", []float32{float32(math.NaN()), 0, k3}, gradient.ErrNonFinite},
		{"inf", []float32{float32(math.Inf(1)), 0, k3}, gradient.ErrNonFinite},
		{"wrong magnitude", []float32{0.5, 0.5, 0}, gradient.ErrComponentMagnitude},
		{"off by 5e-6", []float32{k3 + 5e-6, 0, -k3}, gradient.ErrComponentMagnitude},
		{"no zero", []float32{k3, k3, k3}, gradient.ErrZeroCount},
		{"two zeros", []float32{0, 0, k3}, gradient.ErrZeroCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := gradient.Verify(tc.g)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNorm checks the Euclidean norm helper.
func TestNorm(t *testing.T) {
	assert.Equal(t, float32(0), gradient.Norm(nil))
	assert.InDelta(t, 5.0, gradient.Norm([]float32{3, 4}), 1e-6)
	assert.InDelta(t, 1.0, gradient.Norm([]float32{0.5, -0.5, -0.5, 0, 0.5}), 1e-6)
}

// TestVerify_ComponentTolerance pins the magnitude tolerance at 1e-6.
func TestVerify_ComponentTolerance(t *testing.T) {
	assert.Equal(t, 1e-6, gradient.ComponentTolerance)

	k3 := float32(1 / math.Sqrt2)
	assert.NoError(t, gradient.Verify([]float32{k3 + 2e-7, 0, -k3}))
	assert.ErrorIs(t, gradient.Verify([]float32{k3, -k3 - 2e-6, 0}), gradient.ErrComponentMagnitude)
}

// TestVerify_ImpliesUnitNorm checks that vectors accepted by Verify are unit
// length, including at high dimension.
func TestVerify_ImpliesUnitNorm(t *testing.T) {
	for _, n := range []int{2, 3, 40, 1000, 100000} {
		corner := make([]float32, n)
		for i := range corner {
			corner[i] = float32(i)
		}
		g, err := gradient.Generate(corner)
		if !assert.NoError(t, err, "n=%d", n) {
			continue
		}
		assert.NoError(t, gradient.Verify(g), "n=%d", n)
		assert.InDelta(t, 1.0, gradient.Norm(g), 0.01, "n=%d", n)
	}
}
