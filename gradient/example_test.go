package gradient_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnoise/gradient"
)

// ExampleGenerate shows the three-dimensional corner [1,2,3]: one axis is
// zeroed and the remaining two are ±1/√2.
func ExampleGenerate() {
	g, err := gradient.Generate([]float32{1, 2, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("len=%d valid=%v norm=%.2f\n", len(g), gradient.Verify(g) == nil, gradient.Norm(g))
	// Output:
	// len=3 valid=true norm=1.00
}

// ExampleGenerate_invalidDimension shows the typed failure for a 1-D corner.
func ExampleGenerate_invalidDimension() {
	_, err := gradient.Generate([]float32{4})
	fmt.Println(errors.Is(err, gradient.ErrInvalidDimension))
	// Output:
	// true
}

// ExampleSampler_GradientInto reuses one buffer across corners.
func ExampleSampler_GradientInto() {
	s := gradient.New(gradient.WithAlgorithm(gradient.SplitMix64))
	buf := make([]float32, 4)
	for x := 0; x < 3; x++ {
		if err := s.GradientInto(buf, []float32{float32(x), 1, 2, 3}); err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(gradient.Verify(buf) == nil)
	}
	// Output:
	// true
	// true
	// true
}
