package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-gpfft/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleConjugateVector() {
	fmt.Println(spectrum.ConjugateVector([]complex128{1 + 2i, 3 - 4i}))
	// Output:
	// [(1-2i) (3+4i)]
}

func ExampleCoefficient() {
	x, _ := spectrum.Coefficient([]float64{1, 2, 3, 4}, 0)
	fmt.Printf("%.1f\n", real(x))
	// Output:
	// 10.0
}
