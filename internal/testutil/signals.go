package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicSine generates a sine with the given number of whole cycles
// over length samples.
func DeterministicSine(cycles, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoiseMatrix generates a rows x cols matrix of seeded white noise.
func NoiseMatrix(seed int64, amplitude float64, rows, cols int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = (rng.Float64()*2 - 1) * amplitude
		}
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// DirectDFT computes the full unnormalized DFT of a real signal by the
// O(n^2) definition. It is the reference the FFT paths are checked against.
func DirectDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for t, v := range x {
			angle := -2 * math.Pi * float64(k*t%n) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

// DirectDFT2 computes the full unnormalized two-dimensional DFT of a real
// matrix by the definition.
func DirectDFT2(x [][]float64) [][]complex128 {
	rows := len(x)
	cols := len(x[0])
	out := make([][]complex128, rows)
	for k1 := range out {
		out[k1] = make([]complex128, cols)
		for k2 := range out[k1] {
			var sum complex128
			for t1, row := range x {
				for t2, v := range row {
					phase := float64(k1*t1%rows)/float64(rows) + float64(k2*t2%cols)/float64(cols)
					sum += complex(v, 0) * cmplx.Exp(complex(0, -2*math.Pi*phase))
				}
			}
			out[k1][k2] = sum
		}
	}
	return out
}
