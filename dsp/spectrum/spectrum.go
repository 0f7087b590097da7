package spectrum

import (
	"fmt"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Conjugate returns the complex conjugate of z.
func Conjugate(z complex128) complex128 {
	return cmplx.Conj(z)
}

// ConjugateVector returns a new slice holding the elementwise conjugate of v.
func ConjugateVector(v []complex128) []complex128 {
	if v == nil {
		return nil
	}
	out := make([]complex128, len(v))
	for i, z := range v {
		out[i] = cmplx.Conj(z)
	}
	return out
}

// ConjugateMatrix returns a new matrix holding the elementwise conjugate of m.
func ConjugateMatrix(m [][]complex128) [][]complex128 {
	if m == nil {
		return nil
	}
	out := make([][]complex128, len(m))
	for i, row := range m {
		out[i] = ConjugateVector(row)
	}
	return out
}

// Reverse returns a new slice with the elements of v in reverse order.
func Reverse(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	for i, z := range v {
		out[len(v)-1-i] = z
	}
	return out
}

// RealPart returns the real parts of v.
func RealPart(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, z := range v {
		out[i] = real(z)
	}
	return out
}

// ImagPart returns the imaginary parts of v.
func ImagPart(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, z := range v {
		out[i] = imag(z)
	}
	return out
}

// RealMatrix returns the real parts of every element of m.
func RealMatrix(m [][]complex128) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = RealPart(row)
	}
	return out
}

// Split separates v into real and imaginary parts.
func Split(v []complex128) (re, im []float64) {
	return RealPart(v), ImagPart(v)
}

// Join combines real and imaginary parts into complex values.
func Join(re, im []float64) ([]complex128, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("spectrum: real/imag length mismatch: %d != %d", len(re), len(im))
	}
	out := make([]complex128, len(re))
	for i := range re {
		out[i] = complex(re[i], im[i])
	}
	return out, nil
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON)
// for improved performance on large spectrum arrays. Scratch buffers are pooled
// internally, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// IsHermitian reports whether the full spectrum x satisfies
// x[k] == conj(x[(n-k) mod n]) within tol.
func IsHermitian(x []complex128, tol float64) bool {
	n := len(x)
	for k := range x {
		if cmplx.Abs(x[k]-cmplx.Conj(x[(n-k)%n])) > tol {
			return false
		}
	}
	return true
}

// IsHermitian2 reports whether the full two-dimensional spectrum x satisfies
// x[k1][k2] == conj(x[(n-k1) mod n][(m-k2) mod m]) within tol.
func IsHermitian2(x [][]complex128, tol float64) bool {
	n := len(x)
	for k1, row := range x {
		m := len(row)
		for k2 := range row {
			mirror := x[(n-k1)%n]
			if len(mirror) != m {
				return false
			}
			if cmplx.Abs(row[k2]-cmplx.Conj(mirror[(m-k2)%m])) > tol {
				return false
			}
		}
	}
	return true
}
