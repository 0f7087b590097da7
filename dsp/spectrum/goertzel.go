package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT coefficient X[k] of a block of n samples
// with the Goertzel recurrence.
//
// The analyzer is stateful: Coefficient evaluates all samples processed since
// the last Reset. The result equals bin k of the unnormalized DFT once exactly
// n samples have been processed.
type Goertzel struct {
	n, k   int
	coeff  float64
	cosw   float64
	sinw   float64
	s1, s2 float64
}

// NewGoertzel creates an analyzer for bin k of a length-n DFT.
func NewGoertzel(n, k int) (*Goertzel, error) {
	if n < 1 {
		return nil, fmt.Errorf("goertzel: block length must be >= 1: %d", n)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("goertzel: bin must be in [0, %d): %d", n, k)
	}

	w := 2 * math.Pi * float64(k) / float64(n)
	return &Goertzel{
		n:     n,
		k:     k,
		coeff: 2 * math.Cos(w),
		cosw:  math.Cos(w),
		sinw:  math.Sin(w),
	}, nil
}

// Reset clears the recurrence state.
func (g *Goertzel) Reset() {
	g.s1 = 0
	g.s2 = 0
}

// ProcessSample feeds one sample.
func (g *Goertzel) ProcessSample(input float64) {
	s0 := input + g.coeff*g.s1 - g.s2
	g.s2 = g.s1
	g.s1 = s0
}

// ProcessBlock feeds a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s1, s2 := g.s1, g.s2
	for _, x := range input {
		s0 := x + g.coeff*s1 - s2
		s2 = s1
		s1 = s0
	}
	g.s1, g.s2 = s1, s2
}

// Coefficient returns X[k] = e^{jw} s1 - s2.
func (g *Goertzel) Coefficient() complex128 {
	return complex(g.cosw*g.s1-g.s2, g.sinw*g.s1)
}

// Power returns |X[k]|^2.
func (g *Goertzel) Power() float64 {
	return g.s1*g.s1 + g.s2*g.s2 - g.coeff*g.s1*g.s2
}

// Bin returns the block length and bin index of the analyzer.
func (g *Goertzel) Bin() (n, k int) { return g.n, g.k }

// Coefficient evaluates bin k of the DFT of signal.
func Coefficient(signal []float64, k int) (complex128, error) {
	g, err := NewGoertzel(len(signal), k)
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(signal)
	return g.Coefficient(), nil
}
