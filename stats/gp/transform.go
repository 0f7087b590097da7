package gp

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-gpfft/dsp/rfft"
	"github.com/cwbudde/algo-gpfft/dsp/spectrum"
)

func checkVector(op string, y, loc, scale []float64) error {
	n := len(y)
	if n == 0 {
		return fmt.Errorf("%w: %s: empty input", ErrInvalidSize, op)
	}
	if len(loc) != n {
		return fmt.Errorf("%w: %s: loc has %d values, want %d", ErrShapeMismatch, op, len(loc), n)
	}
	if want := rfft.HalfLen(n); len(scale) != want {
		return fmt.Errorf("%w: %s: scale has %d values, want %d", ErrShapeMismatch, op, len(scale), want)
	}
	return nil
}

// TransformRfft maps a realization y of a process with mean loc and Fourier
// scale scale to n independent standard normal values.
func TransformRfft(y, loc, scale []float64) ([]float64, error) {
	if err := checkVector("transform rfft", y, loc, scale); err != nil {
		return nil, err
	}
	resid := make([]float64, len(y))
	floats.SubTo(resid, y, loc)

	half, err := rfft.Forward(resid)
	if err != nil {
		return nil, fmt.Errorf("gp: transform rfft: %w", err)
	}
	re, im := spectrum.Split(half)
	floats.Div(re, scale)
	floats.Div(im, scale)
	if half, err = spectrum.Join(re, im); err != nil {
		return nil, err
	}
	return rfft.Unpack(half, len(y))
}

// TransformIrfft is the inverse of [TransformRfft]: it maps n standard normal
// values z to a realization with mean loc.
func TransformIrfft(z, loc, scale []float64) ([]float64, error) {
	if err := checkVector("transform irfft", z, loc, scale); err != nil {
		return nil, err
	}
	half, err := rfft.Pack(z)
	if err != nil {
		return nil, fmt.Errorf("gp: transform irfft: %w", err)
	}
	re, im := spectrum.Split(half)
	vecmath.MulBlockInPlace(re, scale)
	vecmath.MulBlockInPlace(im, scale)
	if half, err = spectrum.Join(re, im); err != nil {
		return nil, err
	}

	y, err := rfft.Inverse(half, len(z))
	if err != nil {
		return nil, fmt.Errorf("gp: transform irfft: %w", err)
	}
	floats.Add(y, loc)
	return y, nil
}
