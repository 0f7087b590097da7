package gp

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-gpfft/dsp/rfft"
	"github.com/cwbudde/algo-gpfft/dsp/spectrum"
)

func checkGrid(op string, y, loc, scale [][]float64) (rows, cols int, err error) {
	rows, cols, err = gridShape(op, y)
	if err != nil {
		return 0, 0, err
	}
	if len(loc) != rows {
		return 0, 0, fmt.Errorf("%w: %s: loc has %d rows, want %d", ErrShapeMismatch, op, len(loc), rows)
	}
	for i, row := range loc {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: %s: loc row %d has %d values, want %d",
				ErrShapeMismatch, op, i, len(row), cols)
		}
	}
	if err := checkScale2(op, scale, rows, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// applyScale multiplies (divide == false) or divides each coefficient of the
// half spectrum by the matching scale entry, in place.
func applyScale(half [][]complex128, scale [][]float64, divide bool) error {
	for i, row := range half {
		re, im := spectrum.Split(row)
		if divide {
			floats.Div(re, scale[i])
			floats.Div(im, scale[i])
		} else {
			vecmath.MulBlockInPlace(re, scale[i])
			vecmath.MulBlockInPlace(im, scale[i])
		}
		joined, err := spectrum.Join(re, im)
		if err != nil {
			return err
		}
		copy(row, joined)
	}
	return nil
}

// TransformRfft2 maps a rows x cols realization to rows x cols independent
// standard normal values.
func TransformRfft2(y, loc, scale [][]float64) ([][]float64, error) {
	rows, cols, err := checkGrid("transform rfft2", y, loc, scale)
	if err != nil {
		return nil, err
	}
	resid := make([][]float64, rows)
	for i := range resid {
		resid[i] = make([]float64, cols)
		floats.SubTo(resid[i], y[i], loc[i])
	}

	half, err := rfft.Forward2(resid)
	if err != nil {
		return nil, fmt.Errorf("gp: transform rfft2: %w", err)
	}
	if err := applyScale(half, scale, true); err != nil {
		return nil, err
	}
	return rfft.Unpack2(half, rows, cols)
}

// TransformIrfft2 is the inverse of [TransformRfft2].
func TransformIrfft2(z, loc, scale [][]float64) ([][]float64, error) {
	_, cols, err := checkGrid("transform irfft2", z, loc, scale)
	if err != nil {
		return nil, err
	}
	half, err := rfft.Pack2(z)
	if err != nil {
		return nil, fmt.Errorf("gp: transform irfft2: %w", err)
	}
	if err := applyScale(half, scale, false); err != nil {
		return nil, err
	}

	y, err := rfft.Inverse2(half, cols)
	if err != nil {
		return nil, fmt.Errorf("gp: transform irfft2: %w", err)
	}
	for i := range y {
		floats.Add(y[i], loc[i])
	}
	return y, nil
}
