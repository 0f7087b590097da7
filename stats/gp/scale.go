package gp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gpfft/dsp/rfft"
	"github.com/cwbudde/algo-gpfft/dsp/spectrum"
)

// RfftScale returns the standard deviation of each of the len(cov)/2+1 real
// Fourier coefficients of a process whose covariance matrix is circulant with
// first row cov.
//
// The real-only DC term (and Nyquist term for even lengths) carries all of
// its variance in the real part and is scaled up by sqrt(2) relative to the
// complex coefficients. A covariance that is not positive definite produces
// NaN entries.
func RfftScale(cov []float64) ([]float64, error) {
	if len(cov) == 0 {
		return nil, fmt.Errorf("%w: covariance row is empty", ErrInvalidSize)
	}
	half, err := rfft.Forward(cov)
	if err != nil {
		return nil, fmt.Errorf("gp: rfft scale: %w", err)
	}
	return RfftScaleFromSpectrum(spectrum.RealPart(half), len(cov))
}

// RfftScaleFromSpectrum is [RfftScale] for a covariance given by the real
// part of its half spectrum, for example an analytic power spectral density
// evaluated at the n/2+1 grid frequencies.
func RfftScaleFromSpectrum(spec []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidSize, n)
	}
	if want := rfft.HalfLen(n); len(spec) != want {
		return nil, fmt.Errorf("%w: spectrum has %d values, size %d needs %d",
			ErrShapeMismatch, len(spec), n, want)
	}

	scale := make([]float64, len(spec))
	for i, s := range spec {
		scale[i] = math.Sqrt(float64(n) * s / 2)
	}
	scale[0] *= math.Sqrt2
	if n%2 == 0 {
		scale[len(scale)-1] *= math.Sqrt2
	}
	return scale, nil
}

// Rfft2Scale returns the standard deviation of each coefficient of the
// rows x (cols/2+1) half spectrum of a process with block-circulant covariance
// whose first row, reshaped to the grid, is cov.
//
// Coefficients that are real for every real input (the DC term and, for even
// dimensions, the Nyquist terms of the first and middle columns) are scaled
// up by sqrt(2).
func Rfft2Scale(cov [][]float64) ([][]float64, error) {
	rows, cols, err := gridShape("rfft2 scale", cov)
	if err != nil {
		return nil, err
	}
	half, err := rfft.Forward2(cov)
	if err != nil {
		return nil, fmt.Errorf("gp: rfft2 scale: %w", err)
	}

	size := float64(rows * cols)
	scale := spectrum.RealMatrix(half)
	for _, row := range scale {
		for j := range row {
			row[j] *= size / 2
		}
	}

	scale[0][0] *= 2
	if cols%2 == 0 {
		scale[0][cols/2] *= 2
	}
	if rows%2 == 0 {
		scale[rows/2][0] *= 2
	}
	if rows%2 == 0 && cols%2 == 0 {
		scale[rows/2][cols/2] *= 2
	}

	for _, row := range scale {
		for j, v := range row {
			row[j] = math.Sqrt(v)
		}
	}
	return scale, nil
}

func gridShape(op string, m [][]float64) (rows, cols int, err error) {
	rows = len(m)
	if rows == 0 || len(m[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: %s: empty grid", ErrInvalidSize, op)
	}
	cols = len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: %s: row %d has %d values, row 0 has %d",
				ErrShapeMismatch, op, i, len(row), cols)
		}
	}
	return rows, cols, nil
}

func checkScale2(op string, scale [][]float64, rows, cols int) error {
	if len(scale) != rows {
		return fmt.Errorf("%w: %s: scale has %d rows, want %d", ErrShapeMismatch, op, len(scale), rows)
	}
	want := rfft.HalfLen(cols)
	for i, row := range scale {
		if len(row) != want {
			return fmt.Errorf("%w: %s: scale row %d has %d values, want %d",
				ErrShapeMismatch, op, i, len(row), want)
		}
	}
	return nil
}
