package gp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-gpfft/dsp/rfft"
)

// LogProbStdNormal returns the log density of the standard normal
// distribution at z.
func LogProbStdNormal(z float64) float64 {
	return distuv.UnitNormal.LogProb(z)
}

func logs(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Log(x)
	}
	return out
}

// LogAbsDetJacobian returns log|det J| of [TransformRfft] for a signal of
// length n.
func LogAbsDetJacobian(n int, scale []float64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidSize, n)
	}
	if want := rfft.HalfLen(n); len(scale) != want {
		return 0, fmt.Errorf("%w: scale has %d values, size %d needs %d",
			ErrShapeMismatch, len(scale), n, want)
	}
	imagidx := (n + 1) / 2
	ls := logs(scale)
	nf := float64(n)
	return -floats.Sum(ls) - floats.Sum(ls[1:imagidx]) -
		math.Ln2*float64((n-1)/2) + nf*math.Log(nf)/2, nil
}

// LogProbRfft returns the log density of y under a Gaussian process with
// mean loc and circulant covariance summarized by scale.
func LogProbRfft(y, loc, scale []float64) (float64, error) {
	z, err := TransformRfft(y, loc, scale)
	if err != nil {
		return 0, err
	}
	jac, err := LogAbsDetJacobian(len(y), scale)
	if err != nil {
		return 0, err
	}
	return sumLogProbStdNormal(z) + jac, nil
}

func sumLogProbStdNormal(z []float64) float64 {
	lp := make([]float64, len(z))
	for i, v := range z {
		lp[i] = LogProbStdNormal(v)
	}
	return floats.Sum(lp)
}

// LogAbsDetJacobian2 returns log|det J| of [TransformRfft2] for a grid with
// cols columns and len(scale) rows.
func LogAbsDetJacobian2(cols int, scale [][]float64) (float64, error) {
	if cols < 1 || len(scale) == 0 {
		return 0, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidSize, len(scale), cols)
	}
	rows := len(scale)
	if err := checkScale2("log abs det jacobian2", scale, rows, cols); err != nil {
		return 0, err
	}

	ls := make([][]float64, rows)
	for i, row := range scale {
		ls[i] = logs(row)
	}
	nh := (cols - 1) / 2
	nv := (rows - 1) / 2

	// Columns that are real along the row axis are themselves half spectra
	// of length rows: real parts of rows/2+1 terms, imaginary parts of nv.
	packedColumn := func(j int) float64 {
		sum := 0.0
		for i := 0; i <= rows/2; i++ {
			sum += ls[i][j]
		}
		for i := 1; i <= nv; i++ {
			sum += ls[i][j]
		}
		return sum
	}

	total := -packedColumn(0)
	for _, row := range ls {
		total -= 2 * floats.Sum(row[1:1+nh])
	}
	if cols%2 == 0 {
		total -= packedColumn(cols / 2)
	}

	size := rows * cols
	nterms := (size - 1) / 2
	if rows%2 == 0 && cols%2 == 0 {
		nterms--
	}
	sf := float64(size)
	return total - math.Ln2*float64(nterms) + sf*math.Log(sf)/2, nil
}

// LogProbRfft2 returns the log density of the rows x cols realization y
// under a Gaussian process with block-circulant covariance summarized by
// scale.
func LogProbRfft2(y, loc, scale [][]float64) (float64, error) {
	z, err := TransformRfft2(y, loc, scale)
	if err != nil {
		return 0, err
	}
	jac, err := LogAbsDetJacobian2(len(y[0]), scale)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, row := range z {
		sum += sumLogProbStdNormal(row)
	}
	return sum + jac, nil
}
