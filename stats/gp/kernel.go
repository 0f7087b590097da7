package gp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gpfft/dsp/special"
)

const thetaTol = 1e-16

func checkKernel(n int, sigma, lengthScale, period float64) error {
	if n < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidSize, n)
	}
	if !(sigma > 0) || !(lengthScale > 0) || !(period > 0) ||
		math.IsInf(sigma, 0) || math.IsInf(lengthScale, 0) || math.IsInf(period, 0) {
		return fmt.Errorf("%w: sigma=%v lengthScale=%v period=%v", ErrInvalidParameter, sigma, lengthScale, period)
	}
	return nil
}

// HeatCovariance returns the first covariance row of the heat kernel on a
// circle of circumference period, sampled at n equally spaced points.
//
// The kernel is the periodic sum of squared-exponential kernels with length
// scale lengthScale. It is evaluated through the Jacobi theta series, which
// keeps it positive definite for every length scale. The value at zero lag
// is sigma^2.
func HeatCovariance(n int, sigma, lengthScale, period float64) ([]float64, error) {
	if err := checkKernel(n, sigma, lengthScale, period); err != nil {
		return nil, err
	}
	ratio := lengthScale / period
	q := math.Exp(-2 * math.Pi * math.Pi * ratio * ratio)
	terms := special.WithTerms(special.TermsFor(q, thetaTol))

	norm, err := special.Theta(0, q, terms)
	if err != nil {
		return nil, fmt.Errorf("gp: heat covariance: %w", err)
	}
	cov := make([]float64, n)
	for i := range cov {
		v, err := special.Theta(float64(i)/float64(n), q, terms)
		if err != nil {
			return nil, fmt.Errorf("gp: heat covariance: %w", err)
		}
		cov[i] = sigma * sigma * v / norm
	}
	return cov, nil
}

// ExpQuadCovariance returns the first covariance row of the squared
// exponential kernel sigma^2 exp(-d^2 / (2 lengthScale^2)) evaluated at the
// periodic distance d = min(x, period-x) between n equally spaced points.
//
// Unlike [HeatCovariance] the wrapped kernel is only positive definite when
// lengthScale is small compared to period.
func ExpQuadCovariance(n int, sigma, lengthScale, period float64) ([]float64, error) {
	if err := checkKernel(n, sigma, lengthScale, period); err != nil {
		return nil, err
	}
	cov := make([]float64, n)
	for i := range cov {
		x := float64(i) * period / float64(n)
		d := math.Min(x, period-x)
		cov[i] = sigma * sigma * math.Exp(-d*d/(2*lengthScale*lengthScale))
	}
	return cov, nil
}

// Covariance2 combines per-axis covariance rows into the first row of a
// separable two-dimensional covariance, out[i][j] = rows[i]*cols[j]. Use unit
// variance for one of the axes to keep the overall variance of the other.
func Covariance2(rows, cols []float64) ([][]float64, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("%w: covariance2: empty axis (%d x %d)", ErrInvalidSize, len(rows), len(cols))
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(cols))
		for j, c := range cols {
			out[i][j] = r * c
		}
	}
	return out, nil
}
