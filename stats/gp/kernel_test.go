package gp

import (
	"errors"
	"math"
	"testing"
)

// wrappedGaussian sums exp(-(x-mL)^2/(2 l^2)) over enough periods m.
func wrappedGaussian(x, l, period float64) float64 {
	sum := 0.0
	for m := -5; m <= 5; m++ {
		d := x - float64(m)*period
		sum += math.Exp(-d * d / (2 * l * l))
	}
	return sum
}

func TestHeatCovarianceMatchesWrappedGaussian(t *testing.T) {
	const n, sigma, l, period = 20, 1.5, 0.1, 1.0
	cov, err := HeatCovariance(n, sigma, l, period)
	if err != nil {
		t.Fatal(err)
	}
	norm := wrappedGaussian(0, l, period)
	for i, got := range cov {
		x := float64(i) * period / n
		want := sigma * sigma * wrappedGaussian(x, l, period) / norm
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("cov[%d]=%v, want %v", i, got, want)
		}
	}
}

func TestHeatCovarianceSymmetricAndDecreasing(t *testing.T) {
	const n = 16
	cov, err := HeatCovariance(n, 2, 3, n)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cov[0]-4) > 1e-12 {
		t.Fatalf("cov[0]=%v, want sigma^2=4", cov[0])
	}
	for i := 1; i < n; i++ {
		if math.Abs(cov[i]-cov[n-i]) > 1e-12 {
			t.Fatalf("cov[%d]=%v != cov[%d]=%v", i, cov[i], n-i, cov[n-i])
		}
	}
	for i := 1; i <= n/2; i++ {
		if cov[i] >= cov[i-1] {
			t.Fatalf("cov not decreasing at %d: %v >= %v", i, cov[i], cov[i-1])
		}
	}
}

func TestHeatCovariancePositiveSpectrum(t *testing.T) {
	// Short length scales push the nome toward 1.
	for _, l := range []float64{0.02, 0.05, 0.1, 0.2} {
		cov, err := HeatCovariance(12, 1, l, 1)
		if err != nil {
			t.Fatal(err)
		}
		scale, err := RfftScale(cov)
		if err != nil {
			t.Fatal(err)
		}
		for i, s := range scale {
			if !(s > 0) {
				t.Fatalf("l=%v: scale[%d]=%v is not positive", l, i, s)
			}
		}
	}
}

func TestExpQuadCovariance(t *testing.T) {
	const n, sigma, l, period = 10, 1.2, 0.15, 2.0
	cov, err := ExpQuadCovariance(n, sigma, l, period)
	if err != nil {
		t.Fatal(err)
	}
	if cov[0] != sigma*sigma {
		t.Fatalf("cov[0]=%v, want %v", cov[0], sigma*sigma)
	}
	for i := 1; i < n; i++ {
		if math.Abs(cov[i]-cov[n-i]) > 1e-15 {
			t.Fatalf("cov[%d]=%v != cov[%d]=%v", i, cov[i], n-i, cov[n-i])
		}
	}
	d := period / 2
	want := sigma * sigma * math.Exp(-d*d/(2*l*l))
	if math.Abs(cov[n/2]-want) > 1e-15 {
		t.Fatalf("cov[n/2]=%v, want %v", cov[n/2], want)
	}
}

func TestCovariance2(t *testing.T) {
	cov, err := Covariance2([]float64{1, 0.5}, []float64{2, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float64{{2, 1, 1}, {1, 0.5, 0.5}}
	for i := range want {
		for j := range want[i] {
			if cov[i][j] != want[i][j] {
				t.Fatalf("cov[%d][%d]=%v, want %v", i, j, cov[i][j], want[i][j])
			}
		}
	}
	if _, err := Covariance2(nil, []float64{1}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestKernelValidation(t *testing.T) {
	cases := []struct {
		n                int
		sigma, l, period float64
		want             error
	}{
		{0, 1, 1, 1, ErrInvalidSize},
		{4, 0, 1, 1, ErrInvalidParameter},
		{4, 1, -1, 1, ErrInvalidParameter},
		{4, 1, 1, 0, ErrInvalidParameter},
		{4, math.NaN(), 1, 1, ErrInvalidParameter},
		{4, 1, math.Inf(1), 1, ErrInvalidParameter},
	}
	for _, tc := range cases {
		if _, err := HeatCovariance(tc.n, tc.sigma, tc.l, tc.period); !errors.Is(err, tc.want) {
			t.Fatalf("HeatCovariance(%v): expected %v, got %v", tc, tc.want, err)
		}
		if _, err := ExpQuadCovariance(tc.n, tc.sigma, tc.l, tc.period); !errors.Is(err, tc.want) {
			t.Fatalf("ExpQuadCovariance(%v): expected %v, got %v", tc, tc.want, err)
		}
	}
}
