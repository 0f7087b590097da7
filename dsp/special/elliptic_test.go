package special

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(a), math.Abs(b))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

func TestEllipK_KnownValues(t *testing.T) {
	K, Kp := EllipK(0)
	if !almostEqual(K, math.Pi/2, 1e-12) {
		t.Fatalf("K(0) = %v, expected pi/2 = %v", K, math.Pi/2)
	}
	if !math.IsInf(Kp, 1) {
		t.Fatalf("K'(0) = %v, expected +Inf", Kp)
	}

	K, Kp = EllipK(1 / math.Sqrt2)
	if !almostEqual(K, 1.8540746773013719, 1e-12) {
		t.Fatalf("K(1/sqrt2) = %v, expected 1.8540746773013719", K)
	}
	if !almostEqual(K, Kp, 1e-12) {
		t.Fatalf("K(1/sqrt2) = %v and K' = %v should agree", K, Kp)
	}

	K, Kp = EllipK(1)
	if !math.IsInf(K, 1) {
		t.Fatalf("K(1) = %v, expected +Inf", K)
	}
	if !almostEqual(Kp, math.Pi/2, 1e-12) {
		t.Fatalf("K'(1) = %v, expected pi/2", Kp)
	}
}

func TestEllipK_OutOfRange(t *testing.T) {
	for _, k := range []float64{-0.1, 1.5, math.NaN()} {
		K, Kp := EllipK(k)
		if !math.IsNaN(K) || !math.IsNaN(Kp) {
			t.Fatalf("EllipK(%v) = (%v, %v), expected NaN", k, K, Kp)
		}
	}
}

func TestEllipK_ComplementSwap(t *testing.T) {
	for _, k := range []float64{0.1, 0.6, 0.9, 0.999} {
		kp := math.Sqrt((1 - k) * (1 + k))
		K, Kprime := EllipK(k)
		Kkp, Kpkp := EllipK(kp)
		if !almostEqual(K, Kpkp, 1e-10) || !almostEqual(Kprime, Kkp, 1e-10) {
			t.Fatalf("k=%v: (K, K') = (%v, %v), swapped at k' = (%v, %v)", k, K, Kprime, Kpkp, Kkp)
		}
	}
}

// K(k) = pi / (2 AGM(1, k')).
func TestEllipK_MatchesAGM(t *testing.T) {
	for _, k := range []float64{0.2, 0.5, 0.8, 0.95} {
		a, b := 1.0, math.Sqrt((1-k)*(1+k))
		for range 40 {
			a, b = (a+b)/2, math.Sqrt(a*b)
		}
		want := math.Pi / (2 * a)
		if K, _ := EllipK(k); !almostEqual(K, want, 1e-12) {
			t.Fatalf("K(%v) = %v, AGM gives %v", k, K, want)
		}
	}
}

func TestNome(t *testing.T) {
	if got, want := Nome(1/math.Sqrt2), math.Exp(-math.Pi); !almostEqual(got, want, 1e-12) {
		t.Fatalf("Nome(1/sqrt2) = %v, want %v", got, want)
	}
	if Nome(0) != 0 || Nome(1) != 1 {
		t.Fatalf("Nome endpoints: %v, %v", Nome(0), Nome(1))
	}
	prev := 0.0
	for _, k := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		q := Nome(k)
		if !(q > prev && q < 1) {
			t.Fatalf("Nome(%v) = %v not increasing in (0, 1)", k, q)
		}
		prev = q
	}
}
