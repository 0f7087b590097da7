package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// EllipK returns the complete elliptic integral of the first kind K(k) and
// its complement K'(k) = K(sqrt(1-k^2)) for the modulus 0 <= k <= 1. Moduli
// outside that range yield NaN.
func EllipK(k float64) (K, Kp float64) {
	if !(k >= 0 && k <= 1) {
		return math.NaN(), math.NaN()
	}
	// gonum takes the parameter m = k^2; 1-m is formed as (1-k)(1+k) to keep
	// precision near k = 1.
	m, mc := k*k, (1-k)*(1+k)

	K, Kp = math.Inf(1), math.Inf(1)
	if k < 1 {
		K = mathext.CompleteK(m)
	}
	if k > 0 {
		Kp = mathext.CompleteK(mc)
	}
	return K, Kp
}

// Nome returns q = exp(-pi K'(k)/K(k)) for the elliptic modulus k. The
// Jacobi theta functions at this nome satisfy Theta(0, q)^2 = 2K(k)/pi.
func Nome(k float64) float64 {
	switch {
	case k == 0:
		return 0
	case k == 1:
		return 1
	}
	K, Kp := EllipK(k)
	return math.Exp(-math.Pi * Kp / K)
}
