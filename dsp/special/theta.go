package special

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the theta-function evaluators.
var (
	ErrInvalidNome  = errors.New("special: nome must satisfy 0 <= q < 1")
	ErrInvalidTerms = errors.New("special: number of terms must be >= 1")
)

const defaultThetaTerms = 20

// ThetaConfig controls truncation of the theta series.
type ThetaConfig struct {
	Terms int
}

// ThetaOption mutates a ThetaConfig.
type ThetaOption func(*ThetaConfig)

// WithTerms sets the number of series terms after the constant.
func WithTerms(n int) ThetaOption {
	return func(cfg *ThetaConfig) {
		cfg.Terms = n
	}
}

func applyThetaOptions(opts []ThetaOption) (ThetaConfig, error) {
	cfg := ThetaConfig{Terms: defaultThetaTerms}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Terms < 1 {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidTerms, cfg.Terms)
	}
	return cfg, nil
}

// Theta evaluates the truncated Jacobi theta series
//
//	1 + 2 * sum_{k=1..N} q^(k^2) cos(2 pi k z)
//
// which is periodic in z with period 1. N defaults to 20; see [TermsFor] for
// choosing N from q.
func Theta(z, q float64, opts ...ThetaOption) (float64, error) {
	cfg, err := applyThetaOptions(opts)
	if err != nil {
		return 0, err
	}
	if !(q >= 0 && q < 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidNome, q)
	}

	sum := 0.0
	for k := 1; k <= cfg.Terms; k++ {
		kf := float64(k)
		term := math.Pow(q, kf*kf)
		if term == 0 {
			break
		}
		sum += term * math.Cos(2*math.Pi*kf*z)
	}
	return 1 + 2*sum, nil
}

// LogTheta returns the natural logarithm of [Theta].
func LogTheta(z, q float64, opts ...ThetaOption) (float64, error) {
	v, err := Theta(z, q, opts...)
	if err != nil {
		return 0, err
	}
	return math.Log(v), nil
}

// TermsFor returns the number of terms after which q^(k^2) drops below tol.
func TermsFor(q, tol float64) int {
	if q <= 0 || tol >= 1 {
		return 1
	}
	if q >= 1 || tol <= 0 {
		return math.MaxInt32
	}
	n := int(math.Ceil(math.Sqrt(math.Log(tol) / math.Log(q))))
	return max(n, 1)
}
