package core

import "fmt"

// CloseConfig holds the tolerances used by the AssertClose family.
type CloseConfig struct {
	RelTol float64
	AbsTol float64
}

// CloseOption mutates a CloseConfig.
type CloseOption func(*CloseConfig)

// DefaultCloseConfig returns rtol=1e-6 and atol=0.
func DefaultCloseConfig() CloseConfig {
	return CloseConfig{
		RelTol: 1e-6,
		AbsTol: 0,
	}
}

// WithRelTol sets the relative tolerance.
func WithRelTol(rtol float64) CloseOption {
	return func(cfg *CloseConfig) {
		cfg.RelTol = rtol
	}
}

// WithAbsTol sets the absolute tolerance.
func WithAbsTol(atol float64) CloseOption {
	return func(cfg *CloseConfig) {
		cfg.AbsTol = atol
	}
}

// ApplyCloseOptions applies zero or more options to the default config and
// validates the result.
func ApplyCloseOptions(opts ...CloseOption) (CloseConfig, error) {
	cfg := DefaultCloseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !(cfg.RelTol >= 0) || !(cfg.AbsTol >= 0) {
		return cfg, fmt.Errorf("%w: rtol=%v atol=%v", ErrInvalidTolerance, cfg.RelTol, cfg.AbsTol)
	}
	return cfg, nil
}
