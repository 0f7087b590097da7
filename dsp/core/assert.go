package core

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// Errors returned by the assertion helpers.
var (
	ErrNotEqual         = errors.New("core: values are not equal")
	ErrNotClose         = errors.New("core: values are not close")
	ErrNotFinite        = errors.New("core: value is not finite")
	ErrShapeMismatch    = errors.New("core: shape mismatch")
	ErrInvalidTolerance = errors.New("core: invalid tolerance")
)

// AssertEqual returns an error wrapping ErrNotEqual unless actual == desired.
func AssertEqual(actual, desired float64) error {
	if actual != desired {
		return fmt.Errorf("%w: %v != %v", ErrNotEqual, actual, desired)
	}
	return nil
}

// AssertEqualInt is AssertEqual for integers.
func AssertEqualInt(actual, desired int) error {
	if actual != desired {
		return fmt.Errorf("%w: %d != %d", ErrNotEqual, actual, desired)
	}
	return nil
}

// AssertEqualVector checks that actual and desired have the same length and
// identical elements. NaN never equals NaN, as in [AssertEqual].
func AssertEqualVector(actual, desired []float64) error {
	if len(actual) != len(desired) {
		return fmt.Errorf("%w: length %d != %d", ErrShapeMismatch, len(actual), len(desired))
	}
	for i := range actual {
		if actual[i] != desired[i] {
			return fmt.Errorf("%w: index %d: %v != %v", ErrNotEqual, i, actual[i], desired[i])
		}
	}
	return nil
}

// AssertEqualMatrix checks two matrices element by element.
func AssertEqualMatrix(actual, desired [][]float64) error {
	if len(actual) != len(desired) {
		return fmt.Errorf("%w: %d rows != %d rows", ErrShapeMismatch, len(actual), len(desired))
	}
	for i := range actual {
		if err := AssertEqualVector(actual[i], desired[i]); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// AssertClose checks |actual - desired| <= atol + rtol*|desired|.
// The defaults are rtol=1e-6 and atol=0.
func AssertClose(actual, desired float64, opts ...CloseOption) error {
	cfg, err := ApplyCloseOptions(opts...)
	if err != nil {
		return err
	}
	return assertClose(actual, desired, cfg)
}

func assertClose(actual, desired float64, cfg CloseConfig) error {
	if !IsClose(actual, desired, cfg.RelTol, cfg.AbsTol) {
		return fmt.Errorf("%w: %v is not close to %v (rtol=%g, atol=%g)",
			ErrNotClose, actual, desired, cfg.RelTol, cfg.AbsTol)
	}
	return nil
}

// AssertCloseVector applies AssertClose elementwise and reports the first
// failing index.
func AssertCloseVector(actual, desired []float64, opts ...CloseOption) error {
	cfg, err := ApplyCloseOptions(opts...)
	if err != nil {
		return err
	}
	if len(actual) != len(desired) {
		return fmt.Errorf("%w: length %d != %d", ErrShapeMismatch, len(actual), len(desired))
	}
	for i := range actual {
		if err := assertClose(actual[i], desired[i], cfg); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

// AssertCloseMatrix applies AssertClose elementwise to two matrices.
func AssertCloseMatrix(actual, desired [][]float64, opts ...CloseOption) error {
	if len(actual) != len(desired) {
		return fmt.Errorf("%w: %d rows != %d rows", ErrShapeMismatch, len(actual), len(desired))
	}
	for i := range actual {
		if err := AssertCloseVector(actual[i], desired[i], opts...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// AssertCloseComplexVector compares complex vectors using the modulus of the
// difference: |a - d| <= atol + rtol*|d|.
func AssertCloseComplexVector(actual, desired []complex128, opts ...CloseOption) error {
	cfg, err := ApplyCloseOptions(opts...)
	if err != nil {
		return err
	}
	if len(actual) != len(desired) {
		return fmt.Errorf("%w: length %d != %d", ErrShapeMismatch, len(actual), len(desired))
	}
	for i := range actual {
		diff := cmplx.Abs(actual[i] - desired[i])
		if cmplx.IsNaN(actual[i]) || cmplx.IsNaN(desired[i]) || diff > cfg.AbsTol+cfg.RelTol*cmplx.Abs(desired[i]) {
			return fmt.Errorf("%w: index %d: %v is not close to %v (rtol=%g, atol=%g)",
				ErrNotClose, i, actual[i], desired[i], cfg.RelTol, cfg.AbsTol)
		}
	}
	return nil
}

// AssertFinite returns an error wrapping ErrNotFinite if x is NaN or infinite.
func AssertFinite(x float64) error {
	if !IsFinite(x) {
		return fmt.Errorf("%w: %v", ErrNotFinite, x)
	}
	return nil
}

// AssertFiniteVector checks every element of x.
func AssertFiniteVector(x []float64) error {
	for i, v := range x {
		if !IsFinite(v) {
			return fmt.Errorf("%w: index %d: %v", ErrNotFinite, i, v)
		}
	}
	return nil
}

// AssertFiniteMatrix checks every element of x.
func AssertFiniteMatrix(x [][]float64) error {
	for i, row := range x {
		if err := AssertFiniteVector(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}
