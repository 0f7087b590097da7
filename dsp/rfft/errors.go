package rfft

import (
	"errors"
	"fmt"
)

// Errors returned by the transform functions.
var (
	ErrLengthMismatch = errors.New("rfft: length mismatch")
	ErrInvalidSize    = errors.New("rfft: invalid size")
	ErrRagged         = errors.New("rfft: rows have different lengths")
)

// LengthError reports a half spectrum whose length does not match the
// signal length it is paired with. It unwraps to [ErrLengthMismatch].
type LengthError struct {
	Op       string
	Row      int // -1 for one-dimensional input
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("rfft: %s: row %d: length mismatch: expected %d coefficients, got %d",
			e.Op, e.Row, e.Expected, e.Actual)
	}
	return fmt.Sprintf("rfft: %s: length mismatch: expected %d coefficients, got %d",
		e.Op, e.Expected, e.Actual)
}

// Unwrap returns ErrLengthMismatch.
func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// HalfLen returns the number of stored coefficients for a signal of length n.
func HalfLen(n int) int { return n/2 + 1 }

func checkSize(op string, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s: length must be >= 1, got %d", ErrInvalidSize, op, n)
	}
	return nil
}

func checkHalf(op string, row, got, n int) error {
	if want := HalfLen(n); got != want {
		return &LengthError{Op: op, Row: row, Expected: want, Actual: got}
	}
	return nil
}

// matrixShape validates a rectangular, non-empty matrix.
func matrixShape[T any](op string, m [][]T) (rows, cols int, err error) {
	rows = len(m)
	if rows == 0 {
		return 0, 0, fmt.Errorf("%w: %s: matrix has no rows", ErrInvalidSize, op)
	}
	cols = len(m[0])
	if cols == 0 {
		return 0, 0, fmt.Errorf("%w: %s: matrix has no columns", ErrInvalidSize, op)
	}
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: %s: row %d has %d values, row 0 has %d", ErrRagged, op, i, len(row), cols)
		}
	}
	return rows, cols, nil
}
