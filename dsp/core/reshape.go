package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ravel flattens a rectangular matrix in row-major order.
func Ravel[T any](m [][]T) ([]T, error) {
	if len(m) == 0 {
		return []T{}, nil
	}
	cols := len(m[0])
	out := make([]T, 0, len(m)*cols)
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrShapeMismatch, i, len(row), cols)
		}
		out = append(out, row...)
	}
	return out, nil
}

// Reshape arranges v into a rows x cols matrix in row-major order. The rows
// of the result are copies; v is not retained.
func Reshape[T any](v []T, rows, cols int) ([][]T, error) {
	if rows < 0 || cols < 0 || rows*cols != len(v) {
		return nil, fmt.Errorf("%w: cannot reshape %d values to %dx%d", ErrShapeMismatch, len(v), rows, cols)
	}
	out := make([][]T, rows)
	for i := range out {
		out[i] = make([]T, cols)
		copy(out[i], v[i*cols:(i+1)*cols])
	}
	return out, nil
}

// Shape returns the dimensions of a rectangular matrix.
func Shape[T any](m [][]T) (rows, cols int, err error) {
	if len(m) == 0 {
		return 0, 0, nil
	}
	for i, row := range m {
		if len(row) != len(m[0]) {
			return 0, 0, fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrShapeMismatch, i, len(row), len(m[0]))
		}
	}
	return len(m), len(m[0]), nil
}

// ToDense converts a non-empty rectangular matrix to a gonum *mat.Dense.
func ToDense(m [][]float64) (*mat.Dense, error) {
	rows, cols, err := Shape(m)
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrShapeMismatch)
	}
	data, err := Ravel(m)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(rows, cols, data), nil
}

// FromDense copies any gonum matrix into a [][]float64.
func FromDense(a mat.Matrix) [][]float64 {
	rows, cols := a.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = a.At(i, j)
		}
	}
	return out
}
