package core

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// FormatMatrix renders a real matrix with aligned columns, one row per line.
func FormatMatrix(m [][]float64) (string, error) {
	d, err := ToDense(m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.6g", mat.Formatted(d, mat.Squeeze())), nil
}

// FormatComplexMatrix renders a complex matrix one row per line, with every
// column padded to the widest entry.
func FormatComplexMatrix(m [][]complex128) (string, error) {
	rows, cols, err := Shape(m)
	if err != nil {
		return "", err
	}
	if rows == 0 || cols == 0 {
		return "", fmt.Errorf("%w: empty matrix", ErrShapeMismatch)
	}

	cells := make([][]string, rows)
	widths := make([]int, cols)
	for i, row := range m {
		cells[i] = make([]string, cols)
		for j, z := range row {
			s := fmt.Sprintf("%.6g", z)
			cells[i][j] = s
			widths[j] = max(widths[j], len(s))
		}
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j, s := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%*s", widths[j], s)
		}
		b.WriteByte(']')
	}
	return b.String(), nil
}
