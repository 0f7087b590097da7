package rfft

import (
	"fmt"
)

// Unpack flattens a half spectrum of a length-n real signal into n real
// values: the real parts of all n/2+1 coefficients followed by the imaginary
// parts of coefficients 1..(n-1)/2. The imaginary parts of the DC and
// Nyquist terms are zero for real signals and are dropped.
func Unpack(z []complex128, n int) ([]float64, error) {
	if err := checkSize("unpack", n); err != nil {
		return nil, err
	}
	if err := checkHalf("unpack", -1, len(z), n); err != nil {
		return nil, err
	}
	ncomplex := (n - 1) / 2
	out := make([]float64, 0, n)
	for _, c := range z {
		out = append(out, real(c))
	}
	for _, c := range z[1 : 1+ncomplex] {
		out = append(out, imag(c))
	}
	return out, nil
}

// Pack is the inverse of [Unpack]: it turns n real values into the n/2+1
// coefficients of a half spectrum.
func Pack(z []float64) ([]complex128, error) {
	n := len(z)
	if err := checkSize("pack", n); err != nil {
		return nil, err
	}
	size := HalfLen(n)
	ncomplex := (n - 1) / 2
	out := make([]complex128, size)
	for i := range out {
		out[i] = complex(z[i], 0)
	}
	for i := 1; i <= ncomplex; i++ {
		out[i] += complex(0, z[size+i-1])
	}
	return out, nil
}

// PackFull is [Pack] followed by [Expand]: it returns all n coefficients.
func PackFull(z []float64) ([]complex128, error) {
	half, err := Pack(z)
	if err != nil {
		return nil, err
	}
	return Expand(half, len(z))
}

// Unpack2 flattens the truncated spectrum of a rows x cols real matrix into
// a rows x cols real matrix.
//
// Column 0 (and column cols/2 for even cols) of the spectrum is itself the
// half-spectrum of a real column and is unpacked along the row axis into
// output column 0 (and cols-1). The remaining (cols-1)/2 complex columns are
// written as their real parts in columns 1..(cols-1)/2 followed by their
// imaginary parts.
func Unpack2(z [][]complex128, rows, cols int) ([][]float64, error) {
	if err := checkSize("unpack2", rows); err != nil {
		return nil, err
	}
	if err := checkSize("unpack2", cols); err != nil {
		return nil, err
	}
	if len(z) != rows {
		return nil, fmt.Errorf("%w: unpack2: expected %d rows, got %d", ErrLengthMismatch, rows, len(z))
	}
	for i, row := range z {
		if err := checkHalf("unpack2", i, len(row), cols); err != nil {
			return nil, err
		}
	}

	ncomplex := (cols - 1) / 2
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := 1; j <= ncomplex; j++ {
			out[i][j] = real(z[i][j])
			out[i][ncomplex+j] = imag(z[i][j])
		}
	}

	if err := unpackColumn(out, z, 0, 0); err != nil {
		return nil, err
	}
	if cols%2 == 0 {
		if err := unpackColumn(out, z, cols/2, cols-1); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// unpackColumn unpacks column src of z along the row axis into column dst of out.
func unpackColumn(out [][]float64, z [][]complex128, src, dst int) error {
	rows := len(z)
	col := make([]complex128, HalfLen(rows))
	for i := range col {
		col[i] = z[i][src]
	}
	vals, err := Unpack(col, rows)
	if err != nil {
		return err
	}
	for i, v := range vals {
		out[i][dst] = v
	}
	return nil
}

// Pack2 is the inverse of [Unpack2]: it turns a rows x cols real matrix into
// the rows x (cols/2+1) truncated spectrum expected by [Inverse2].
func Pack2(z [][]float64) ([][]complex128, error) {
	rows, cols, err := matrixShape("pack2", z)
	if err != nil {
		return nil, err
	}

	ncomplex := (cols - 1) / 2
	out := make([][]complex128, rows)
	for i := range out {
		out[i] = make([]complex128, HalfLen(cols))
		for j := 1; j <= ncomplex; j++ {
			out[i][j] = complex(z[i][j], z[i][ncomplex+j])
		}
	}

	if err := packColumn(out, z, 0, 0); err != nil {
		return nil, err
	}
	if cols%2 == 0 {
		if err := packColumn(out, z, cols-1, cols/2); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// packColumn packs column src of z along the row axis, expands it to the full
// column spectrum and stores it in column dst of out.
func packColumn(out [][]complex128, z [][]float64, src, dst int) error {
	col := make([]float64, len(z))
	for i := range z {
		col[i] = z[i][src]
	}
	full, err := PackFull(col)
	if err != nil {
		return err
	}
	for i, c := range full {
		out[i][dst] = c
	}
	return nil
}
