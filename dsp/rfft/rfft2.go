package rfft

import (
	"github.com/cwbudde/algo-gpfft/dsp/spectrum"
)

// FullSpectrum2 returns the full two-dimensional DFT of a real matrix.
func FullSpectrum2(signal [][]float64) ([][]complex128, error) {
	if _, _, err := matrixShape("forward2", signal); err != nil {
		return nil, err
	}
	data := make([][]complex128, len(signal))
	for i, row := range signal {
		data[i] = make([]complex128, len(row))
		for j, v := range row {
			data[i][j] = complex(v, 0)
		}
	}
	if err := fft2(data, false); err != nil {
		return nil, err
	}
	return data, nil
}

// Forward2 returns the two-dimensional DFT of a rows x cols real matrix with
// the column axis truncated to cols/2+1 coefficients. All rows are kept.
func Forward2(signal [][]float64) ([][]complex128, error) {
	full, err := FullSpectrum2(signal)
	if err != nil {
		return nil, err
	}
	mrfft := HalfLen(len(signal[0]))
	out := make([][]complex128, len(full))
	for i, row := range full {
		out[i] = row[:mrfft:mrfft]
	}
	return out, nil
}

// Expand2 reconstructs the full rows x m spectrum from the output of
// [Forward2]. Every row must hold m/2+1 coefficients.
//
// The two-dimensional symmetry X[k1][k2] = conj(X[-k1][-k2]) couples both
// axes, so after the per-row completion each reconstructed column has its
// rows 1..rows-1 reversed.
func Expand2(half [][]complex128, m int) ([][]complex128, error) {
	if err := checkSize("expand2", m); err != nil {
		return nil, err
	}
	if err := checkSize("expand2", len(half)); err != nil {
		return nil, err
	}
	for i, row := range half {
		if err := checkHalf("expand2", i, len(row), m); err != nil {
			return nil, err
		}
	}

	rows := len(half)
	mrfft := HalfLen(m)
	mcomplex := (m - 1) / 2

	full := make([][]complex128, rows)
	for i, row := range half {
		full[i] = make([]complex128, m)
		expandInto(full[i], row)
	}

	for j := mrfft; j < mrfft+mcomplex; j++ {
		for lo, hi := 1, rows-1; lo < hi; lo, hi = lo+1, hi-1 {
			full[lo][j], full[hi][j] = full[hi][j], full[lo][j]
		}
	}
	return full, nil
}

// Inverse2 returns the real rows x m matrix whose truncated two-dimensional
// spectrum is half. The imaginary residue is discarded.
func Inverse2(half [][]complex128, m int) ([][]float64, error) {
	full, err := Expand2(half, m)
	if err != nil {
		return nil, err
	}
	if err := fft2(full, true); err != nil {
		return nil, err
	}
	return spectrum.RealMatrix(full), nil
}
