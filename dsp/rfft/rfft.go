package rfft

import (
	"github.com/cwbudde/algo-gpfft/dsp/spectrum"
)

// FullSpectrum returns the full length-n DFT of a real signal.
func FullSpectrum(signal []float64) ([]complex128, error) {
	if err := checkSize("forward", len(signal)); err != nil {
		return nil, err
	}
	in := make([]complex128, len(signal))
	for i, v := range signal {
		in[i] = complex(v, 0)
	}
	return fft1(in, false)
}

// Forward returns the first len(signal)/2+1 coefficients of the DFT of
// signal. The remaining coefficients are the conjugates of these and can be
// recovered with [Expand].
func Forward(signal []float64) ([]complex128, error) {
	full, err := FullSpectrum(signal)
	if err != nil {
		return nil, err
	}
	return full[:HalfLen(len(signal)):HalfLen(len(signal))], nil
}

// Expand reconstructs the full length-n spectrum from its first n/2+1
// coefficients. It fails with a *LengthError if len(half) != n/2+1.
//
// Entries [0, n/2] are copied; entries (n/2, n) are the conjugates of
// half[1..(n-1)/2] in reverse order. For even n the Nyquist bin half[n/2] is
// its own mirror and is not duplicated.
func Expand(half []complex128, n int) ([]complex128, error) {
	if err := checkSize("expand", n); err != nil {
		return nil, err
	}
	if err := checkHalf("expand", -1, len(half), n); err != nil {
		return nil, err
	}
	out := make([]complex128, n)
	expandInto(out, half)
	return out, nil
}

// expandInto writes the Hermitian completion of half into dst, whose length
// is the signal length. len(half) must already be validated.
func expandInto(dst, half []complex128) {
	ncomplex := (len(dst) - 1) / 2
	copy(dst, half)
	mirror := spectrum.ConjugateVector(spectrum.Reverse(half[1 : 1+ncomplex]))
	copy(dst[len(half):], mirror)
}

// Inverse returns the real length-n signal whose half spectrum is half.
// The imaginary residue of the inverse transform is discarded; half is
// assumed to come from a real signal.
func Inverse(half []complex128, n int) ([]float64, error) {
	full, err := Expand(half, n)
	if err != nil {
		return nil, err
	}
	out, err := fft1(full, true)
	if err != nil {
		return nil, err
	}
	return spectrum.RealPart(out), nil
}
