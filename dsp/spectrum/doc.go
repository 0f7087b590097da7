// Package spectrum provides complex-number helpers for spectra produced by
// the transforms in dsp/rfft.
//
// It covers conjugation of scalars, vectors and matrices, splitting complex
// data into real and imaginary parts, magnitude and power (SIMD-accelerated
// through algo-vecmath), Hermitian-symmetry checks, and single-bin DFT
// evaluation with the Goertzel recurrence.
package spectrum
