// Package rfft implements real-input discrete Fourier transforms that store
// only the non-redundant half of the spectrum.
//
// The DFT of a real signal of length n is Hermitian symmetric: the coefficient
// at frequency k is the complex conjugate of the coefficient at n-k. The
// functions in this package therefore keep only the first n/2+1 coefficients
// and reconstruct the remainder on demand.
//
// # Usage
//
// One-dimensional transforms:
//
//	half, err := rfft.Forward(signal)        // len(half) == len(signal)/2+1
//	full, err := rfft.Expand(half, n)        // Hermitian completion to length n
//	signal, err := rfft.Inverse(half, n)     // real inverse transform
//
// Two-dimensional transforms truncate the last (column) axis only:
//
//	half, err := rfft.Forward2(image)        // rows x (cols/2+1)
//	image, err := rfft.Inverse2(half, cols)
//
// The signal length must be supplied to the inverse transforms because a
// half spectrum of k coefficients belongs to signals of length 2k-2 and 2k-1
// alike. Half spectra of the wrong length are rejected with an error that
// wraps [ErrLengthMismatch]; use errors.As with [*LengthError] to read the
// expected and actual lengths.
//
// # Packing
//
// [Unpack] and [Pack] convert a half spectrum to and from a real vector of
// exactly n values (real parts first, then the imaginary parts that are not
// forced to zero by symmetry). [Unpack2] and [Pack2] do the same for the
// two-dimensional layout. These are the coordinates used by the Fourier-domain
// Gaussian process transforms in stats/gp.
//
// # Backends
//
// Power-of-two lengths run on algo-fft plans. Every other length runs on
// gonum's FFTPACK port, so every length n >= 1 is accepted. Plans are pooled per length; all functions are safe for
// concurrent use and return freshly allocated results.
package rfft
