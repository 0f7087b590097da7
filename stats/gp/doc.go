// Package gp evaluates Gaussian processes on periodic grids in the Fourier
// domain.
//
// A stationary Gaussian process sampled on a periodic grid has a circulant
// covariance matrix, which the real FFT diagonalizes. The first row of the
// covariance fixes a per-coefficient scale ([RfftScale], [Rfft2Scale]).
// Dividing the half spectrum of a realization by this scale and flattening it
// with rfft.Unpack yields independent standard normal variables, so the log
// density costs O(n log n) instead of the O(n^3) of a dense Cholesky
// factorization.
//
//	cov, _ := gp.HeatCovariance(64, 1.0, 0.1, 1.0)
//	scale, _ := gp.RfftScale(cov)
//	lp, _ := gp.LogProbRfft(y, loc, scale)
//
// [TransformIrfft] runs the map in reverse and turns white noise into a
// realization of the process.
package gp
