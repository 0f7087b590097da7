// Package special provides truncated Jacobi theta series and the complete
// elliptic integrals used to relate them to an elliptic modulus.
//
// Theta(z, q) sums the series 1 + 2 sum q^(k^2) cos(2 pi k z); it is the
// building block of the periodic heat kernel in stats/gp.
package special
