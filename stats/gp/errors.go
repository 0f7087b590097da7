package gp

import "errors"

// Errors returned by the transforms.
var (
	ErrShapeMismatch    = errors.New("gp: shape mismatch")
	ErrInvalidSize      = errors.New("gp: invalid size")
	ErrInvalidParameter = errors.New("gp: invalid kernel parameter")
)
