// Package core holds the numeric glue shared by the transform packages:
// closeness predicates, assertion helpers that report failures as errors,
// row-major reshape and ravel helpers, gonum matrix adapters and matrix
// pretty-printing.
package core
