// Package cmatrix provides fixed-size complex matrices and the two
// projections used by the synthesis engine: onto traceless unit-norm
// Hermitian matrices and onto unitary matrices (polar factor via SVD).
//
// Matrices are value types of dimension [Dim] so that per-block arithmetic
// stays allocation-free.
package cmatrix
