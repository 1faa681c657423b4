package cmatrix

import (
	"math"
	"math/cmplx"
)

// Dim is the fixed matrix dimension.
const Dim = 7

// Matrix is a square complex matrix stored by value.
//
// All operations return new values and never allocate, so matrices can live
// on the stack and be copied freely in per-block processing.
type Matrix [Dim][Dim]complex128

// Identity returns the identity matrix.
func Identity() Matrix {
	var m Matrix
	for i := range Dim {
		m[i][i] = 1
	}
	return m
}

// Add returns m + o.
func (m Matrix) Add(o Matrix) Matrix {
	for i := range Dim {
		for j := range Dim {
			m[i][j] += o[i][j]
		}
	}
	return m
}

// Sub returns m - o.
func (m Matrix) Sub(o Matrix) Matrix {
	for i := range Dim {
		for j := range Dim {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

// Scale returns s * m.
func (m Matrix) Scale(s complex128) Matrix {
	for i := range Dim {
		for j := range Dim {
			m[i][j] *= s
		}
	}
	return m
}

// Mul returns the matrix product m * o.
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for i := range Dim {
		for k := range Dim {
			a := m[i][k]
			if a == 0 {
				continue
			}
			for j := range Dim {
				out[i][j] += a * o[k][j]
			}
		}
	}
	return out
}

// Adjoint returns the conjugate transpose of m.
func (m Matrix) Adjoint() Matrix {
	var out Matrix
	for i := range Dim {
		for j := range Dim {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// Trace returns the sum of the diagonal entries.
func (m Matrix) Trace() complex128 {
	var t complex128
	for i := range Dim {
		t += m[i][i]
	}
	return t
}

// FrobeniusInner returns trace(adjoint(m) * o).
func (m Matrix) FrobeniusInner(o Matrix) complex128 {
	var s complex128
	for i := range Dim {
		for j := range Dim {
			s += cmplx.Conj(m[i][j]) * o[i][j]
		}
	}
	return s
}

// FrobeniusNorm returns sqrt(trace(adjoint(m) * m)).
func (m Matrix) FrobeniusNorm() float64 {
	return math.Sqrt(real(m.FrobeniusInner(m)))
}

// Commutator returns m*o - o*m.
func (m Matrix) Commutator(o Matrix) Matrix {
	return m.Mul(o).Sub(o.Mul(m))
}

// Col returns column j as a vector.
func (m Matrix) Col(j int) [Dim]complex128 {
	var v [Dim]complex128
	for i := range Dim {
		v[i] = m[i][j]
	}
	return v
}

// MaxAbsDiff returns the largest entrywise modulus of m - o.
func (m Matrix) MaxAbsDiff(o Matrix) float64 {
	maxDiff := 0.0
	for i := range Dim {
		for j := range Dim {
			if d := cmplx.Abs(m[i][j] - o[i][j]); d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff
}

// IsFinite reports whether every entry of m is finite.
func (m Matrix) IsFinite() bool {
	for i := range Dim {
		for j := range Dim {
			if cmplx.IsNaN(m[i][j]) || cmplx.IsInf(m[i][j]) {
				return false
			}
		}
	}
	return true
}
