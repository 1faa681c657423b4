package cmatrix

import (
	"math"
	"math/cmplx"
)

const (
	jacobiTolerance = 1e-14
	jacobiMaxSweeps = 60
)

// SVD factors m as u * diag(s) * adjoint(v) using one-sided (Hestenes)
// Jacobi rotations on the columns of m.
//
// Singular values are returned unordered, in the column order the rotations
// leave them. Columns of u belonging to a zero singular value are left zero.
func SVD(m Matrix) (u Matrix, s [Dim]float64, v Matrix) {
	w := m
	v = Identity()

	for range jacobiMaxSweeps {
		rotated := false

		for p := 0; p < Dim-1; p++ {
			for q := p + 1; q < Dim; q++ {
				var (
					alpha, beta float64
					gamma       complex128
				)
				for i := range Dim {
					alpha += absSq(w[i][p])
					beta += absSq(w[i][q])
					gamma += cmplx.Conj(w[i][p]) * w[i][q]
				}

				g := cmplx.Abs(gamma)
				if g == 0 || g <= jacobiTolerance*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true

				// Rotate the pair in the plane where their inner product is real.
				phase := gamma / complex(g, 0)
				zeta := (beta - alpha) / (2 * g)
				t := 1 / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				if zeta < 0 {
					t = -t
				}
				c := 1 / math.Sqrt(1+t*t)
				sn := c * t

				rotateColumns(&w, p, q, c, sn, phase)
				rotateColumns(&v, p, q, c, sn, phase)
			}
		}

		if !rotated {
			break
		}
	}

	for j := range Dim {
		var norm float64
		for i := range Dim {
			norm += absSq(w[i][j])
		}
		norm = math.Sqrt(norm)
		s[j] = norm
		if norm == 0 {
			continue
		}
		inv := complex(1/norm, 0)
		for i := range Dim {
			u[i][j] = w[i][j] * inv
		}
	}

	return u, s, v
}

// rotateColumns applies
//
//	a_p' = c*a_p - s*conj(phase)*a_q
//	a_q' = s*phase*a_p + c*a_q
//
// which is a right multiplication by a unitary 2x2 block.
func rotateColumns(m *Matrix, p, q int, c, s float64, phase complex128) {
	cc := complex(c, 0)
	sp := complex(s, 0) * phase
	sm := complex(s, 0) * cmplx.Conj(phase)
	for i := range Dim {
		ap, aq := m[i][p], m[i][q]
		m[i][p] = cc*ap - sm*aq
		m[i][q] = sp*ap + cc*aq
	}
}

func absSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
