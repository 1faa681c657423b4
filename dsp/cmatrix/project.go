package cmatrix

// ProjectHermitian returns the traceless Hermitian part of m scaled to unit
// Frobenius norm.
//
// The result is Hermitian and traceless by construction. A zero-norm input
// yields non-finite entries; random inputs hit it with probability zero.
func ProjectHermitian(m Matrix) Matrix {
	h := m.Add(m.Adjoint()).Scale(0.5)
	h = h.Sub(Identity().Scale(h.Trace() / Dim))
	return h.Scale(complex(1/h.FrobeniusNorm(), 0))
}

// ProjectUnitary returns the unitary matrix closest to m in Frobenius
// distance, the polar factor U*adjoint(V) of the SVD m = U*S*adjoint(V).
func ProjectUnitary(m Matrix) Matrix {
	u, _, v := SVD(m)
	return u.Mul(v.Adjoint())
}

// UnitarityError returns the largest entrywise deviation of adjoint(m)*m
// from the identity.
func UnitarityError(m Matrix) float64 {
	return m.Adjoint().Mul(m).MaxAbsDiff(Identity())
}

// HermitianError returns the largest entrywise deviation of m from its
// adjoint.
func HermitianError(m Matrix) float64 {
	return m.MaxAbsDiff(m.Adjoint())
}
