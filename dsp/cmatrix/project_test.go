package cmatrix

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"
)

func TestProjectHermitianInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))

	for trial := range 50 {
		h := ProjectHermitian(randomMatrix(rng))

		if err := HermitianError(h); err != 0 {
			t.Fatalf("trial %d: hermitian error %v, want exactly 0", trial, err)
		}
		if tr := cmplx.Abs(h.Trace()); tr > 1e-12 {
			t.Fatalf("trial %d: trace = %v, want 0", trial, tr)
		}
		if n := h.FrobeniusNorm(); math.Abs(n-1) > 1e-12 {
			t.Fatalf("trial %d: norm = %v, want 1", trial, n)
		}
	}
}

func TestProjectHermitianIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))

	for trial := range 50 {
		once := ProjectHermitian(randomMatrix(rng))
		twice := ProjectHermitian(once)
		if d := once.MaxAbsDiff(twice); d > 1e-5 {
			t.Fatalf("trial %d: projection not idempotent, diff %v", trial, d)
		}
	}
}

func TestProjectHermitianOfIdentityShift(t *testing.T) {
	// Adding a multiple of the identity must not change the projection.
	rng := rand.New(rand.NewPCG(11, 12))
	m := randomMatrix(rng)

	a := ProjectHermitian(m)
	b := ProjectHermitian(m.Add(Identity().Scale(3 - 2i)))
	if d := a.MaxAbsDiff(b); d > 1e-12 {
		t.Fatalf("identity shift changed projection by %v", d)
	}
}

func TestProjectUnitary(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))

	for trial := range 50 {
		u := ProjectUnitary(randomMatrix(rng))
		if err := UnitarityError(u); err >= 1e-4 {
			t.Fatalf("trial %d: unitarity error %v", trial, err)
		}
		if err := UnitarityError(u); err > 1e-12 {
			t.Fatalf("trial %d: float64 projection unitarity error %v", trial, err)
		}
	}
}

func TestProjectUnitaryFixesUnitary(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	u := ProjectUnitary(randomMatrix(rng))

	if d := ProjectUnitary(u).MaxAbsDiff(u); d > 1e-12 {
		t.Fatalf("unitary input moved by %v", d)
	}
}

func TestProjectUnitaryIsClosest(t *testing.T) {
	// The polar factor of a scaled unitary is the unitary itself.
	rng := rand.New(rand.NewPCG(17, 18))
	u := ProjectUnitary(randomMatrix(rng))

	if d := ProjectUnitary(u.Scale(5)).MaxAbsDiff(u); d > 1e-12 {
		t.Fatalf("polar factor of 5u differs from u by %v", d)
	}
}

func TestSVDReconstructs(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 20))
	m := randomMatrix(rng)

	u, s, v := SVD(m)

	var sigma Matrix
	for i := range Dim {
		if s[i] < 0 {
			t.Fatalf("negative singular value %v", s[i])
		}
		sigma[i][i] = complex(s[i], 0)
	}

	if d := u.Mul(sigma).Mul(v.Adjoint()).MaxAbsDiff(m); d > 1e-10 {
		t.Fatalf("u*s*vᴴ differs from m by %v", d)
	}
	if err := UnitarityError(u); err > 1e-12 {
		t.Fatalf("u unitarity error %v", err)
	}
	if err := UnitarityError(v); err > 1e-12 {
		t.Fatalf("v unitarity error %v", err)
	}
}

func TestSVDDiagonal(t *testing.T) {
	var m Matrix
	for i := range Dim {
		m[i][i] = complex(float64(i+1), 0)
	}

	_, s, _ := SVD(m)
	for i := range Dim {
		if math.Abs(s[i]-float64(i+1)) > 1e-12 {
			t.Fatalf("s[%d] = %v, want %d", i, s[i], i+1)
		}
	}
}

func BenchmarkProjectUnitary(b *testing.B) {
	rng := rand.New(rand.NewPCG(21, 22))
	m := randomMatrix(rng)

	b.ReportAllocs()
	for b.Loop() {
		_ = ProjectUnitary(m)
	}
}

func BenchmarkMul(b *testing.B) {
	rng := rand.New(rand.NewPCG(23, 24))
	x := randomMatrix(rng)
	y := randomMatrix(rng)

	b.ReportAllocs()
	for b.Loop() {
		x = x.Mul(y).Scale(0.5)
	}
}
