package lieflow

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-lieflow/dsp/cmatrix"
)

// randomMatrix fills a matrix row by row with uniform(-1, 1) real and
// imaginary parts, real part first.
func randomMatrix(rng *rand.Rand) cmatrix.Matrix {
	var m cmatrix.Matrix
	for i := range cmatrix.Dim {
		for j := range cmatrix.Dim {
			re := uniform(rng)
			im := uniform(rng)
			m[i][j] = complex(re, im)
		}
	}
	return m
}

func randomHermitian(rng *rand.Rand) cmatrix.Matrix {
	return cmatrix.ProjectHermitian(randomMatrix(rng))
}

func randomUnitary(rng *rand.Rand) cmatrix.Matrix {
	return cmatrix.ProjectUnitary(randomMatrix(rng))
}

func uniform(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}
