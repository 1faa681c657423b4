package lieflow

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-lieflow/dsp/cmatrix"
)

// Levels is the depth of the Hermitian stack.
const Levels = 3

// flow is the matrix state of one channel context.
type flow struct {
	herm [Levels]cmatrix.Matrix
	unit cmatrix.Matrix
}

func newFlow(rng *rand.Rand) flow {
	var f flow
	for k := range f.herm {
		f.herm[k] = randomHermitian(rng)
	}
	f.unit = randomUnitary(rng)
	return f
}

// evolve advances the nested commutator flow by one explicit Euler step.
// Each level is driven by the already updated level below it, and the top
// level acts on unit as a Hamiltonian.
func (f *flow) evolve(dt float64) {
	idt := complex(0, dt)
	for k := 1; k < Levels; k++ {
		f.herm[k] = f.herm[k].Add(f.herm[k-1].Commutator(f.herm[k]).Scale(idt))
	}
	f.unit = f.unit.Add(f.herm[Levels-1].Mul(f.unit).Scale(idt))
}

// normalize re-projects every matrix onto its manifold.
func (f *flow) normalize() {
	for k := range f.herm {
		f.herm[k] = cmatrix.ProjectHermitian(f.herm[k])
	}
	f.unit = cmatrix.ProjectUnitary(f.unit)
}

// mutate replaces the bottom level with a fresh random Hermitian matrix.
func (f *flow) mutate(rng *rand.Rand) {
	f.herm[0] = randomHermitian(rng)
}
