package lieflow

import (
	"math/cmplx"

	"github.com/cwbudde/algo-lieflow/dsp/cmatrix"
)

// Ratios are the oscillator frequencies relative to the base frequency.
var Ratios = [cmatrix.Dim]float64{1, 1.25, 1.5, 2, 2.5, 3, 4}

// Three Newton refinements of sqrt(Dim) starting from 1. The truncated value
// sets the output amplitude and must not be replaced by math.Sqrt.
const (
	newton1 = (1.0 + cmatrix.Dim/1.0) / 2
	newton2 = (newton1 + cmatrix.Dim/newton1) / 2

	// Divider scales the projected oscillator sum to the output level.
	Divider = (newton2 + cmatrix.Dim/newton2) / 2
)

// bank is a set of rotating phasors at fixed ratios of one angular step.
type bank struct {
	cx   [cmatrix.Dim]complex128
	step [cmatrix.Dim]complex128
}

// newBank returns phasors at 1 advancing by ratio*angularStep radians per
// sample.
func newBank(angularStep float64) bank {
	var b bank
	for k, r := range Ratios {
		b.cx[k] = 1
		b.step[k] = cmplx.Exp(complex(0, r*angularStep))
	}
	return b
}

// next advances every phasor one sample and returns the phasors projected
// onto the weight vector w.
func (b *bank) next(w *[cmatrix.Dim]complex128) complex128 {
	var s complex128
	for k := range b.cx {
		b.cx[k] *= b.step[k]
		s += b.cx[k] * w[k]
	}
	return s
}

// normalize restores unit modulus without moving any phase.
func (b *bank) normalize() {
	for k, z := range b.cx {
		b.cx[k] = z / complex(cmplx.Abs(z), 0)
	}
}
