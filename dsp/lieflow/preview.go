package lieflow

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-lieflow/dsp/cmatrix"
)

// PreviewCycles is the number of ratio-1 cycles spanned by one preview, so
// the oscillator with ratio r lands exactly on FFT bin PreviewCycles*r.
const PreviewCycles = 4

// RenderPreview renders a static waveform of unit into dst.
//
// A fresh oscillator bank is stepped at 4*2π/len(dst) radians per sample,
// so the ratio-1 oscillator repeats exactly across the buffer. Nothing but
// unit is read.
func RenderPreview(unit cmatrix.Matrix, dst []float32) {
	renderPreview(unit, 1, dst)
}

func renderPreview(unit cmatrix.Matrix, rot complex128, dst []float32) {
	if len(dst) == 0 {
		return
	}
	b := newBank(PreviewCycles * 2 * math.Pi / float64(len(dst)))
	w := unit.Col(0)
	for n := range dst {
		s := b.next(&w)
		dst[n] = float32(real(s*rot) / Divider)
	}
}

// RenderPreview renders static previews of the current state into left and
// right without modifying the engine. The buffers must have equal length;
// otherwise it panics with [ErrLengthMismatch].
func (e *Engine) RenderPreview(left, right []float32) {
	if len(left) != len(right) {
		panic(fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(left), len(right)))
	}

	if e.cfg.Mode == PhaseCoupled {
		unit := e.channels[0].flow.unit
		renderPreview(unit, 1, left)
		renderPreview(unit, cmplx.Exp(complex(0, e.phase)), right)
		return
	}
	renderPreview(e.channels[0].flow.unit, 1, left)
	renderPreview(e.channels[1].flow.unit, 1, right)
}
