package dither

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	minBitDepth = 8
	maxBitDepth = 32
)

// Quantizer maps samples in [-1, 1] to signed integers of a fixed bit depth.
// Results saturate at ±(2^(bits-1)-1) so the range stays symmetric.
type Quantizer struct {
	bitDepth  int
	typ       Type
	rng       *rand.Rand
	fullScale float64
	clipped   int
}

// NewQuantizer returns a quantizer for bits-wide output. The dither noise
// is drawn from a PCG stream seeded with seed so renders are repeatable.
func NewQuantizer(bits int, typ Type, seed uint64) (*Quantizer, error) {
	if bits < minBitDepth || bits > maxBitDepth {
		return nil, fmt.Errorf("%w: bit depth must be in [%d, %d]: %d",
			ErrInvalidOption, minBitDepth, maxBitDepth, bits)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: dither type %d", ErrInvalidOption, typ)
	}
	return &Quantizer{
		bitDepth:  bits,
		typ:       typ,
		rng:       rand.New(rand.NewPCG(seed, ^seed)),
		fullScale: math.Exp2(float64(bits-1)) - 1,
	}, nil
}

// BitDepth returns the output bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// Type returns the dither type.
func (q *Quantizer) Type() Type { return q.typ }

// FullScale returns the largest output magnitude.
func (q *Quantizer) FullScale() int { return int(q.fullScale) }

// Clipped returns how many samples have saturated so far.
func (q *Quantizer) Clipped() int { return q.clipped }

// Sample quantizes one sample. NaN maps to zero.
func (q *Quantizer) Sample(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	v := math.Round(x*q.fullScale + q.noise())
	switch {
	case v > q.fullScale:
		q.clipped++
		v = q.fullScale
	case v < -q.fullScale:
		q.clipped++
		v = -q.fullScale
	}
	return int(v)
}

// Block quantizes src into dst, growing dst if needed, and returns it.
func (q *Quantizer) Block(dst []int, src []float64) []int {
	if cap(dst) < len(src) {
		dst = make([]int, len(src))
	}
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = q.Sample(x)
	}
	return dst
}

func (q *Quantizer) noise() float64 {
	switch q.typ {
	case Rectangular:
		return q.rng.Float64() - 0.5
	case Triangular:
		return q.rng.Float64() - q.rng.Float64()
	default:
		return 0
	}
}
