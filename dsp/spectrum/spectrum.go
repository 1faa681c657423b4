package spectrum

import (
	"errors"
	"fmt"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var ErrInvalidSize = errors.New("spectrum: size must be a power of two >= 2")

// Analyzer computes magnitude spectra of fixed-size real blocks.
//
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	size int
	plan *algofft.Plan[complex128]

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
	mag []float64
}

// NewAnalyzer creates an analyzer for blocks of size samples.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	bins := size/2 + 1
	return &Analyzer{
		size: size,
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
		re:   make([]float64, bins),
		im:   make([]float64, bins),
		mag:  make([]float64, bins),
	}, nil
}

// Size returns the FFT length.
func (a *Analyzer) Size() int { return a.size }

// Magnitude returns |X[k]| for k = 0..Size()/2 of samples. Shorter input is
// zero-padded and longer input truncated.
//
// The returned slice is owned by the analyzer and overwritten by the next
// call.
func (a *Analyzer) Magnitude(samples []float32) ([]float64, error) {
	for i := range a.in {
		if i < len(samples) {
			a.in[i] = complex(float64(samples[i]), 0)
		} else {
			a.in[i] = 0
		}
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	for k := range a.mag {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Magnitude(a.mag, a.re, a.im)

	return a.mag, nil
}

// DominantBin returns the index of the largest non-DC bin, or -1 if mag has
// no such bin.
func DominantBin(mag []float64) int {
	best := -1
	for k := 1; k < len(mag); k++ {
		if best < 0 || mag[k] > mag[best] {
			best = k
		}
	}
	return best
}

// Peaks returns the non-DC local maxima whose magnitude is at least
// ratio times the largest non-DC bin, in ascending bin order.
func Peaks(mag []float64, ratio float64) []int {
	top := DominantBin(mag)
	if top < 0 || mag[top] == 0 {
		return nil
	}
	floor := ratio * mag[top]

	var peaks []int
	for k := 1; k < len(mag); k++ {
		if mag[k] < floor {
			continue
		}
		if k > 1 && mag[k-1] > mag[k] {
			continue
		}
		if k+1 < len(mag) && mag[k+1] > mag[k] {
			continue
		}
		peaks = append(peaks, k)
	}
	sort.Ints(peaks)
	return peaks
}

// BinFrequency returns the centre frequency of bin for an FFT of size
// samples at sampleRate.
func BinFrequency(bin, size int, sampleRate float64) float64 {
	if size <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(size)
}

// BinPeriod returns the period in samples of a component in bin.
func BinPeriod(bin, size int) float64 {
	if bin <= 0 {
		return 0
	}
	return float64(size) / float64(bin)
}
