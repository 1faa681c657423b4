// Package level meters peak and RMS levels of stereo float32 output.
package level

import (
	"math"

	"github.com/cwbudde/algo-lieflow/dsp/core"
)

// Channel holds the levels of one channel.
//
//nolint:revive
type Channel struct {
	Peak    float64
	Peak_dB float64
	RMS     float64
	RMS_dB  float64
}

// Levels is the result of a metering run.
type Levels struct {
	Frames    int
	Left      Channel
	Right     Channel
	NonFinite int // NaN or Inf samples seen on either channel
}

// Meter accumulates levels across blocks.
type Meter struct {
	frames    int
	peak      [2]float64
	sumSq     [2]float64
	nonFinite int
}

// NewMeter creates an empty Meter.
func NewMeter() *Meter {
	return &Meter{}
}

// Update adds one stereo block. Only the first min(len(left), len(right))
// frames are used. Non-finite samples are counted and excluded from the
// levels.
func (m *Meter) Update(left, right []float32) {
	n := min(len(left), len(right))
	m.add(0, left[:n])
	m.add(1, right[:n])
	m.frames += n
}

// UpdateInterleaved adds interleaved stereo samples.
func (m *Meter) UpdateInterleaved(samples []float32) {
	n := len(samples) / 2
	for i := range n {
		m.sample(0, samples[2*i])
		m.sample(1, samples[2*i+1])
	}
	m.frames += n
}

func (m *Meter) add(ch int, x []float32) {
	for _, v := range x {
		m.sample(ch, v)
	}
}

func (m *Meter) sample(ch int, v float32) {
	x := float64(v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		m.nonFinite++
		return
	}
	if a := math.Abs(x); a > m.peak[ch] {
		m.peak[ch] = a
	}
	m.sumSq[ch] += x * x
}

// Result returns the levels accumulated so far.
func (m *Meter) Result() Levels {
	return Levels{
		Frames:    m.frames,
		Left:      m.channel(0),
		Right:     m.channel(1),
		NonFinite: m.nonFinite,
	}
}

func (m *Meter) channel(ch int) Channel {
	var rms float64
	if m.frames > 0 {
		rms = math.Sqrt(m.sumSq[ch] / float64(m.frames))
	}
	return Channel{
		Peak:    m.peak[ch],
		Peak_dB: core.LinearToDB(m.peak[ch]),
		RMS:     rms,
		RMS_dB:  core.LinearToDB(rms),
	}
}

// Peak returns the larger of both channel peaks.
func (l Levels) Peak() float64 {
	return math.Max(l.Left.Peak, l.Right.Peak)
}

// Reset clears all accumulated data.
func (m *Meter) Reset() {
	*m = Meter{}
}
