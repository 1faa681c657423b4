// Package spectrum analyzes rendered synthesizer output in the frequency
// domain.
//
// FFTs are computed with algo-fft plans and magnitudes with algo-vecmath.
// An [Analyzer] owns its plan and scratch buffers, so repeated analysis of
// equally sized buffers does not allocate.
package spectrum
