// Package lieflow implements a generative stereo synthesizer driven by a
// small complex-matrix dynamical system.
//
// Each channel context holds a stack of three traceless, unit-norm Hermitian
// 7x7 matrices and one unitary matrix. Once per 128-frame block the stack is
// advanced by a discrete nested-commutator (Lie bracket) flow whose top level
// rotates the unitary. Every sample, seven phasors at ratios
// 1, 1.25, 1.5, 2, 2.5, 3 and 4 of a base frequency are weighted by the
// unitary's first column and summed.
//
// Roughly once per second of audio the engine re-projects all matrices and
// phasors to undo integration drift and replaces the bottom of each stack with
// a fresh random matrix, which keeps the timbre moving.
//
// Output is deterministic for a given injected seed and configuration. It is
// not clipped.
package lieflow
