// Package host exposes engines to foreign hosts through opaque integer
// handles.
//
// A [Registry] owns every engine it creates. Handles are issued on Create,
// removed on Release, and never reused. Misuse (an unknown or released
// handle, a non-positive sample rate, wrong buffer lengths) is an integration
// bug and panics instead of returning an error.
package host

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-lieflow/dsp/lieflow"
)

var ErrUnknownHandle = errors.New("host: unknown or released handle")

// Handle identifies an engine owned by a Registry. The zero Handle is never
// issued.
type Handle uint32

// Registry maps handles to the engines it owns.
//
// The map itself is safe for concurrent use. Calls that drive the same
// handle must still be serialized by the caller.
type Registry struct {
	mu      sync.Mutex
	src     lieflow.Source
	opts    []lieflow.Option
	next    Handle
	engines map[Handle]*lieflow.Engine
}

// NewRegistry returns a registry whose engines are seeded from src, one value
// per Create. Extra options apply to every engine before the per-call sample
// rate and stereo mode.
func NewRegistry(src lieflow.Source, opts ...lieflow.Option) *Registry {
	return &Registry{
		src:     src,
		opts:    opts,
		engines: make(map[Handle]*lieflow.Engine),
	}
}

// Create builds a new engine and returns its handle.
func (r *Registry) Create(sampleRate int, mode lieflow.StereoMode) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	opts := make([]lieflow.Option, 0, len(r.opts)+2)
	opts = append(opts, r.opts...)
	opts = append(opts, lieflow.WithSampleRate(sampleRate), lieflow.WithStereoMode(mode))

	e, err := lieflow.New(r.src, opts...)
	if err != nil {
		panic(fmt.Errorf("host: create: %w", err))
	}

	r.next++
	h := r.next
	r.engines[h] = e
	return h
}

// Engine returns the engine behind h.
func (r *Registry) Engine(h Handle) *lieflow.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.engines[h]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownHandle, h))
	}
	return e
}

// Process renders the next block of h into left and right.
func (r *Registry) Process(h Handle, left, right []float32) {
	r.Engine(h).Process(left, right)
}

// RenderPreview renders a static preview of h without changing its state.
func (r *Registry) RenderPreview(h Handle, left, right []float32) {
	r.Engine(h).RenderPreview(left, right)
}

// Release drops the engine behind h. The handle must not be used again.
func (r *Registry) Release(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.engines[h]; !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownHandle, h))
	}
	delete(r.engines, h)
}

// Len returns the number of live engines.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}
