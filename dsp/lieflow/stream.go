package lieflow

import (
	"encoding/binary"
	"math"
	"sync"
)

// Stream adapts the fixed-size block engine to reads of any length.
// Frames left over from a block are returned by the next read.
type Stream struct {
	mu     sync.Mutex
	engine *Engine
	left   [BlockSize]float32
	right  [BlockSize]float32
	pos    int
}

// NewStream returns a Stream pulling blocks from e. The engine must not be
// driven by anything else while the stream is in use.
func NewStream(e *Engine) *Stream {
	return &Stream{engine: e, pos: BlockSize}
}

// ReadFrames fills dst with interleaved left/right samples and returns the
// number of samples written. A trailing odd sample is left untouched.
func (s *Stream) ReadFrames(dst []float32) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(dst) / 2
	for i := range frames {
		s.fill()
		dst[2*i] = s.left[s.pos]
		dst[2*i+1] = s.right[s.pos]
		s.pos++
	}
	return frames * 2
}

// Read implements io.Reader, producing interleaved stereo float32
// little-endian PCM. Only whole frames are written; it never fails.
func (s *Stream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(p) / 8
	for i := range frames {
		s.fill()
		binary.LittleEndian.PutUint32(p[8*i:], math.Float32bits(s.left[s.pos]))
		binary.LittleEndian.PutUint32(p[8*i+4:], math.Float32bits(s.right[s.pos]))
		s.pos++
	}
	return frames * 8, nil
}

func (s *Stream) fill() {
	if s.pos < BlockSize {
		return
	}
	s.engine.Process(s.left[:], s.right[:])
	s.pos = 0
}
