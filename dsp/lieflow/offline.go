package lieflow

// Render runs e for the given number of frames and returns interleaved
// stereo samples. Frames past the last whole block are taken from a block
// whose remainder is discarded.
func Render(e *Engine, frames int) []float32 {
	if frames <= 0 {
		return nil
	}
	out := make([]float32, 2*frames)
	NewStream(e).ReadFrames(out)
	return out
}

// Deinterleave splits interleaved stereo into separate channels.
func Deinterleave(interleaved []float32) (left, right []float32) {
	n := len(interleaved) / 2
	left = make([]float32, n)
	right = make([]float32, n)
	for i := range n {
		left[i] = interleaved[2*i]
		right[i] = interleaved[2*i+1]
	}
	return left, right
}
