package core

// EnsureLen32 returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen32(buf []float32, n int) []float32 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float32, n)
}

// Widen converts src into dst as float64 and returns the number of
// converted elements.
func Widen(dst []float64, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}
	return n
}

// Narrow converts src into dst as float32 and returns the number of
// converted elements.
func Narrow(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i])
	}
	return n
}
