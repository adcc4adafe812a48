package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[S ~[]E, E any](buf S, n int) S {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make(S, n)
}
