package flywheel

// extendSlice extends a slice by n zeroed elements, reallocating if necessary.
func extendSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		s = s[:newLen]
		clear(s[newLen-n:])
		return s
	}
	newCap := max(2*cap(s), newLen)
	ns := make([]T, newLen, newCap)
	copy(ns, s)
	return ns
}

// growTo extends s with zeroed elements until index i is addressable.
func growTo[T any](s []T, i int) []T {
	if i < len(s) {
		return s
	}
	return extendSlice(s, i+1-len(s))
}
