package flywheel

// wordIndex returns the segment holding the given bit.
func wordIndex(bit uint32) int {
	return int(bit >> 6) // (bit / 64)
}

// bitOffset returns the position of the given bit inside its segment.
func bitOffset(bit uint32) uint64 {
	return uint64(1) << (bit & 63)
}

// wordsFor returns how many segments are needed to hold count bits.
func wordsFor(count int) int {
	return (count + bitsPerWord - 1) / bitsPerWord
}

// wordAt returns segment i, treating segments past the end as zero.
func wordAt(words []uint64, i int) uint64 {
	if i < len(words) {
		return words[i]
	}
	return 0
}

// containsWords checks if every bit set in sub is also set in m. Segments
// missing from either side are treated as all-zero.
func containsWords(m, sub []uint64) bool {
	for i, w := range sub {
		if w&^wordAt(m, i) != 0 {
			return false
		}
	}
	return true
}

// intersectsWords checks if m and other share at least one set bit.
func intersectsWords(m, other []uint64) bool {
	n := min(len(m), len(other))
	for i := 0; i < n; i++ {
		if m[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// equalWords compares two bit patterns, ignoring trailing zero segments.
func equalWords(a, b []uint64) bool {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if wordAt(a, i) != wordAt(b, i) {
			return false
		}
	}
	return true
}
