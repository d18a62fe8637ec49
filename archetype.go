package flywheel

import (
	"math/bits"
	"strconv"
	"strings"
)

// Archetype represents the set of component IDs held by an entity. It is a
// growable bitset: segments are appended as higher component IDs are added and
// are never released, so Reset can recycle the storage of a destroyed entity.
//
// The zero value is an empty archetype ready to use.
type Archetype struct {
	words []uint64 // bit segments, bit i of words[i/64] set if ID i is present
	count int      // highest component ID ever added + 1
}

// NewArchetype creates an archetype holding the given component IDs.
func NewArchetype(ids ...ComponentID) Archetype {
	var a Archetype
	for _, id := range ids {
		a.Add(id)
	}
	return a
}

// Add sets the bit of the given component ID, growing the archetype by whole
// segments when needed.
func (a *Archetype) Add(id ComponentID) {
	bit := uint32(id)
	if a.count <= int(bit) {
		a.count = int(bit) + 1
		if need := wordsFor(a.count); need > len(a.words) {
			a.words = extendSlice(a.words, need-len(a.words))
		}
	}
	a.words[wordIndex(bit)] |= bitOffset(bit)
}

// Has reports whether the archetype holds the given component ID.
func (a *Archetype) Has(id ComponentID) bool {
	bit := uint32(id)
	return int(bit) < a.count && a.words[wordIndex(bit)]&bitOffset(bit) != 0
}

// Remove clears the bit of the given component ID. IDs past the end of the
// archetype are ignored.
func (a *Archetype) Remove(id ComponentID) {
	bit := uint32(id)
	if int(bit) < a.count {
		a.words[wordIndex(bit)] &^= bitOffset(bit)
	}
}

// Reset clears every bit without releasing the underlying storage.
func (a *Archetype) Reset() {
	clear(a.words)
}

// IsSubsetOf reports whether every component ID in a is also in other.
func (a *Archetype) IsSubsetOf(other *Archetype) bool {
	return containsWords(other.words, a.words)
}

// IsSupersetOf reports whether a holds every component ID in other.
func (a *Archetype) IsSupersetOf(other *Archetype) bool {
	return containsWords(a.words, other.words)
}

// HasCommonWith reports whether a and other share at least one component ID.
func (a *Archetype) HasCommonWith(other *Archetype) bool {
	return intersectsWords(a.words, other.words)
}

// Equal reports whether a and other hold exactly the same component IDs.
// Trailing empty segments do not affect the result.
func (a *Archetype) Equal(other *Archetype) bool {
	return equalWords(a.words, other.words)
}

// Count returns the highest component ID ever added plus one.
func (a *Archetype) Count() int {
	return a.count
}

// Len returns the number of component IDs currently held.
func (a *Archetype) Len() int {
	n := 0
	for _, w := range a.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no component ID is held.
func (a *Archetype) IsEmpty() bool {
	for _, w := range a.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Each calls fn for every held component ID in ascending order.
func (a *Archetype) Each(fn func(id ComponentID)) {
	for i, w := range a.words {
		for w != 0 {
			pos := bits.TrailingZeros64(w)
			fn(ComponentID(i*bitsPerWord + pos))
			w &= w - 1
		}
	}
}

// Clone returns an independent copy of the archetype.
func (a *Archetype) Clone() Archetype {
	c := Archetype{count: a.count}
	if len(a.words) > 0 {
		c.words = make([]uint64, len(a.words))
		copy(c.words, a.words)
	}
	return c
}

func (a *Archetype) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	a.Each(func(id ComponentID) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	})
	sb.WriteByte('}')
	return sb.String()
}
