// Package hashset implements open-addressing hash sets over generic
// comparable keys, using linear probing. Set is the Robin-Hood
// layout (§4.1.B of the design): instead of a parallel boolean
// presence array, the allocation side array caches each resident key's
// initial probe slot, which lets insert reorder on collision and lets
// lookups short-circuit a miss before reaching an empty slot.
package hashset

import (
	"github.com/vsonnier/hppc/hash"
	"github.com/vsonnier/hppc/iterpool"
	"github.com/vsonnier/hppc/sizing"
)

const iteratorPoolSize = 4

// Set is a Robin-Hood open-addressing hash set over comparable keys.
// The zero value is not usable; construct with New or NewDefault.
type Set[K comparable] struct {
	keys   []K
	alloc  []int // -1 means empty; otherwise the key's initial probe slot
	hashFn func(K) uint32

	assigned   int
	resizeAt   int
	loadFactor float64
	lastSlot   int

	pool *iterpool.Pool[*Iterator[K]]
}

// NewDefault creates a Robin-Hood set with sizing.DefaultCapacity and
// sizing.DefaultLoadFactor.
func NewDefault[K comparable](hashFn func(K) uint32) *Set[K] {
	s, err := New(hashFn, sizing.DefaultCapacity, sizing.DefaultLoadFactor)
	if err != nil {
		panic(err)
	}
	return s
}

// New creates a Robin-Hood set sized to hold initialCapacity elements
// without rehashing, at the given loadFactor.
func New[K comparable](hashFn func(K) uint32, initialCapacity int, loadFactor float64) (*Set[K], error) {
	if err := sizing.Validate(initialCapacity, loadFactor); err != nil {
		return nil, err
	}
	s := &Set[K]{hashFn: hashFn, loadFactor: loadFactor, lastSlot: -1}
	s.allocateBuffers(sizing.InternalCapacity(initialCapacity, loadFactor))
	s.pool = iterpool.New(iteratorPoolSize,
		func() *Iterator[K] { return &Iterator[K]{} },
		func(it *Iterator[K]) { it.set = nil },
	)
	return s, nil
}

func (s *Set[K]) allocateBuffers(capacity int) {
	alloc := make([]int, capacity)
	for i := range alloc {
		alloc[i] = -1
	}
	s.keys = make([]K, capacity)
	s.alloc = alloc
	s.resizeAt = sizing.ResizeAt(capacity, s.loadFactor)
}

func (s *Set[K]) slotFor(k K) int {
	mask := len(s.keys) - 1
	return int(hash.Mix32(s.hashFn(k))) & mask
}

// probeDistance is the forward cyclic distance from a key's natural
// home (its cached initial slot) to the slot it currently occupies.
func probeDistance(slot, initialSlot, capacity int) int {
	if slot < initialSlot {
		return slot + capacity - initialSlot
	}
	return slot - initialSlot
}

// Add inserts k, returning true iff it was not already present.
func (s *Set[K]) Add(k K) bool {
	mask := len(s.keys) - 1
	slot := s.slotFor(k)
	initialSlot := slot
	dist := 0

	for s.alloc[slot] != -1 {
		if s.keys[slot] == k {
			return false
		}

		existingDist := probeDistance(slot, s.alloc[slot], len(s.keys))
		// When this insert will grow the table, the old buffers are left
		// untouched: expandAndAdd reorders every key on reinsertion anyway.
		if dist > existingDist && s.assigned != s.resizeAt {
			s.keys[slot], k = k, s.keys[slot]
			s.alloc[slot], initialSlot = initialSlot, s.alloc[slot]
			dist = existingDist
		}

		slot = (slot + 1) & mask
		dist++
	}

	if s.assigned == s.resizeAt {
		s.expandAndAdd(k, slot)
	} else {
		s.assigned++
		s.alloc[slot] = initialSlot
		s.keys[slot] = k
	}
	return true
}

// expandAndAdd grows the table and reinserts every resident key,
// including the one that triggered the grow, which is parked at
// freeSlot in the old buffer before the old buffer is walked backwards.
// Growing first and mutating only after it succeeds keeps the set's
// pre-resize state intact if allocation panics (spec.md §7).
func (s *Set[K]) expandAndAdd(pendingKey K, freeSlot int) {
	oldKeys := s.keys
	oldAlloc := s.alloc

	s.allocateBuffers(sizing.NextCapacity(len(s.keys)))
	s.assigned++

	// Any non -1 value marks the slot allocated for the backward scan
	// below; its numeric value is never consulted for this slot again.
	oldAlloc[freeSlot] = 1
	oldKeys[freeSlot] = pendingKey

	mask := len(s.keys) - 1
	keys := s.keys
	alloc := s.alloc

	for i := len(oldKeys) - 1; i >= 0; i-- {
		if oldAlloc[i] == -1 {
			continue
		}
		e := oldKeys[i]
		slot := s.slotFor(e)
		initialSlot := slot
		dist := 0

		for alloc[slot] != -1 {
			existingDist := probeDistance(slot, alloc[slot], len(keys))
			if dist > existingDist {
				keys[slot], e = e, keys[slot]
				alloc[slot], initialSlot = initialSlot, alloc[slot]
				dist = existingDist
			}
			slot = (slot + 1) & mask
			dist++
		}

		alloc[slot] = initialSlot
		keys[slot] = e
	}
}

// Contains reports whether k is present. On a hit, the matching slot is
// cached so a following LastKey call can retrieve the stored instance.
func (s *Set[K]) Contains(k K) bool {
	mask := len(s.keys) - 1
	slot := s.slotFor(k)
	dist := 0

	for s.alloc[slot] != -1 && dist <= probeDistance(slot, s.alloc[slot], len(s.keys)) {
		if s.keys[slot] == k {
			s.lastSlot = slot
			return true
		}
		slot = (slot + 1) & mask
		dist++
	}

	s.lastSlot = -1
	return false
}

// LastKey returns the key stored at the slot found by the most recent
// successful Contains call. ok is false if Contains was never called or
// its last call returned false.
func (s *Set[K]) LastKey() (k K, ok bool) {
	if s.lastSlot < 0 {
		return k, false
	}
	return s.keys[s.lastSlot], true
}

// Remove deletes k, returning true iff it was present.
func (s *Set[K]) Remove(k K) bool {
	mask := len(s.keys) - 1
	slot := s.slotFor(k)
	dist := 0

	for s.alloc[slot] != -1 && dist <= probeDistance(slot, s.alloc[slot], len(s.keys)) {
		if s.keys[slot] == k {
			s.assigned--
			s.shiftBack(slot)
			return true
		}
		slot = (slot + 1) & mask
		dist++
	}
	return false
}

// shiftBack pulls the cyclic backward shift described in spec.md §4.3,
// using the cached initial slot instead of recomputing a hash.
func (s *Set[K]) shiftBack(slot int) {
	mask := len(s.keys) - 1
	keys := s.keys
	alloc := s.alloc

	slotCurr := slot
	var slotPrev int
	for {
		slotPrev = slotCurr
		slotCurr = (slotCurr + 1) & mask

		for alloc[slotCurr] != -1 {
			home := alloc[slotCurr]
			if slotPrev <= slotCurr {
				if slotPrev >= home || home > slotCurr {
					break
				}
			} else {
				if slotPrev >= home && home > slotCurr {
					break
				}
			}
			slotCurr = (slotCurr + 1) & mask
		}

		if alloc[slotCurr] == -1 {
			break
		}

		keys[slotPrev] = keys[slotCurr]
		alloc[slotPrev] = alloc[slotCurr]
	}

	alloc[slotPrev] = -1
	var zero K
	keys[slotPrev] = zero
}

// RemoveAll removes every key for which match returns true, returning
// the number removed.
func (s *Set[K]) RemoveAll(match func(K) bool) int {
	before := s.assigned
	keys := s.keys
	alloc := s.alloc

	for i := 0; i < len(keys); {
		if alloc[i] != -1 && match(keys[i]) {
			s.assigned--
			s.shiftBack(i)
			// shiftBack may have pulled a different key into i; re-examine it.
			continue
		}
		i++
	}

	return before - s.assigned
}

// Clear empties the set while keeping its current capacity.
func (s *Set[K]) Clear() {
	s.assigned = 0
	s.lastSlot = -1
	for i := range s.alloc {
		s.alloc[i] = -1
	}
	var zero K
	for i := range s.keys {
		s.keys[i] = zero
	}
}

// Len returns the number of elements currently in the set.
func (s *Set[K]) Len() int {
	return s.assigned
}

// Cap mirrors the source's capacity(): the number of elements the set
// can hold before its next rehash, not the backing array length.
func (s *Set[K]) Cap() int {
	return s.resizeAt
}

// ForEach applies fn to every element in descending slot order, the
// direction that avoids reinforcing conflict chains if fn feeds another
// open-addressing container.
func (s *Set[K]) ForEach(fn func(K)) {
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.alloc[i] != -1 {
			fn(s.keys[i])
		}
	}
}

// ForEachWhile applies fn in descending slot order until it returns
// false.
func (s *Set[K]) ForEachWhile(fn func(K) bool) {
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.alloc[i] != -1 {
			if !fn(s.keys[i]) {
				return
			}
		}
	}
}

// ToSlice appends every element, in descending slot order, to dst and
// returns the result.
func (s *Set[K]) ToSlice(dst []K) []K {
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.alloc[i] != -1 {
			dst = append(dst, s.keys[i])
		}
	}
	return dst
}

// AddAll inserts every key produced by seq, returning the count of keys
// actually added (not already present).
func (s *Set[K]) AddAll(seq func(yield func(K) bool)) int {
	count := 0
	seq(func(k K) bool {
		if s.Add(k) {
			count++
		}
		return true
	})
	return count
}

// AddSlice is AddAll specialized for a slice argument.
func (s *Set[K]) AddSlice(ks []K) int {
	count := 0
	for _, k := range ks {
		if s.Add(k) {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of s.
func (s *Set[K]) Clone() *Set[K] {
	cloned, err := New(s.hashFn, s.Len(), s.loadFactor)
	if err != nil {
		panic(err)
	}
	cloned.AddSlice(s.ToSlice(nil))
	return cloned
}

// Hash returns a commutative, order-independent hash of the set's
// contents: the sum of the mixed hash of every present key.
func (s *Set[K]) Hash() uint32 {
	var h uint32
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.alloc[i] != -1 {
			h += hash.Mix32(s.hashFn(s.keys[i]))
		}
	}
	return h
}

// Equal reports whether s and other contain the same elements.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s == other {
		return true
	}
	if s.Len() != other.Len() {
		return false
	}
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.alloc[i] != -1 && !other.Contains(s.keys[i]) {
			return false
		}
	}
	return true
}

// Iterator is a live, poolable cursor over a Set's contents in
// descending slot order. Mutating the set during iteration invalidates
// the iterator's state without detection (spec.md §5).
type Iterator[K comparable] struct {
	set *Set[K]
	idx int
}

// Next advances the iterator, returning the next key and true, or the
// zero value and false once exhausted.
func (it *Iterator[K]) Next() (K, bool) {
	for it.idx > 0 {
		it.idx--
		if it.set.alloc[it.idx] != -1 {
			return it.set.keys[it.idx], true
		}
	}
	var zero K
	return zero, false
}

// Release returns the iterator to its set's pool.
func (it *Iterator[K]) Release() {
	s := it.set
	s.pool.Release(it)
}

// Iterator borrows an Iterator positioned before the first (highest
// index) element.
func (s *Set[K]) Iterator() *Iterator[K] {
	it := s.pool.Borrow()
	it.set = s
	it.idx = len(s.keys)
	return it
}
