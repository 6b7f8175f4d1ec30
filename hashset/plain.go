package hashset

import (
	"github.com/vsonnier/hppc/hash"
	"github.com/vsonnier/hppc/iterpool"
	"github.com/vsonnier/hppc/sizing"
)

// PlainSet is the non-Robin-Hood open-addressing layout (§4.1.A): a
// parallel boolean array marks which slots are occupied, and insertion
// never reorders residents. Its side array holds a bool per slot where
// the Robin-Hood layout holds an int, but its probe-length variance is
// unbounded under adversarial hash clustering.
type PlainSet[K comparable] struct {
	keys    []K
	present []bool
	hashFn  func(K) uint32

	assigned   int
	resizeAt   int
	loadFactor float64
	lastSlot   int

	pool *iterpool.Pool[*PlainIterator[K]]
}

// NewPlainDefault creates a PlainSet with the default capacity and load factor.
func NewPlainDefault[K comparable](hashFn func(K) uint32) *PlainSet[K] {
	s, err := NewPlain(hashFn, sizing.DefaultCapacity, sizing.DefaultLoadFactor)
	if err != nil {
		panic(err)
	}
	return s
}

// NewPlain creates a PlainSet sized to hold initialCapacity elements
// without rehashing, at the given loadFactor.
func NewPlain[K comparable](hashFn func(K) uint32, initialCapacity int, loadFactor float64) (*PlainSet[K], error) {
	if err := sizing.Validate(initialCapacity, loadFactor); err != nil {
		return nil, err
	}
	s := &PlainSet[K]{hashFn: hashFn, loadFactor: loadFactor, lastSlot: -1}
	s.allocateBuffers(sizing.InternalCapacity(initialCapacity, loadFactor))
	s.pool = iterpool.New(iteratorPoolSize,
		func() *PlainIterator[K] { return &PlainIterator[K]{} },
		func(it *PlainIterator[K]) { it.set = nil },
	)
	return s, nil
}

func (s *PlainSet[K]) allocateBuffers(capacity int) {
	s.keys = make([]K, capacity)
	s.present = make([]bool, capacity)
	s.resizeAt = sizing.ResizeAt(capacity, s.loadFactor)
}

func (s *PlainSet[K]) slotFor(k K) int {
	mask := len(s.keys) - 1
	return int(hash.Mix32(s.hashFn(k))) & mask
}

// Add inserts k, returning true iff it was not already present.
func (s *PlainSet[K]) Add(k K) bool {
	mask := len(s.keys) - 1
	slot := s.slotFor(k)

	for s.present[slot] {
		if s.keys[slot] == k {
			return false
		}
		slot = (slot + 1) & mask
	}

	if s.assigned == s.resizeAt {
		s.expandAndAdd(k, slot)
	} else {
		s.assigned++
		s.present[slot] = true
		s.keys[slot] = k
	}
	return true
}

func (s *PlainSet[K]) expandAndAdd(pendingKey K, freeSlot int) {
	oldKeys := s.keys
	oldPresent := s.present

	s.allocateBuffers(sizing.NextCapacity(len(s.keys)))
	s.assigned++

	oldPresent[freeSlot] = true
	oldKeys[freeSlot] = pendingKey

	mask := len(s.keys) - 1
	keys := s.keys
	present := s.present

	for i := len(oldKeys) - 1; i >= 0; i-- {
		if !oldPresent[i] {
			continue
		}
		e := oldKeys[i]
		slot := s.slotFor(e)
		for present[slot] {
			slot = (slot + 1) & mask
		}
		present[slot] = true
		keys[slot] = e
	}
}

// Contains reports whether k is present, caching the matching slot for
// a following LastKey call.
func (s *PlainSet[K]) Contains(k K) bool {
	mask := len(s.keys) - 1
	slot := s.slotFor(k)

	for s.present[slot] {
		if s.keys[slot] == k {
			s.lastSlot = slot
			return true
		}
		slot = (slot + 1) & mask
	}

	s.lastSlot = -1
	return false
}

// LastKey returns the key found by the most recent successful Contains.
func (s *PlainSet[K]) LastKey() (k K, ok bool) {
	if s.lastSlot < 0 {
		return k, false
	}
	return s.keys[s.lastSlot], true
}

// Remove deletes k, returning true iff it was present.
func (s *PlainSet[K]) Remove(k K) bool {
	mask := len(s.keys) - 1
	slot := s.slotFor(k)

	for s.present[slot] {
		if s.keys[slot] == k {
			s.assigned--
			s.shiftBack(slot)
			return true
		}
		slot = (slot + 1) & mask
	}
	return false
}

func (s *PlainSet[K]) shiftBack(slot int) {
	mask := len(s.keys) - 1
	keys := s.keys
	present := s.present

	slotCurr := slot
	var slotPrev int
	for {
		slotPrev = slotCurr
		slotCurr = (slotCurr + 1) & mask

		for present[slotCurr] {
			home := s.slotFor(keys[slotCurr])
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

		if !present[slotCurr] {
			break
		}

		keys[slotPrev] = keys[slotCurr]
	}

	present[slotPrev] = false
	var zero K
	keys[slotPrev] = zero
}

// RemoveAll removes every key for which match returns true, returning
// the number removed.
func (s *PlainSet[K]) RemoveAll(match func(K) bool) int {
	before := s.assigned
	keys := s.keys
	present := s.present

	for i := 0; i < len(keys); {
		if present[i] && match(keys[i]) {
			s.assigned--
			s.shiftBack(i)
			continue
		}
		i++
	}

	return before - s.assigned
}

// Clear empties the set while keeping its current capacity.
func (s *PlainSet[K]) Clear() {
	s.assigned = 0
	s.lastSlot = -1
	for i := range s.present {
		s.present[i] = false
	}
	var zero K
	for i := range s.keys {
		s.keys[i] = zero
	}
}

// Len returns the number of elements currently in the set.
func (s *PlainSet[K]) Len() int {
	return s.assigned
}

// Cap mirrors the source's capacity(): elements before the next rehash.
func (s *PlainSet[K]) Cap() int {
	return s.resizeAt
}

// ForEach applies fn to every element in descending slot order.
func (s *PlainSet[K]) ForEach(fn func(K)) {
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.present[i] {
			fn(s.keys[i])
		}
	}
}

// ForEachWhile applies fn in descending slot order until it returns false.
func (s *PlainSet[K]) ForEachWhile(fn func(K) bool) {
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.present[i] {
			if !fn(s.keys[i]) {
				return
			}
		}
	}
}

// ToSlice appends every element, descending by slot, to dst.
func (s *PlainSet[K]) ToSlice(dst []K) []K {
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.present[i] {
			dst = append(dst, s.keys[i])
		}
	}
	return dst
}

// AddSlice inserts every key in ks, returning the count actually added.
func (s *PlainSet[K]) AddSlice(ks []K) int {
	count := 0
	for _, k := range ks {
		if s.Add(k) {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of s.
func (s *PlainSet[K]) Clone() *PlainSet[K] {
	cloned, err := NewPlain(s.hashFn, s.Len(), s.loadFactor)
	if err != nil {
		panic(err)
	}
	cloned.AddSlice(s.ToSlice(nil))
	return cloned
}

// Hash returns a commutative, order-independent hash of the set's contents.
func (s *PlainSet[K]) Hash() uint32 {
	var h uint32
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.present[i] {
			h += hash.Mix32(s.hashFn(s.keys[i]))
		}
	}
	return h
}

// Equal reports whether s and other contain the same elements.
func (s *PlainSet[K]) Equal(other *PlainSet[K]) bool {
	if s == other {
		return true
	}
	if s.Len() != other.Len() {
		return false
	}
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.present[i] && !other.Contains(s.keys[i]) {
			return false
		}
	}
	return true
}

// PlainIterator is a poolable cursor over a PlainSet in descending slot order.
type PlainIterator[K comparable] struct {
	set *PlainSet[K]
	idx int
}

// Next advances the iterator.
func (it *PlainIterator[K]) Next() (K, bool) {
	for it.idx > 0 {
		it.idx--
		if it.set.present[it.idx] {
			return it.set.keys[it.idx], true
		}
	}
	var zero K
	return zero, false
}

// Release returns the iterator to its set's pool.
func (it *PlainIterator[K]) Release() {
	it.set.pool.Release(it)
}

// Iterator borrows a PlainIterator positioned before the highest index.
func (s *PlainSet[K]) Iterator() *PlainIterator[K] {
	it := s.pool.Borrow()
	it.set = s
	it.idx = len(s.keys)
	return it
}
