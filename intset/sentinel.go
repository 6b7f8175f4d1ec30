// Package intset implements the sentinel-layout open-addressing hash
// set (§4.1.C): keyed on a primitive integer type, it reserves the
// type's zero value as the "empty" marker instead of carrying a
// parallel presence array, since the vast majority of slots in a
// sparsely-filled table are empty and a side array would cost as much
// memory as the keys themselves. The one key value equal to zero is
// tracked out-of-band in allocatedDefaultKey.
package intset

import (
	"golang.org/x/exp/constraints"

	"github.com/vsonnier/hppc/hash"
	"github.com/vsonnier/hppc/iterpool"
	"github.com/vsonnier/hppc/sizing"
)

const iteratorPoolSize = 4

// Set is a sentinel-layout open-addressing hash set over an integer
// key type K. The zero value is not usable; construct with New or
// NewDefault.
type Set[K constraints.Integer] struct {
	keys                []K
	allocatedDefaultKey bool

	assigned   int
	resizeAt   int
	loadFactor float64
	lastSlot   int

	pool *iterpool.Pool[*Iterator[K]]
}

// NewDefault creates a Set with the default capacity and load factor.
func NewDefault[K constraints.Integer]() *Set[K] {
	s, err := New[K](sizing.DefaultCapacity, sizing.DefaultLoadFactor)
	if err != nil {
		panic(err)
	}
	return s
}

// New creates a Set sized to hold initialCapacity elements without
// rehashing, at the given loadFactor.
func New[K constraints.Integer](initialCapacity int, loadFactor float64) (*Set[K], error) {
	if err := sizing.Validate(initialCapacity, loadFactor); err != nil {
		return nil, err
	}
	s := &Set[K]{loadFactor: loadFactor, lastSlot: -1}
	s.allocateBuffers(sizing.InternalCapacity(initialCapacity, loadFactor))
	s.pool = iterpool.New(iteratorPoolSize,
		func() *Iterator[K] { return &Iterator[K]{} },
		func(it *Iterator[K]) { it.set = nil },
	)
	return s, nil
}

func (s *Set[K]) allocateBuffers(capacity int) {
	s.keys = make([]K, capacity)
	s.resizeAt = sizing.ResizeAt(capacity, s.loadFactor)
}

// slotFor mixes k's bits through the 64-bit avalanche mixer regardless
// of K's actual width; the extra mixing work is cheap next to a cache
// miss and it spares this package a type switch per probe.
func (s *Set[K]) slotFor(k K) int {
	mask := len(s.keys) - 1
	return int(hash.Mix64Seed(uint64(k), 0)) & mask
}

// Add inserts k, returning true iff it was not already present.
func (s *Set[K]) Add(k K) bool {
	if k == 0 {
		if s.allocatedDefaultKey {
			return false
		}
		s.allocatedDefaultKey = true
		s.assigned++
		return true
	}

	mask := len(s.keys) - 1
	slot := s.slotFor(k)

	for s.keys[slot] != 0 {
		if s.keys[slot] == k {
			return false
		}
		slot = (slot + 1) & mask
	}

	if s.assigned == s.resizeAt {
		s.expandAndAdd(k, slot)
	} else {
		s.assigned++
		s.keys[slot] = k
	}
	return true
}

func (s *Set[K]) expandAndAdd(pendingKey K, freeSlot int) {
	oldKeys := s.keys
	s.allocateBuffers(sizing.NextCapacity(len(s.keys)))
	s.assigned++

	oldKeys[freeSlot] = pendingKey

	mask := len(s.keys) - 1
	keys := s.keys

	for i := len(oldKeys) - 1; i >= 0; i-- {
		if oldKeys[i] == 0 {
			continue
		}
		e := oldKeys[i]
		slot := s.slotFor(e)
		for keys[slot] != 0 {
			slot = (slot + 1) & mask
		}
		keys[slot] = e
	}
}

// Contains reports whether k is present. lastSlot is set to -2 on a hit
// against the default (zero) key, to the matching slot on any other
// hit, or to -1 on a miss.
func (s *Set[K]) Contains(k K) bool {
	if k == 0 {
		if s.allocatedDefaultKey {
			s.lastSlot = -2
		} else {
			s.lastSlot = -1
		}
		return s.allocatedDefaultKey
	}

	mask := len(s.keys) - 1
	slot := s.slotFor(k)

	for s.keys[slot] != 0 {
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
func (s *Set[K]) LastKey() (K, bool) {
	if s.lastSlot == -2 {
		return 0, true
	}
	if s.lastSlot < 0 {
		return 0, false
	}
	return s.keys[s.lastSlot], true
}

// Remove deletes k, returning true iff it was present.
func (s *Set[K]) Remove(k K) bool {
	if k == 0 {
		if s.allocatedDefaultKey {
			s.assigned--
			s.allocatedDefaultKey = false
			return true
		}
		return false
	}

	mask := len(s.keys) - 1
	slot := s.slotFor(k)

	for s.keys[slot] != 0 {
		if s.keys[slot] == k {
			s.assigned--
			s.shiftBack(slot)
			return true
		}
		slot = (slot + 1) & mask
	}
	return false
}

func (s *Set[K]) shiftBack(slot int) {
	mask := len(s.keys) - 1
	keys := s.keys

	slotCurr := slot
	var slotPrev int
	for {
		slotPrev = slotCurr
		slotCurr = (slotCurr + 1) & mask

		for keys[slotCurr] != 0 {
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

		if keys[slotCurr] == 0 {
			break
		}

		keys[slotPrev] = keys[slotCurr]
	}

	keys[slotPrev] = 0
}

// RemoveAll removes every key for which match returns true, returning
// the number removed.
func (s *Set[K]) RemoveAll(match func(K) bool) int {
	before := s.assigned

	if s.allocatedDefaultKey && match(0) {
		s.allocatedDefaultKey = false
		s.assigned--
	}

	keys := s.keys
	for i := 0; i < len(keys); {
		if keys[i] != 0 && match(keys[i]) {
			s.assigned--
			s.shiftBack(i)
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
	s.allocatedDefaultKey = false
	for i := range s.keys {
		s.keys[i] = 0
	}
}

// Len returns the number of elements currently in the set.
func (s *Set[K]) Len() int {
	return s.assigned
}

// Cap mirrors the source's capacity(): elements before the next rehash.
func (s *Set[K]) Cap() int {
	return s.resizeAt
}

// ForEach applies fn to the default key first (if present), then to the
// rest of the elements in descending slot order.
func (s *Set[K]) ForEach(fn func(K)) {
	if s.allocatedDefaultKey {
		fn(0)
	}
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.keys[i] != 0 {
			fn(s.keys[i])
		}
	}
}

// ForEachWhile is ForEach with early exit.
func (s *Set[K]) ForEachWhile(fn func(K) bool) {
	if s.allocatedDefaultKey {
		if !fn(0) {
			return
		}
	}
	for i := len(s.keys) - 1; i >= 0; i-- {
		if s.keys[i] != 0 {
			if !fn(s.keys[i]) {
				return
			}
		}
	}
}

// ToSlice appends the default key first (if present), then the rest of
// the elements in ascending slot order, to dst.
func (s *Set[K]) ToSlice(dst []K) []K {
	if s.allocatedDefaultKey {
		dst = append(dst, 0)
	}
	for i := 0; i < len(s.keys); i++ {
		if s.keys[i] != 0 {
			dst = append(dst, s.keys[i])
		}
	}
	return dst
}

// AddSlice inserts every key in ks, returning the count actually added.
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
	cloned, err := New[K](s.Len(), s.loadFactor)
	if err != nil {
		panic(err)
	}
	cloned.AddSlice(s.ToSlice(nil))
	return cloned
}

// Hash returns a commutative, order-independent hash of the set's contents.
func (s *Set[K]) Hash() uint32 {
	var h uint32
	if s.allocatedDefaultKey {
		h += hash.Mix64Seed(0, 0)
	}
	for i := 0; i < len(s.keys); i++ {
		if s.keys[i] != 0 {
			h += hash.Mix64Seed(uint64(s.keys[i]), 0)
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
	if s.allocatedDefaultKey != other.allocatedDefaultKey {
		return false
	}
	for i := 0; i < len(s.keys); i++ {
		if s.keys[i] != 0 && !other.Contains(s.keys[i]) {
			return false
		}
	}
	return true
}

// Iterator is a poolable cursor over a Set, emitting the default key
// first (if present), then the rest in descending slot order.
type Iterator[K constraints.Integer] struct {
	set         *Set[K]
	idx         int
	defaultDone bool
}

// Next advances the iterator.
func (it *Iterator[K]) Next() (K, bool) {
	if !it.defaultDone {
		it.defaultDone = true
		if it.set.allocatedDefaultKey {
			return 0, true
		}
	}
	for it.idx > 0 {
		it.idx--
		if it.set.keys[it.idx] != 0 {
			return it.set.keys[it.idx], true
		}
	}
	var zero K
	return zero, false
}

// Release returns the iterator to its set's pool.
func (it *Iterator[K]) Release() {
	it.set.pool.Release(it)
}

// Iterator borrows an Iterator positioned before the first element.
func (s *Set[K]) Iterator() *Iterator[K] {
	it := s.pool.Borrow()
	it.set = s
	it.idx = len(s.keys)
	it.defaultDone = false
	return it
}
