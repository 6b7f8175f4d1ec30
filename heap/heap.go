// Package heap implements a binary-heap min-priority queue over a
// 1-indexed array, following spec.md §4.4: swim/sink for single-element
// moves, Floyd bottom-up heapify (RefreshPriorities) after any bulk
// mutation. Ordering is supplied once at construction as a less
// function — either the caller's own comparator, or "<" over a
// constraints.Ordered type — and never switched at runtime.
package heap

import (
	"golang.org/x/exp/constraints"

	"github.com/vsonnier/hppc/hash"
	"github.com/vsonnier/hppc/iterpool"
	"github.com/vsonnier/hppc/sizing"
)

const iteratorPoolSize = 4

// Heap is a min-priority queue over K. The zero value is not usable;
// construct with New or NewOrdered.
type Heap[K any] struct {
	buffer        []K
	elementsCount int

	less          func(a, b K) bool
	hasComparator bool
	hashFn        func(K) uint32

	defaultValue K

	pool *iterpool.Pool[*Iterator[K]]
}

// New creates a heap ordered by less, sized to hold initialCapacity
// elements without growing. hashFn may be nil if Hash() is never
// called.
func New[K any](less func(a, b K) bool, hashFn func(K) uint32, initialCapacity int) (*Heap[K], error) {
	if initialCapacity < 0 {
		return nil, sizing.ErrNegativeCapacity
	}
	h := &Heap[K]{less: less, hasComparator: true, hashFn: hashFn}
	h.buffer = make([]K, sizing.RoundCapacity(initialCapacity)+1)
	h.pool = iterpool.New(iteratorPoolSize,
		func() *Iterator[K] { return &Iterator[K]{} },
		func(it *Iterator[K]) { it.heap = nil },
	)
	return h, nil
}

// NewOrdered creates a heap using K's natural ("<") ordering.
func NewOrdered[K constraints.Ordered](hashFn func(K) uint32, initialCapacity int) (*Heap[K], error) {
	if initialCapacity < 0 {
		return nil, sizing.ErrNegativeCapacity
	}
	h := &Heap[K]{
		less:   func(a, b K) bool { return a < b },
		hashFn: hashFn,
	}
	h.buffer = make([]K, sizing.RoundCapacity(initialCapacity)+1)
	h.pool = iterpool.New(iteratorPoolSize,
		func() *Iterator[K] { return &Iterator[K]{} },
		func(it *Iterator[K]) { it.heap = nil },
	)
	return h, nil
}

// SetDefaultValue sets the value Top and PopTop return on an empty heap.
func (h *Heap[K]) SetDefaultValue(v K) {
	h.defaultValue = v
}

// equalElem treats a and b as equal iff neither orders before the
// other under h.less — the only equivalence a bare ordering function
// can express without also demanding K be comparable.
func (h *Heap[K]) equalElem(a, b K) bool {
	return !h.less(a, b) && !h.less(b, a)
}

// Len returns the number of elements currently queued.
func (h *Heap[K]) Len() int {
	return h.elementsCount
}

func (h *Heap[K]) ensureSpace(expectedAdditions int) {
	bufferLen := len(h.buffer) - 1
	if h.elementsCount > bufferLen-expectedAdditions {
		newSize := sizing.BoundedProportionalGrow(bufferLen, h.elementsCount, expectedAdditions+1)
		newBuffer := make([]K, newSize+1)
		copy(newBuffer, h.buffer)
		h.buffer = newBuffer
	}
}

func (h *Heap[K]) swim(k int) {
	buf := h.buffer
	less := h.less
	for k > 1 && less(buf[k], buf[k>>1]) {
		buf[k], buf[k>>1] = buf[k>>1], buf[k]
		k >>= 1
	}
}

func (h *Heap[K]) sink(k int) {
	buf := h.buffer
	less := h.less
	n := h.elementsCount

	for k<<1 <= n {
		child := k << 1
		if child < n && less(buf[child+1], buf[child]) {
			child++
		}
		if !less(buf[child], buf[k]) {
			break
		}
		buf[k], buf[child] = buf[child], buf[k]
		k = child
	}
}

// RefreshPriorities restores the heap property across the whole buffer
// via Floyd bottom-up heapify. Call after any bulk mutation that may
// have left buffer[1..elementsCount] out of order.
func (h *Heap[K]) RefreshPriorities() {
	for k := h.elementsCount >> 1; k >= 1; k-- {
		h.sink(k)
	}
}

// Insert adds element to the heap.
func (h *Heap[K]) Insert(element K) {
	h.ensureSpace(1)
	h.elementsCount++
	h.buffer[h.elementsCount] = element
	h.swim(h.elementsCount)
}

// Top returns the smallest element without removing it, or the
// configured default value if the heap is empty.
func (h *Heap[K]) Top() K {
	if h.elementsCount == 0 {
		return h.defaultValue
	}
	return h.buffer[1]
}

// PopTop removes and returns the smallest element, or the configured
// default value if the heap is empty.
func (h *Heap[K]) PopTop() K {
	if h.elementsCount == 0 {
		return h.defaultValue
	}

	elem := h.buffer[1]

	if h.elementsCount == 1 {
		var zero K
		h.buffer[1] = zero
		h.elementsCount = 0
	} else {
		h.buffer[1] = h.buffer[h.elementsCount]
		var zero K
		h.buffer[h.elementsCount] = zero
		h.elementsCount--
		h.sink(1)
	}

	return elem
}

// Contains reports whether element is present, under the heap's own
// notion of equality (equalElem).
func (h *Heap[K]) Contains(element K) bool {
	for i := 1; i <= h.elementsCount; i++ {
		if h.equalElem(element, h.buffer[i]) {
			return true
		}
	}
	return false
}

// RemoveAllOccurrences removes every element equal to target, using the
// swap-to-end bulk-fixup shape: matches are overwritten with the
// current last element without advancing, and the heap property is
// restored once at the end via RefreshPriorities.
func (h *Heap[K]) RemoveAllOccurrences(target K) int {
	deleted := 0
	pos := 1

	for pos <= h.elementsCount {
		if h.equalElem(target, h.buffer[pos]) {
			h.buffer[pos] = h.buffer[h.elementsCount]
			var zero K
			h.buffer[h.elementsCount] = zero
			h.elementsCount--
			deleted++
		} else {
			pos++
		}
	}

	h.RefreshPriorities()
	return deleted
}

// RemoveAll removes every element for which match returns true. A
// panicking match still leaves elementsCount consistent and the heap
// legal: RefreshPriorities runs in a defer, so it executes even while
// the panic is propagating (spec.md §7).
func (h *Heap[K]) RemoveAll(match func(K) bool) int {
	deleted := 0
	pos := 1

	defer h.RefreshPriorities()

	for pos <= h.elementsCount {
		if match(h.buffer[pos]) {
			h.buffer[pos] = h.buffer[h.elementsCount]
			var zero K
			h.buffer[h.elementsCount] = zero
			h.elementsCount--
			deleted++
		} else {
			pos++
		}
	}

	return deleted
}

// Clear empties the heap.
func (h *Heap[K]) Clear() {
	var zero K
	for i := 1; i <= h.elementsCount; i++ {
		h.buffer[i] = zero
	}
	h.elementsCount = 0
}

// ForEach applies fn to every element in buffer order (root first, then
// breadth-first-ish array order — not sorted order).
func (h *Heap[K]) ForEach(fn func(K)) {
	for i := 1; i <= h.elementsCount; i++ {
		fn(h.buffer[i])
	}
}

// ForEachWhile applies fn in buffer order until it returns false.
func (h *Heap[K]) ForEachWhile(fn func(K) bool) {
	for i := 1; i <= h.elementsCount; i++ {
		if !fn(h.buffer[i]) {
			return
		}
	}
}

// ToSlice appends every element in buffer order to dst.
func (h *Heap[K]) ToSlice(dst []K) []K {
	return append(dst, h.buffer[1:h.elementsCount+1]...)
}

// AddAll appends every element produced by seq, then restores the heap
// property once via RefreshPriorities.
func (h *Heap[K]) AddAll(seq func(yield func(K) bool)) int {
	count := 0
	seq(func(k K) bool {
		h.ensureSpace(1)
		h.elementsCount++
		h.buffer[h.elementsCount] = k
		count++
		return true
	})
	h.RefreshPriorities()
	return count
}

// AddSlice is AddAll specialized for a slice argument.
func (h *Heap[K]) AddSlice(ks []K) int {
	h.ensureSpace(len(ks))
	for _, k := range ks {
		h.elementsCount++
		h.buffer[h.elementsCount] = k
	}
	h.RefreshPriorities()
	return len(ks)
}

// Clone returns an independent copy of h.
func (h *Heap[K]) Clone() *Heap[K] {
	cloned := &Heap[K]{
		less:          h.less,
		hasComparator: h.hasComparator,
		hashFn:        h.hashFn,
		defaultValue:  h.defaultValue,
	}
	cloned.buffer = make([]K, len(h.buffer))
	cloned.pool = iterpool.New(iteratorPoolSize,
		func() *Iterator[K] { return &Iterator[K]{} },
		func(it *Iterator[K]) { it.heap = nil },
	)
	cloned.AddSlice(h.ToSlice(nil))
	return cloned
}

// Hash returns an order-dependent polynomial hash of the buffer
// contents, matching the source's "h = 31*h + rehash(x)" — unlike the
// set's commutative Hash, a heap's array layout is an observable part
// of its state (iteration walks buffer order), so two heaps with the
// same elements inserted in a different order are not required to
// collide. Panics if constructed without a hashFn.
func (h *Heap[K]) Hash() uint32 {
	if h.hashFn == nil {
		panic("heap: Hash called without a hashFn configured at construction")
	}
	var acc uint32 = 1
	for i := 1; i <= h.elementsCount; i++ {
		acc = 31*acc + hash.Mix32(h.hashFn(h.buffer[i]))
	}
	return acc
}

// Equal reports whether h and other have the same size and the same
// buffer contents at every position, under a matching ordering
// discipline. Two heaps built with a custom comparator are never equal
// to each other here — Go function values carry neither identity nor a
// value-equality operator, so there is no sound way to ask "are these
// two comparators the same rule" (see DESIGN.md's resolution of
// spec.md's Open Question on comparator equality). Two heaps both built
// with NewOrdered compare pointwise using their own less function as
// the equivalence test.
func (h *Heap[K]) Equal(other *Heap[K]) bool {
	if h == other {
		return true
	}
	if h.hasComparator != other.hasComparator {
		return false
	}
	if h.hasComparator {
		return false
	}
	if h.elementsCount != other.elementsCount {
		return false
	}
	for i := 1; i <= h.elementsCount; i++ {
		if h.less(h.buffer[i], other.buffer[i]) || h.less(other.buffer[i], h.buffer[i]) {
			return false
		}
	}
	return true
}

// Iterator is a poolable cursor over a heap's buffer in array order.
type Iterator[K any] struct {
	heap *Heap[K]
	idx  int
}

// Next advances the iterator.
func (it *Iterator[K]) Next() (K, bool) {
	if it.idx >= it.heap.elementsCount {
		var zero K
		return zero, false
	}
	it.idx++
	return it.heap.buffer[it.idx], true
}

// Release returns the iterator to its heap's pool.
func (it *Iterator[K]) Release() {
	it.heap.pool.Release(it)
}

// Iterator borrows an Iterator positioned before the first element.
func (h *Heap[K]) Iterator() *Iterator[K] {
	it := h.pool.Borrow()
	it.heap = h
	it.idx = 0
	return it
}
