package heap

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/v2/trees/binaryheap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// These tests cross-check PopTop's drain order against two independent
// sorted-container implementations from the retrieval pack, the same
// role the teacher's Maps/comparisons package gives emirpasic/gods,
// google/btree, and petar/GoLLRB: confirm this package's own
// binary-heap logic against an established library rather
// than replace it. Neither oracle is used inside the heap itself.

func randomInput(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(n * 4)
	}
	return out
}

// TestPopTopMatchesGodsBinaryHeap drains both a heap.Heap and an
// emirpasic/gods binaryheap.Heap built from the same input and asserts
// they emit the same non-decreasing sequence.
func TestPopTopMatchesGodsBinaryHeap(t *testing.T) {
	input := randomInput(500, 1)

	ours, err := NewOrdered[int](nil, len(input))
	if err != nil {
		t.Fatalf("NewOrdered: %v", err)
	}
	oracle := binaryheap.NewWith[int](func(a, b int) int { return a - b })

	for _, v := range input {
		ours.Insert(v)
		oracle.Push(v)
	}

	for i := 0; i < len(input); i++ {
		want, ok := oracle.Pop()
		if !ok {
			t.Fatalf("oracle exhausted early at i=%d", i)
		}
		got := ours.PopTop()
		if got != want {
			t.Fatalf("drain mismatch at i=%d: heap.PopTop()=%d gods binaryheap.Pop()=%d", i, got, want)
		}
	}
}

// TestPopTopMatchesBTreeAscendingWalk builds a google/btree BTreeG from
// the same elements and walks it ascending; for a total order with no
// ties the ascending walk and the repeated-pop sequence must coincide.
func TestPopTopMatchesBTreeAscendingWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := make(map[int]bool)
	var input []int
	for len(input) < 500 {
		v := rng.Intn(1 << 20)
		if seen[v] {
			continue
		}
		seen[v] = true
		input = append(input, v)
	}

	ours, err := NewOrdered[int](nil, len(input))
	if err != nil {
		t.Fatalf("NewOrdered: %v", err)
	}
	tree := btree.NewG[int](32, func(a, b int) bool { return a < b })

	for _, v := range input {
		ours.Insert(v)
		tree.ReplaceOrInsert(v)
	}

	var walked []int
	tree.Ascend(func(item int) bool {
		walked = append(walked, item)
		return true
	})

	for i, want := range walked {
		got := ours.PopTop()
		if got != want {
			t.Fatalf("drain mismatch at i=%d: heap.PopTop()=%d btree ascending=%d", i, got, want)
		}
	}
}

// llrbInt adapts a plain int to GoLLRB's pre-generics Item interface.
type llrbInt int

func (a llrbInt) Less(than llrb.Item) bool {
	return a < than.(llrbInt)
}

// TestPopTopMatchesLLRBAscendingWalk is the second, independently
// implemented sorted-tree oracle for the same drain-order property
// (spec.md §8 asks for the property, not a single reference path).
func TestPopTopMatchesLLRBAscendingWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[int]bool)
	var input []int
	for len(input) < 500 {
		v := rng.Intn(1 << 20)
		if seen[v] {
			continue
		}
		seen[v] = true
		input = append(input, v)
	}

	ours, err := NewOrdered[int](nil, len(input))
	if err != nil {
		t.Fatalf("NewOrdered: %v", err)
	}
	tree := llrb.New()

	for _, v := range input {
		ours.Insert(v)
		tree.InsertNoReplace(llrbInt(v))
	}

	var walked []int
	tree.AscendGreaterOrEqual(llrbInt(0), func(i llrb.Item) bool {
		walked = append(walked, int(i.(llrbInt)))
		return true
	})

	for i, want := range walked {
		got := ours.PopTop()
		if got != want {
			t.Fatalf("drain mismatch at i=%d: heap.PopTop()=%d llrb ascending=%d", i, got, want)
		}
	}
}
