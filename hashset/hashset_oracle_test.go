package hashset

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/v2/sets/hashset"
)

// Cross-checks this package's own Robin-Hood set against
// emirpasic/gods's hashset.Set under the same randomized add/remove
// workload spec.md §8 describes ("for any interleaving of add, remove,
// contains ... assigned equals the number of distinct keys ever added
// minus removed"). The oracle is never the containers' own engine —
// see the teacher's Maps/comparisons package, which runs the same
// shape of cross-check against gods among other libraries.

func hashU32(k int) uint32 { return uint32(k) }

func TestRandomWorkloadMatchesGodsHashSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	ours := NewDefault[int](hashU32)
	oracle := hashset.New[int]()

	const ops = 5000
	for i := 0; i < ops; i++ {
		k := rng.Intn(1000)
		switch rng.Intn(3) {
		case 0, 1:
			ours.Add(k)
			oracle.Add(k)
		case 2:
			ours.Remove(k)
			oracle.Remove(k)
		}

		if ours.Len() != oracle.Size() {
			t.Fatalf("after op %d: Len()=%d oracle.Size()=%d", i, ours.Len(), oracle.Size())
		}
	}

	for k := 0; k < 1000; k++ {
		if ours.Contains(k) != oracle.Contains(k) {
			t.Fatalf("Contains(%d) mismatch: ours=%v oracle=%v", k, ours.Contains(k), oracle.Contains(k))
		}
	}
}
