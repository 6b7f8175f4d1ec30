package hashset

import "testing"

func intHash(k int) uint32 { return uint32(k) }

func TestSetAddContainsRemove(t *testing.T) {
	s := NewDefault[int](intHash)
	for i := 0; i < 50; i++ {
		if !s.Add(i) {
			t.Errorf("Add(%d) first time should report true", i)
		}
		if s.Add(i) {
			t.Errorf("Add(%d) second time should report false", i)
		}
	}
	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
	for i := 0; i < 50; i++ {
		if !s.Contains(i) {
			t.Errorf("Contains(%d) = false, want true", i)
		}
	}
	for i := 0; i < 25; i++ {
		if !s.Remove(i) {
			t.Errorf("Remove(%d) should report true", i)
		}
		if s.Remove(i) {
			t.Errorf("Remove(%d) twice should report false", i)
		}
	}
	if s.Len() != 25 {
		t.Errorf("Len() after removal = %d, want 25", s.Len())
	}
	for i := 0; i < 25; i++ {
		if s.Contains(i) {
			t.Errorf("Contains(%d) = true after removal", i)
		}
	}
	for i := 25; i < 50; i++ {
		if !s.Contains(i) {
			t.Errorf("Contains(%d) = false, want true (never removed)", i)
		}
	}
}

func TestSetGrowsAcrossManyInserts(t *testing.T) {
	s, err := New(intHash, 4, 0.75)
	if err != nil {
		t.Fatal(err)
	}
	const n = 10000
	for i := 0; i < n; i++ {
		s.Add(i)
	}
	if s.Len() != n {
		t.Errorf("Len() = %d, want %d", s.Len(), n)
	}
	for i := 0; i < n; i++ {
		if !s.Contains(i) {
			t.Errorf("Contains(%d) = false after growth", i)
		}
	}
}

func TestSetLastKeyTracksContainsHit(t *testing.T) {
	s := NewDefault[int](intHash)
	s.Add(42)
	if !s.Contains(42) {
		t.Fatal("Contains(42) = false")
	}
	k, ok := s.LastKey()
	if !ok || k != 42 {
		t.Errorf("LastKey() = (%d, %v), want (42, true)", k, ok)
	}
	s.Contains(999)
	if _, ok := s.LastKey(); ok {
		t.Error("LastKey() after a miss should report ok=false")
	}
}

func TestSetRemoveAllMatchingPredicate(t *testing.T) {
	s := NewDefault[int](intHash)
	for i := 0; i < 20; i++ {
		s.Add(i)
	}
	removed := s.RemoveAll(func(k int) bool { return k%2 == 0 })
	if removed != 10 {
		t.Errorf("RemoveAll(even) removed %d, want 10", removed)
	}
	for i := 0; i < 20; i++ {
		want := i%2 != 0
		if got := s.Contains(i); got != want {
			t.Errorf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestSetClearResetsSizeNotCapacity(t *testing.T) {
	s := NewDefault[int](intHash)
	for i := 0; i < 10; i++ {
		s.Add(i)
	}
	capBefore := s.Cap()
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", s.Len())
	}
	if s.Cap() != capBefore {
		t.Errorf("Cap() changed across Clear(): %d -> %d", capBefore, s.Cap())
	}
	if s.Contains(5) {
		t.Error("Contains(5) = true after Clear()")
	}
}

func TestSetEqual(t *testing.T) {
	a := NewDefault[int](intHash)
	b := NewDefault[int](intHash)
	a.AddSlice([]int{1, 2, 3})
	b.AddSlice([]int{3, 2, 1})
	if !a.Equal(b) {
		t.Error("sets with the same elements in different insertion order should be Equal")
	}
	b.Add(4)
	if a.Equal(b) {
		t.Error("sets with different sizes should not be Equal")
	}
}

func TestSetCloneIsIndependent(t *testing.T) {
	a := NewDefault[int](intHash)
	a.AddSlice([]int{1, 2, 3})
	b := a.Clone()
	b.Add(4)
	if a.Contains(4) {
		t.Error("mutating a clone should not affect the original")
	}
	if !a.Equal(a.Clone()) {
		t.Error("Clone() should reproduce an Equal copy")
	}
}

func TestSetIteratorVisitsEveryElementOnce(t *testing.T) {
	s := NewDefault[int](intHash)
	want := map[int]bool{}
	for i := 0; i < 30; i++ {
		s.Add(i)
		want[i] = true
	}
	it := s.Iterator()
	defer it.Release()
	seen := map[int]bool{}
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		if seen[k] {
			t.Errorf("iterator revisited %d", k)
		}
		seen[k] = true
	}
	if len(seen) != len(want) {
		t.Errorf("iterator visited %d elements, want %d", len(seen), len(want))
	}
}

func TestSetHashCommutesWithInsertionOrder(t *testing.T) {
	a := NewDefault[int](intHash)
	b := NewDefault[int](intHash)
	a.AddSlice([]int{5, 1, 9, 3})
	b.AddSlice([]int{3, 9, 1, 5})
	if a.Hash() != b.Hash() {
		t.Error("Hash() should not depend on insertion order")
	}
}
