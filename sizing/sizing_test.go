package sizing

import "testing"

func TestRoundCapacityPowerOfTwo(t *testing.T) {
	cases := map[int]int{
		0:  MinCapacity,
		1:  MinCapacity,
		4:  4,
		5:  8,
		16: 16,
		17: 32,
	}
	for in, want := range cases {
		if got := RoundCapacity(in); got != want {
			t.Errorf("RoundCapacity(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestNextCapacityDoubles(t *testing.T) {
	if got := NextCapacity(16); got != 32 {
		t.Errorf("NextCapacity(16) = %d, want 32", got)
	}
}

func TestResizeAtLeavesFreeSlot(t *testing.T) {
	at := ResizeAt(16, 0.75)
	if at >= 16 {
		t.Errorf("ResizeAt(16, 0.75) = %d, must leave a free slot", at)
	}
	if at < 1 {
		t.Errorf("ResizeAt(16, 0.75) = %d, should still allow insertions", at)
	}
}

func TestResizeAtMinimum(t *testing.T) {
	if got := ResizeAt(4, 0.1); got != 1 {
		t.Errorf("ResizeAt(4, 0.1) = %d, want 1 (floor of 3, minus 2)", got)
	}
}

func TestValidateRejectsNegativeCapacity(t *testing.T) {
	if err := Validate(-1, 0.75); err != ErrNegativeCapacity {
		t.Errorf("Validate(-1, 0.75) = %v, want ErrNegativeCapacity", err)
	}
}

func TestValidateRejectsBadLoadFactor(t *testing.T) {
	if err := Validate(16, 0); err != ErrInvalidLoadFactor {
		t.Errorf("Validate(16, 0) = %v, want ErrInvalidLoadFactor", err)
	}
	if err := Validate(16, 1.5); err != ErrInvalidLoadFactor {
		t.Errorf("Validate(16, 1.5) = %v, want ErrInvalidLoadFactor", err)
	}
}

func TestBoundedProportionalGrowFitsAdditions(t *testing.T) {
	got := BoundedProportionalGrow(4, 4, 20)
	if got < 24 {
		t.Errorf("BoundedProportionalGrow(4, 4, 20) = %d, too small for 20 pending additions", got)
	}
}

func TestBoundedProportionalGrowHasFloor(t *testing.T) {
	if got := BoundedProportionalGrow(0, 0, 0); got < MinCapacity {
		t.Errorf("BoundedProportionalGrow(0,0,0) = %d, want >= MinCapacity", got)
	}
}
