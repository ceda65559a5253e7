package utils

import "testing"

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestWithinRangeIsInclusive(t *testing.T) {
	if !WithinRange(0, 0, 3, 4, 5) {
		t.Fatalf("point on the boundary must be in range")
	}
	if WithinRange(0, 0, 3, 4, 4.99) {
		t.Fatalf("point beyond the boundary must be out of range")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
	if got := ClampInt(7, 0, 5); got != 5 {
		t.Errorf("ClampInt(7, 0, 5) = %d", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
}
