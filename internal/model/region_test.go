package model

import "testing"

func TestRegion(t *testing.T) {
	r := Region{X: 2, Y: 1, Width: 4, Height: 3}
	if r.Area() != 12 {
		t.Errorf("expected area 12, got %d", r.Area())
	}
	if r.Empty() {
		t.Error("expected non-empty region")
	}
	if !r.Fits(Size{Width: 4, Height: 3}) || r.Fits(Size{Width: 5, Height: 1}) {
		t.Error("Fits mismatch")
	}
	if got := r.String(); got != "4 x 3 at (2, 1)" {
		t.Errorf("unexpected String(): %q", got)
	}
	if !(Region{Width: 0, Height: 3}).Empty() {
		t.Error("zero width region should be empty")
	}
}
