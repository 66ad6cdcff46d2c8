package types

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}

	if got := a.Add(b); got != (Vec3{X: 5, Y: 8, Z: 6}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := b.Sub(a); got != (Vec3{X: 3, Y: 4, Z: 0}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale: got %+v", got)
	}
	if d := a.Distance(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance: got %v, want 5", d)
	}
	if d := a.HorizontalDistance(Vec3{X: 4, Y: 100, Z: 7}); math.Abs(d-5) > 1e-9 {
		t.Errorf("HorizontalDistance: got %v, want 5", d)
	}
}

func TestColorRGBA(t *testing.T) {
	c := Color{R: 0.4, G: 0.25, B: 0.1, A: 1}
	got := c.RGBA()
	if got.R != 102 || got.G != 64 || got.B != 26 || got.A != 255 {
		t.Errorf("RGBA: got %+v", got)
	}

	clamped := Color{R: -1, G: 2, B: 0.5, A: 1}.RGBA()
	if clamped.R != 0 || clamped.G != 255 {
		t.Errorf("RGBA should clamp channels, got %+v", clamped)
	}
}

func TestParseSocketItem(t *testing.T) {
	for _, item := range AllSocketItems() {
		parsed, err := ParseSocketItem(item.String())
		if err != nil {
			t.Fatalf("ParseSocketItem(%q) error: %v", item.String(), err)
		}
		if parsed != item {
			t.Errorf("ParseSocketItem(%q) = %v, want %v", item.String(), parsed, item)
		}
	}

	if _, err := ParseSocketItem(" Crystal "); err != nil {
		t.Errorf("ParseSocketItem should trim and ignore case: %v", err)
	}
	if _, err := ParseSocketItem("wand"); err == nil {
		t.Error("ParseSocketItem should reject unknown items")
	}
}
