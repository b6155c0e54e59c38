package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(2)
	if r != NewRect(2, 2, 6, 2) {
		t.Errorf("Inset(2) = %+v", r)
	}

	r = NewRect(0, 0, 3, 3).Inset(2)
	if r.W != 0 || r.H != 0 {
		t.Errorf("Inset past the size should collapse to zero, got %+v", r)
	}
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		hue      float32
		expected Color
	}{
		{0, ColorRed},
		{0.99, ColorMagenta},
		{0.5, ColorGreen},
		{-1, ColorRed},
		{1, ColorRed},
	}

	for _, tc := range tests {
		if got := HueColor(tc.hue); got != tc.expected {
			t.Errorf("HueColor(%v) = %v, expected %v", tc.hue, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionForward)
	f.Look(3, -2)
	f.Look(1, 0)

	if !f.Has(ActionForward) || f.Has(ActionBackward) {
		t.Errorf("unexpected actions %v", f.Actions)
	}
	if f.PointerDX != 4 || f.PointerDY != -2 {
		t.Errorf("pointer = (%v, %v), expected (4, -2)", f.PointerDX, f.PointerDY)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionForward) || f.PointerDX != 0 {
		t.Error("Clear should reset actions and pointer")
	}
	if !clone.Has(ActionForward) || clone.PointerDX != 4 {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero frame should work")
	}
	if ActionInteract.String() != "Interact" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
