package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"left of rect", 5, 15, false},
		{"below rect", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectClampInto(t *testing.T) {
	bounds := Playfield()

	r := NewRect(-30, 590, 100, 15).ClampInto(bounds)
	if r.X != 0 || r.Y != ScreenHeight-15 {
		t.Errorf("ClampInto() = (%v, %v), expected (0, %d)", r.X, r.Y, ScreenHeight-15)
	}
	if !r.Within(bounds) {
		t.Error("clamped rect should lie within bounds")
	}
}

func TestCirclesOverlap(t *testing.T) {
	a := Vec{0, 0}
	if !CirclesOverlap(a, Vec{3, 4}, 5.1) {
		t.Error("points 5 apart should overlap at distance 5.1")
	}
	if CirclesOverlap(a, Vec{3, 4}, 5) {
		t.Error("points exactly 5 apart should not overlap at distance 5")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, max, expected float64
	}{
		{805, 800, 5},
		{-5, 800, 795},
		{400, 800, 400},
		{0, 800, 0},
	}
	for _, tc := range tests {
		if got := Wrap(tc.v, tc.max); got != tc.expected {
			t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.max, got, tc.expected)
		}
	}
}

func TestWrappedDelta(t *testing.T) {
	if got := WrappedDelta(790, 10, 800); got != -20 {
		t.Errorf("WrappedDelta(790, 10) = %v, expected -20", got)
	}
	if got := WrappedDelta(10, 790, 800); got != 20 {
		t.Errorf("WrappedDelta(10, 790) = %v, expected 20", got)
	}
	if got := WrappedDelta(300, 200, 800); got != 100 {
		t.Errorf("WrappedDelta(300, 200) = %v, expected 100", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should keep in-range value")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise to lower bound")
	}
	if Clamp(8.5, 0.0, 8.0) != 8.0 {
		t.Error("Clamp should lower float to upper bound")
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		ms       int
		rate     int
		expected int
	}{
		{150, 60, 9},
		{1000, 60, 60},
		{400, 60, 24},
		{10, 60, 1},
		{0, 60, 0},
	}
	for _, tc := range tests {
		if got := TicksMS(tc.ms, tc.rate); got != tc.expected {
			t.Errorf("TicksMS(%d, %d) = %d, expected %d", tc.ms, tc.rate, got, tc.expected)
		}
	}
}
