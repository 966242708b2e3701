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

func TestBoxContains(t *testing.T) {
	b := Box{X: 100, Y: 50, W: 35, H: 35}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"centre", 117.5, 67.5, true},
		{"top-left corner inclusive", 100, 50, true},
		{"right edge exclusive", 135, 60, false},
		{"bottom edge exclusive", 110, 85, false},
		{"just inside bottom-right", 134.9, 84.9, true},
		{"left of box", 99.9, 60, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxWithin(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		expected bool
	}{
		{"inside", Box{X: 10, Y: 10, W: 20, H: 20}, true},
		{"touching far edges", Box{X: 80, Y: 30, W: 20, H: 20}, true},
		{"negative x", Box{X: -0.1, Y: 10, W: 20, H: 20}, false},
		{"past right edge", Box{X: 80.5, Y: 10, W: 20, H: 20}, false},
		{"past bottom edge", Box{X: 10, Y: 31, W: 20, H: 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Within(100, 50); got != tc.expected {
				t.Errorf("Within() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
		{5, 3, -2, 3},   // inverted range collapses to min
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3.0, 0.0, -20.0, 0.0},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestBoxIntersects(t *testing.T) {
	b := Box{X: 100, Y: 9, W: 10, H: 10}

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"cell holding a corner sliver", Box{X: 104, Y: 16, W: 8, H: 16}, true},
		{"cell fully inside", Box{X: 102, Y: 10, W: 2, H: 2}, true},
		{"touching right edge", Box{X: 110, Y: 9, W: 8, H: 16}, false},
		{"touching bottom edge", Box{X: 100, Y: 19, W: 8, H: 16}, false},
		{"far away", Box{X: 0, Y: 0, W: 8, H: 8}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects(%+v) = %v, expected %v", tc.other, got, tc.expected)
			}
			if got := tc.other.Intersects(b); got != tc.expected {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
			}
		})
	}
}
