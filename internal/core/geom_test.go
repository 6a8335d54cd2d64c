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
			name:     "adjacent tiles in a row",
			a:        NewRect(0, 0, 6, 3),
			b:        NewRect(7, 0, 6, 3),
			expected: false,
		},
		{
			name:     "touching edge (no overlap)",
			a:        NewRect(0, 0, 6, 3),
			b:        NewRect(6, 0, 6, 3),
			expected: false,
		},
		{
			name:     "stacked rows",
			a:        NewRect(0, 0, 6, 3),
			b:        NewRect(0, 3, 6, 3),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
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
	r := NewRect(10, 10, 6, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 12, 11, true},
		{"top-left corner", 10, 10, true},
		{"last column", 15, 12, true},
		{"right edge (exclusive)", 16, 11, false},
		{"bottom edge (exclusive)", 12, 13, false},
		{"outside left", 9, 11, false},
		{"outside top", 12, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got := r.ContainsPoint(Point{X: tc.x, Y: tc.y}); got != tc.expected {
				t.Errorf("ContainsPoint(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
