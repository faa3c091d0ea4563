package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		dx, dy   int
		expected Point
	}{
		{"right", Pt(10, 5), 1, 0, Pt(11, 5)},
		{"left", Pt(10, 5), -1, 0, Pt(9, 5)},
		{"up", Pt(10, 5), 0, -1, Pt(10, 4)},
		{"down", Pt(10, 5), 0, 1, Pt(10, 6)},
		{"zero", Pt(3, 3), 0, 0, Pt(3, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Add(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 18, 8)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(5, 5), true},
		{"top-left corner", Pt(1, 1), true},
		{"bottom-right cell", Pt(18, 8), true},
		{"right edge (exclusive)", Pt(19, 5), false},
		{"bottom edge (exclusive)", Pt(5, 9), false},
		{"border column", Pt(0, 5), false},
		{"border row", Pt(5, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
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
	if r.Empty() {
		t.Error("20x15 rect should not be empty")
	}
	if !NewRect(1, 1, 0, 5).Empty() {
		t.Error("zero-width rect should be empty")
	}
}
