package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(5, 5, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(15, 0, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(0, 15, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        SquareBox(20, 20, 40),
			b:        SquareBox(60, 20, 40),
			expected: false,
		},
		{
			name:     "probe next to wall tile",
			a:        SquareBox(60, 60, 25),
			b:        SquareBox(20, 60, 40),
			expected: false,
		},
		{
			name:     "probe on wall tile",
			a:        SquareBox(20, 60, 25),
			b:        SquareBox(20, 60, 40),
			expected: true,
		},
		{
			name:     "contained box",
			a:        SquareBox(0, 0, 40),
			b:        SquareBox(2, 2, 6),
			expected: true,
		},
		{
			name:     "rectangular overlap",
			a:        NewBox(0, 0, 30, 4),
			b:        NewBox(14, 1, 4, 4),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(100, 50, 20, 10)

	if b.Left() != 90 || b.Right() != 110 {
		t.Errorf("horizontal edges = (%v, %v), expected (90, 110)", b.Left(), b.Right())
	}
	if b.Bottom() != 45 || b.Top() != 55 {
		t.Errorf("vertical edges = (%v, %v), expected (45, 55)", b.Bottom(), b.Top())
	}
}

func TestFirstOverlapOrder(t *testing.T) {
	boxes := []Box{
		SquareBox(500, 500, 10),
		SquareBox(10, 10, 10),
		SquareBox(12, 12, 10),
	}

	probe := SquareBox(11, 11, 4)
	if idx := FirstOverlap(probe, boxes); idx != 1 {
		t.Errorf("FirstOverlap() = %d, expected 1 (first in slice order)", idx)
	}

	miss := SquareBox(300, 300, 4)
	if idx := FirstOverlap(miss, boxes); idx != -1 {
		t.Errorf("FirstOverlap() = %d, expected -1", idx)
	}

	if FirstOverlap(probe, []Box(nil)) != -1 {
		t.Error("FirstOverlap on empty collection should be -1")
	}
}

func TestAnyOverlap(t *testing.T) {
	walls := []Box{SquareBox(20, 20, 40), SquareBox(60, 20, 40)}

	if !AnyOverlap(SquareBox(60, 20, 6), walls) {
		t.Error("AnyOverlap should find the wall under the probe")
	}
	if AnyOverlap(SquareBox(60, 60, 25), walls) {
		t.Error("AnyOverlap should not report the row above the walls")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
