package core

import "testing"

func TestSpanOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected float64
	}{
		{"identical", Span{-1, 1}, Span{-1, 1}, 2},
		{"partial", Span{-1, 1}, Span{0, 2}, 1},
		{"contained", Span{-2, 2}, Span{-1, 0.5}, 1.5},
		{"touching (no overlap)", Span{-1, 1}, Span{1, 3}, 0},
		{"disjoint", Span{-1, 1}, Span{2.5, 4.5}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlap(tc.b); got != tc.expected {
				t.Errorf("Overlap() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlap(tc.a); got != tc.expected {
				t.Errorf("Overlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpanAround(t *testing.T) {
	s := SpanAround(3.5, 2)
	if s.Min != 2.5 || s.Max != 4.5 {
		t.Errorf("SpanAround(3.5, 2) = %+v, expected {2.5 4.5}", s)
	}
	if s.Mid() != 3.5 {
		t.Errorf("Mid() = %v, expected 3.5", s.Mid())
	}
}

func TestSpanIntersection(t *testing.T) {
	got := Span{-1, 1}.Intersection(Span{0, 2})
	if got.Min != 0 || got.Max != 1 {
		t.Errorf("Intersection() = %+v, expected {0 1}", got)
	}
	if got.Mid() != 0.5 {
		t.Errorf("Mid() = %v, expected 0.5", got.Mid())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 5, 20, 15)
	if r.Right() != 30 {
		t.Errorf("Right() = %d, expected 30", r.Right())
	}
	if r.Bottom() != 20 {
		t.Errorf("Bottom() = %d, expected 20", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %v, expected 0.25", got)
	}
}
