package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "player over low obstacle",
			a:        NewBox(50, 370, 30, 30),
			b:        NewBox(60, 360, 20, 45),
			expected: true,
		},
		{
			name:     "player above obstacle top",
			a:        NewBox(50, 300, 30, 30),
			b:        NewBox(60, 340, 20, 60),
			expected: false,
		},
		{
			name:     "touching edges horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(500, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxScale(t *testing.T) {
	b := NewBox(50, 370, 30, 30)
	r := b.Scale(0.1, 0.05)

	if r.X != 5 || r.W != 3 {
		t.Errorf("horizontal scale: got X=%d W=%d, expected X=5 W=3", r.X, r.W)
	}
	if r.Y != 18 || r.Bottom() != 20 {
		t.Errorf("vertical scale: got Y=%d Bottom=%d, expected Y=18 Bottom=20", r.Y, r.Bottom())
	}

	tiny := NewBox(1, 1, 0.1, 0.1).Scale(0.1, 0.1)
	if tiny.W < 1 || tiny.H < 1 {
		t.Errorf("scaled rect should cover at least one cell, got %dx%d", tiny.W, tiny.H)
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
