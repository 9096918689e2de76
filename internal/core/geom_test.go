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
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical (no overlap)",
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
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "player landing on platform",
			a:        NewRect(50, 391, 40, 60),
			b:        NewRect(0, 450, 300, 50),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Intersection is symmetric
			if tc.b.Intersects(tc.a) != result {
				t.Errorf("Intersects() is not symmetric for %v and %v", tc.a, tc.b)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{10, 10, true},
		{14.9, 14.9, true},
		{12, 12, true},
		{15, 10, false},
		{10, 15, false},
		{9.9, 10, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(750, 400, 50, 50)

	if r.Right() != 800 {
		t.Errorf("Right() = %v, expected 800", r.Right())
	}
	if r.Bottom() != 450 {
		t.Errorf("Bottom() = %v, expected 450", r.Bottom())
	}
	if c := r.Center(); c != (Point{X: 775, Y: 425}) {
		t.Errorf("Center() = %v, expected {775 425}", c)
	}
}

func TestRectScale(t *testing.T) {
	r := NewRect(100, 50, 40, 60).Scale(0.1, 0.5)
	expected := NewRect(10, 25, 4, 30)
	if r != expected {
		t.Errorf("Scale() = %v, expected %v", r, expected)
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
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name           string
		worldW, worldH int
		compact        bool
		availW         int
		availH         int
		wantW, wantH   int
	}{
		{"full layout ignores available area", 800, 500, false, 300, 200, 800, 500},
		{"full layout follows the world", 1000, 600, false, 300, 200, 1000, 600},
		{"compact on a large display", 800, 500, true, 1920, 1080, 800, 500},
		{"compact caps at a larger world", 1000, 600, true, 1920, 1080, 1000, 600},
		{"compact on a phone", 800, 500, true, 390, 844, 370, 500},
		{"compact on a short display", 800, 500, true, 390, 500, 370, 350},
		{"compact never collapses to zero", 800, 500, true, 10, 100, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := CanvasSize(tc.worldW, tc.worldH, tc.compact, tc.availW, tc.availH)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("CanvasSize() = %dx%d, expected %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}
