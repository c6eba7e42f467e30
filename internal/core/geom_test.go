package core

import "testing"

func TestDetectCollision(t *testing.T) {
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
			name:     "touching corners",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 5, 5),
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
			b:        NewRect(9.9, 9.9, 10, 10),
			expected: true,
		},
		{
			name:     "sprite left of obstacle",
			a:        NewRect(50, 0, 34, 24),
			b:        NewRect(100, 0, 64, 612),
			expected: false,
		},
		{
			name:     "sprite inside obstacle",
			a:        NewRect(50, 300, 34, 24),
			b:        NewRect(40, 290, 64, 612),
			expected: true,
		},
		{
			name:     "obstacle above screen",
			a:        NewRect(95, 0, 34, 24),
			b:        NewRect(90, -600, 64, 612),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := DetectCollision(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("DetectCollision() = %v, expected %v", result, tc.expected)
			}
			// Swapping the arguments must not change the answer
			resultReverse := DetectCollision(tc.b, tc.a)
			if resultReverse != tc.expected {
				t.Errorf("DetectCollision() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
			if tc.a.Intersects(tc.b) != result {
				t.Errorf("Intersects() disagrees with DetectCollision()")
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15.5)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25.5 {
		t.Errorf("Bottom() = %v, expected 25.5", r.Bottom())
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

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestIsJumpKey(t *testing.T) {
	for _, k := range []Key{KeySpace, KeyUp, KeyX} {
		if !IsJumpKey(k) {
			t.Errorf("IsJumpKey(%q) = false, expected true", k)
		}
	}
	for _, k := range []Key{KeyNone, "down", "enter", "X"} {
		if IsJumpKey(k) {
			t.Errorf("IsJumpKey(%q) = true, expected false", k)
		}
	}
}
