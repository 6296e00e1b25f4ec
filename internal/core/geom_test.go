package core

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coordinates", V(-1, -1), V(2, 3), 5},
		{"horizontal", V(10, 7), V(4, 7), 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Distance(tc.a, tc.b)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %f, expected %f", result, tc.expected)
			}
			// Distance is symmetric
			if reverse := Distance(tc.b, tc.a); reverse != result {
				t.Errorf("Distance() (reversed) = %f, expected %f", reverse, result)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	dir, ok := Direction(V(0, 0), V(3, 4))
	if !ok {
		t.Fatal("Direction between distinct points should be ok")
	}
	if math.Abs(dir.X-0.6) > 1e-9 || math.Abs(dir.Y-0.8) > 1e-9 {
		t.Errorf("Direction() = (%f, %f), expected (0.6, 0.8)", dir.X, dir.Y)
	}
	if math.Abs(dir.Len()-1) > 1e-9 {
		t.Errorf("Direction should be a unit vector, length = %f", dir.Len())
	}
}

func TestDirectionZeroDistance(t *testing.T) {
	dir, ok := Direction(V(5, 5), V(5, 5))
	if ok {
		t.Error("Direction between equal points should not be ok")
	}
	if dir != (Vec{}) {
		t.Errorf("Direction() = %+v, expected zero vector", dir)
	}
	if math.IsNaN(dir.X) || math.IsNaN(dir.Y) {
		t.Error("Direction must not produce NaN")
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)

	if got := b.Sub(a); got != V(3, 4) {
		t.Errorf("Sub() = %+v, expected (3, 4)", got)
	}
	if got := a.Add(b); got != V(5, 8) {
		t.Errorf("Add() = %+v, expected (5, 8)", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale() = %+v, expected (2, 4)", got)
	}
	if got := b.Sub(a).Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

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

func TestRectCenterVec(t *testing.T) {
	r := NewRect(360, 260, 80, 80)
	if got := r.CenterVec(); got != V(400, 300) {
		t.Errorf("CenterVec() = %+v, expected (400, 300)", got)
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
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
