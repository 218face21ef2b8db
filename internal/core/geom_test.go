package core

import (
	"math"
	"testing"
)

func TestRectFClosestPoint(t *testing.T) {
	r := RectF{X: 10, Y: 20, W: 40, H: 20}

	tests := []struct {
		name   string
		px, py float64
		wx, wy float64
	}{
		{"inside maps to itself", 30, 30, 30, 30},
		{"left of rect", 0, 30, 10, 30},
		{"below right corner", 80, 90, 50, 40},
		{"above", 25, 0, 25, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := r.ClosestPoint(tc.px, tc.py)
			if x != tc.wx || y != tc.wy {
				t.Errorf("ClosestPoint(%g, %g) = (%g, %g), expected (%g, %g)", tc.px, tc.py, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestCircleOverlapsRect(t *testing.T) {
	r := RectF{X: 100, Y: 100, W: 40, H: 20}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"touching left edge exactly", Circle{X: 90, Y: 110, R: 10}, true},
		{"just short of left edge", Circle{X: 89.999, Y: 110, R: 10}, false},
		{"touching bottom edge exactly", Circle{X: 120, Y: 130, R: 10}, true},
		{"near corner", Circle{X: 94, Y: 94, R: 10}, true},
		{"diagonal past corner", Circle{X: 90, Y: 90, R: 10}, false},
		{"centre inside", Circle{X: 120, Y: 110, R: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.OverlapsRect(r); got != tc.expected {
				t.Errorf("OverlapsRect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDistances(t *testing.T) {
	if got := DistSq(0, 0, 3, 4); got != 25 {
		t.Errorf("DistSq = %g, expected 25", got)
	}
	if got := Dist(1, 1, 4, 5); got != 5 {
		t.Errorf("Dist = %g, expected 5", got)
	}
	if got := Hypot(-3, 4); math.Abs(got-5) > 1e-12 {
		t.Errorf("Hypot = %g, expected 5", got)
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
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
