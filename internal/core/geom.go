// Package core provides fundamental types and utilities for the arcade platform.
// It contains no host dependencies (no Bubble Tea, no Ebitengine) to keep game
// logic pure and testable.
package core

import "math"

// RectF is an axis-aligned rectangle in world units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// ClosestPoint returns the point of the rectangle nearest to (px, py).
// Points inside the rectangle map to themselves.
func (r RectF) ClosestPoint(px, py float64) (float64, float64) {
	return ClampF(px, r.X, r.Right()), ClampF(py, r.Y, r.Bottom())
}

// Circle is a circle in world units.
type Circle struct {
	X, Y float64 // Centre
	R    float64
}

// OverlapsRect reports whether the circle touches or overlaps the rectangle.
// Touching (distance exactly R) counts as overlap.
func (c Circle) OverlapsRect(r RectF) bool {
	nx, ny := r.ClosestPoint(c.X, c.Y)
	return DistSq(c.X, c.Y, nx, ny) <= c.R*c.R
}

// DistSq returns the squared distance between two points.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Dist returns the distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistSq(x1, y1, x2, y2))
}

// Hypot returns the magnitude of a 2D vector.
func Hypot(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
