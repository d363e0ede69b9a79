// Package core provides fundamental types and utilities shared by the simulation
// and the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are in world units, not terminal cells.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Collide reports whether a and b overlap on both axes.
func Collide(a, b Rect) bool {
	return a.Intersects(b)
}

// Size is the viewport extent in world units.
type Size struct {
	W, H float64
}

// Rect returns the viewport as a rectangle anchored at the origin.
func (s Size) Rect() Rect {
	return Rect{W: s.W, H: s.H}
}

// OptTime is a timestamp that may be absent. The zero value is absent.
type OptTime struct {
	T     float64
	Valid bool
}

// At returns a present timestamp.
func At(t float64) OptTime {
	return OptTime{T: t, Valid: true}
}

// Since returns now-T, or 0 when the timestamp is absent.
func (o OptTime) Since(now float64) float64 {
	if !o.Valid {
		return 0
	}
	return now - o.T
}

// ClampF restricts a float64 value to be within [min, max].
// NaN collapses to min.
func ClampF(val, min, max float64) float64 {
	if math.IsNaN(val) || val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
