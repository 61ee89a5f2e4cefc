// Package core provides fundamental types and utilities for the stack game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec3 is a point or extent in world space.
// X and Z are the horizontal axes, Y points up.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new vector.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Span is a closed interval on a single axis.
type Span struct {
	Min, Max float64
}

// SpanAround returns the interval of the given extent centered on c.
func SpanAround(c, extent float64) Span {
	return Span{Min: c - extent/2, Max: c + extent/2}
}

// Overlap returns the length of the intersection of two spans.
// Disjoint or touching spans yield 0.
func (s Span) Overlap(o Span) float64 {
	return math.Max(0, math.Min(s.Max, o.Max)-math.Max(s.Min, o.Min))
}

// Intersection returns the shared interval of two spans.
// The result is only meaningful when Overlap is positive.
func (s Span) Intersection(o Span) Span {
	return Span{Min: math.Max(s.Min, o.Min), Max: math.Min(s.Max, o.Max)}
}

// Mid returns the center of the span.
func (s Span) Mid() float64 {
	return (s.Min + s.Max) / 2
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
