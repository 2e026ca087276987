// Package core provides fundamental types and utilities for the hopper
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D float vector. X is the lateral axis, Y is the forward
// (scroll) axis of the pond.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Circle is a circular footprint used for overlap tests between the
// player, pads, hazards and pickups.
type Circle struct {
	Pos    Vec2
	Radius float64
}

// Overlaps returns true if the two circles intersect, with extra
// required spacing added to the combined radii.
func (c Circle) Overlaps(o Circle, extraSpacing float64) bool {
	return c.Pos.Dist(o.Pos) < c.Radius+o.Radius+extraSpacing
}

// LaneBounds limits lateral placement and movement to the playable
// band of the pond.
type LaneBounds struct {
	MinX, MaxX float64
}

// ClampX restricts a lateral coordinate to the lane.
func (b LaneBounds) ClampX(x float64) float64 {
	return ClampF(x, b.MinX, b.MaxX)
}

// Contains reports whether a lateral coordinate lies inside the lane.
func (b LaneBounds) Contains(x float64) bool {
	return x >= b.MinX && x <= b.MaxX
}

// Rect represents an axis-aligned box used by the screen buffer for
// HUD frames. Simulation collision uses circles, not rects.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
