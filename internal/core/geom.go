// Package core provides fundamental types and utilities for the trainer.
// It contains no external dependencies on Bubble Tea to keep simulation
// logic pure and testable.
package core

import "cmp"

// Rect is an axis-aligned rectangle in terminal cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned square or rectangle in field pixels.
// Targets are modelled as boxes whose top-left corner is their position.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Contains reports whether the point (x, y) lies inside the box.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Intersects reports whether the two boxes share any area.
// Boxes that only touch along an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Within reports whether the box lies fully inside [0, w] x [0, h].
func (b Box) Within(w, h float64) bool {
	return b.X >= 0 && b.Y >= 0 && b.Right() <= w && b.Bottom() <= h
}

// Clamp restricts a value to be within [lo, hi].
// When lo > hi the result is lo.
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
