// Package core holds the types shared by the game and its front-ends:
// geometry, the cell screen, input and runtime settings. It imports no UI
// library so the game can be stepped in tests.
package core

import "cmp"

// Point is an integer position, in screen cells or field units depending
// on the caller.
type Point struct {
	X, Y int
}

// Rect is an integer axis-aligned rectangle. Points are contained
// half-open: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rectangle at (x, y) of size w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }
func (r Rect) Area() int   { return r.W * r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and o share area. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return overlaps(r.X, r.Right(), o.X, o.Right()) && overlaps(r.Y, r.Bottom(), o.Y, o.Bottom())
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// ContainsRectF reports whether b lies inside r. A ball resting against
// r's border is still inside.
func (r Rect) ContainsRectF(b RectF) bool {
	return b.X >= float64(r.X) && b.Right() <= float64(r.Right()) &&
		b.Y >= float64(r.Y) && b.Bottom() <= float64(r.Bottom())
}

// Center returns the middle cell, rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is a rectangle with fractional position, used for balls.
type RectF struct {
	X, Y float64
	W, H float64
}

func (r RectF) Right() float64  { return r.X + r.W }
func (r RectF) Bottom() float64 { return r.Y + r.H }
func (r RectF) Area() float64   { return r.W * r.H }

// Intersects reports whether r and o share area. Touching edges do not count.
func (r RectF) Intersects(o RectF) bool {
	return overlaps(r.X, r.Right(), o.X, o.Right()) && overlaps(r.Y, r.Bottom(), o.Y, o.Bottom())
}

// overlaps reports whether the open intervals (a0, a1) and (b0, b1) meet.
func overlaps[T cmp.Ordered](a0, a1, b0, b1 T) bool {
	return a0 < b1 && b0 < a1
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
