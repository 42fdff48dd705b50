package view

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
//
// The same type serves two roles: world-space regions (FromRect, Reset) and
// viewport rectangles in target-fraction coordinates (SetViewport).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectWH creates a rectangle from a top-left corner and a width/height.
// Width and height are not normalized; negative values produce an inverted
// rectangle, which the caller is responsible for.
func RectWH(x, y, w, h float64) Rect {
	return Rect{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + w, Y: y + h},
	}
}

// UnitRect returns the rectangle (0,0)-(1,1), the default viewport covering
// the whole render target.
func UnitRect() Rect {
	return Rect{Max: Point{X: 1, Y: 1}}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the extent of the rectangle as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Approx returns true if two rectangles are approximately equal within epsilon.
func (r Rect) Approx(s Rect, epsilon float64) bool {
	return r.Min.Approx(s.Min, epsilon) && r.Max.Approx(s.Max, epsilon)
}
