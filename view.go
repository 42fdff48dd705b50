package view

import "math"

// View is a 2D camera: it defines which region of world space is shown on a
// render target, and where on the target it is shown.
//
// A View holds four independent properties:
//   - center: the world-space point mapped to the middle of the viewport
//   - size: the width/height of the visible world region
//   - rotation: the camera orientation in degrees
//   - viewport: the target sub-rectangle, in fractions of the target size
//
// Changing one property never implicitly changes another, with a single
// documented exception: Reset sets rotation back to 0.
//
// View is a plain value with no shared state; Clone returns a fully
// independent copy. A View is not safe for concurrent use; either confine
// it to one goroutine or synchronize externally.
type View struct {
	center   Point
	size     Vec2
	rotation float64 // degrees, raw accumulation, never normalized
	viewport Rect

	// Derived matrices, rebuilt lazily after a mutation.
	transform    Matrix
	invTransform Matrix
	transformOK  bool
	invOK        bool
}

// Default returns a View with center (0,0), size (0,0), rotation 0 and the
// full-target viewport. The zero size is a placeholder: callers set a real
// size (SetSize, Reset) before deriving a transform.
func Default() *View {
	return &View{viewport: UnitRect()}
}

// New returns a View showing the world region of the given size centered on
// center, with rotation 0 and the full-target viewport.
func New(center Point, size Vec2) *View {
	return &View{
		center:   center,
		size:     size,
		viewport: UnitRect(),
	}
}

// FromRect returns a View showing exactly the given world rectangle, with
// rotation 0 and the full-target viewport.
func FromRect(r Rect) *View {
	return New(r.Center(), r.Size())
}

// Center returns the world-space point at the middle of the view.
func (v *View) Center() Point { return v.center }

// Size returns the extent of the visible world region.
func (v *View) Size() Vec2 { return v.size }

// Rotation returns the current orientation of the view, in degrees.
// The value is whatever was accumulated; it is not wrapped into [0,360).
func (v *View) Rotation() float64 { return v.rotation }

// Viewport returns the target viewport rectangle, expressed as fractions
// (nominally 0 to 1) of the render-target size.
func (v *View) Viewport() Rect { return v.viewport }

// SetCenter sets the world-space point shown at the middle of the view.
func (v *View) SetCenter(center Point) {
	v.center = center
	v.invalidate()
}

// SetSize sets the extent of the visible world region.
// Components are conventionally positive; negative values flip the
// corresponding axis and zero makes the transform degenerate (see Transform).
func (v *View) SetSize(size Vec2) {
	v.size = size
	v.invalidate()
}

// SetRotation sets the orientation of the view to an absolute angle in
// degrees. No wrap-around is performed.
func (v *View) SetRotation(degrees float64) {
	v.rotation = degrees
	v.invalidate()
}

// Rotate turns the view relative to its current orientation.
func (v *View) Rotate(degrees float64) {
	v.rotation += degrees
	v.invalidate()
}

// Move scrolls the view relative to its current center.
func (v *View) Move(offset Vec2) {
	v.center = v.center.Add(offset)
	v.invalidate()
}

// Zoom resizes the visible world region relative to its current size.
// The factor is a multiplier:
//   - 1 keeps the size unchanged
//   - smaller than 1 shrinks the visible region (objects appear bigger)
//   - bigger than 1 grows the visible region (objects appear smaller)
//
// Factors <= 0 are not rejected; they leave the view with a zero or
// axis-flipped size, which is the caller's responsibility.
func (v *View) Zoom(factor float64) {
	v.size = v.size.Mul(factor)
	v.invalidate()
}

// SetViewport sets the target viewport rectangle, expressed as fractions of
// the render-target size. For example, a view drawn into the left half of
// the target uses RectWH(0, 0, 0.5, 1). Fractions are not clamped to [0,1];
// a render target may clip out-of-range viewports.
//
// The viewport is independent of center, size and rotation and is not part
// of the matrix returned by Transform.
func (v *View) SetViewport(r Rect) {
	v.viewport = r
}

// Reset makes the view show exactly the given world rectangle: center and
// size are taken from r and rotation is set back to 0. Reset is the only
// mutator that touches more than one property. The viewport is unchanged.
func (v *View) Reset(r Rect) {
	v.center = r.Center()
	v.size = r.Size()
	v.rotation = 0
	v.invalidate()
}

// Clone returns an independent copy of the view. Mutating the clone never
// affects the original and vice versa.
func (v *View) Clone() *View {
	c := *v
	return &c
}

// Transform returns the matrix mapping world coordinates to normalized
// [-1,1]x[-1,1] clip space: translate by -center, rotate by -rotation,
// then scale by (2/width, -2/height). The Y flip converts the y-down world
// into y-up clip space.
//
// If either size component is zero the mapping is degenerate; Transform
// returns the identity matrix and logs a warning instead of dividing by
// zero.
//
// The result is cached and rebuilt only after a mutation.
func (v *View) Transform() Matrix {
	if !v.transformOK {
		v.transform = v.buildTransform()
		v.transformOK = true
	}
	return v.transform
}

// InverseTransform returns the inverse of Transform, mapping normalized
// clip-space coordinates back to world space. Cached like Transform.
func (v *View) InverseTransform() Matrix {
	if !v.invOK {
		v.invTransform = v.Transform().Invert()
		v.invOK = true
	}
	return v.invTransform
}

func (v *View) buildTransform() Matrix {
	if v.size.X == 0 || v.size.Y == 0 {
		Logger().Warn("view: degenerate size, transform is identity",
			"width", v.size.X, "height", v.size.Y)
		return Identity()
	}
	radians := -v.rotation * math.Pi / 180
	return Scale(2/v.size.X, -2/v.size.Y).
		Multiply(Rotate(radians)).
		Multiply(Translate(-v.center.X, -v.center.Y))
}

func (v *View) invalidate() {
	v.transformOK = false
	v.invOK = false
}
