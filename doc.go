// Package view provides a 2D camera abstraction for Go renderers.
//
// # Overview
//
// A View describes which rectangular region of world space is shown on a
// render target: a center point, a size, a rotation, and a viewport. Moving,
// rotating or zooming the View scrolls, rotates or zooms the whole scene
// without touching the objects being drawn.
//
// A renderer consumes exactly two values from a View before drawing:
//   - Transform: the matrix mapping world coordinates to normalized
//     [-1,1]x[-1,1] clip space, derived from center/size/rotation.
//   - Viewport: the sub-rectangle of the target (in fractions of the target
//     size) into which the clip-space content is drawn.
//
// The two are deliberately decoupled: the viewport is never folded into the
// transform matrix. Target-space helpers (PixelViewport, MapPixelToCoords,
// MapCoordsToPixel) combine them for convenience.
//
// # Quick Start
//
//	import "github.com/gogpu/view"
//
//	// A camera showing the 200x200 world region centered on (100, 100).
//	v := view.New(view.Pt(100, 100), view.V2(200, 200))
//
//	v.Move(view.V2(10, 0))  // scroll right
//	v.Zoom(0.5)             // zoom in (half the world region visible)
//	v.Rotate(15)            // tilt the camera 15 degrees
//
//	m := v.Transform()      // world -> clip space, feed to the renderer
//	vp := v.Viewport()      // fractions of the target, feed to the target
//
// # Ownership
//
// View is a plain value: Clone yields a fully independent copy, and nothing
// is shared after a copy. For code that hands cameras across component
// boundaries, the Arena/Handle/Ref layer provides an owning handle and a
// borrowed read-only reference with runtime use-after-release detection.
// See Arena.
//
// # Coordinate System
//
//   - World: X increases right, Y increases down (standard 2D graphics).
//   - Clip space: [-1,1] on both axes, Y up. The vertical flip is part of
//     the derived transform.
//   - Rotation is in degrees and rotates the camera; the scene appears to
//     rotate the opposite way. Angles accumulate without normalization:
//     Rotate(350) then Rotate(20) reads back as 370.
//
// # Degenerate Views
//
// The package preserves a permissive contract: zero or negative sizes,
// zoom factors <= 0 and viewport fractions outside [0,1] are accepted
// without validation. Only the divisions are guarded: Transform on a
// zero-sized view returns the identity matrix, and MapPixelToCoords on a
// viewport that rounds to zero pixels returns the pixel unchanged; both log
// a warning (see SetLogger).
package view

// Version is the current version of the library.
const Version = "0.1.0"
