package view

import (
	"image"
	"math"
)

// Target-space helpers. A render target applies a View in two steps: the
// world-to-clip matrix (Transform) and the clip-to-pixel viewport mapping.
// The functions here combine both so callers can convert between pixel and
// world coordinates without owning a renderer.

// PixelViewport returns the viewport of the view applied to a target of the
// given pixel size, rounded to whole pixels.
func (v *View) PixelViewport(targetW, targetH int) image.Rectangle {
	vp := v.viewport
	w := float64(targetW)
	h := float64(targetH)
	return image.Rect(
		int(math.Round(w*vp.Min.X)),
		int(math.Round(h*vp.Min.Y)),
		int(math.Round(w*vp.Max.X)),
		int(math.Round(h*vp.Max.Y)),
	)
}

// MapPixelToCoords converts a target pixel position to the world-space point
// shown there under this view: the pixel is first normalized against the
// pixel viewport into clip space, then run through the inverse transform.
//
// Useful for hit testing, e.g. finding what the mouse cursor points at.
//
// If the viewport rounds to zero pixels on this target the normalization is
// degenerate; MapPixelToCoords returns the pixel unchanged and logs a
// warning instead of dividing by zero (the same convention as Transform for
// a zero-sized view).
func (v *View) MapPixelToCoords(pixel Point, targetW, targetH int) Point {
	vp := v.PixelViewport(targetW, targetH)
	if vp.Dx() == 0 || vp.Dy() == 0 {
		Logger().Warn("view: degenerate pixel viewport, mapping is identity",
			"width", vp.Dx(), "height", vp.Dy())
		return pixel
	}
	normalized := Point{
		X: -1 + 2*(pixel.X-float64(vp.Min.X))/float64(vp.Dx()),
		Y: 1 - 2*(pixel.Y-float64(vp.Min.Y))/float64(vp.Dy()),
	}
	return v.InverseTransform().TransformPoint(normalized)
}

// MapCoordsToPixel converts a world-space point to the target pixel position
// where this view shows it. The inverse of MapPixelToCoords; the returned
// coordinates may be fractional.
func (v *View) MapCoordsToPixel(world Point, targetW, targetH int) Point {
	normalized := v.Transform().TransformPoint(world)
	vp := v.PixelViewport(targetW, targetH)
	return Point{
		X: (normalized.X+1)/2*float64(vp.Dx()) + float64(vp.Min.X),
		Y: (-normalized.Y+1)/2*float64(vp.Dy()) + float64(vp.Min.Y),
	}
}
