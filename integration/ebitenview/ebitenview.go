// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/view"
)

// Viewer is the read surface this package consumes. *view.View,
// *view.Handle and view.Ref all satisfy it.
type Viewer interface {
	Transform() view.Matrix
	PixelViewport(targetW, targetH int) image.Rectangle
}

// GeoM returns the geometry matrix mapping world coordinates to pixel
// coordinates on a target of the given size: the view's world-to-clip
// transform composed with the clip-to-viewport-pixel mapping.
func GeoM(v Viewer, targetW, targetH int) ebiten.GeoM {
	vp := v.PixelViewport(targetW, targetH)
	halfW := float64(vp.Dx()) / 2
	halfH := float64(vp.Dy()) / 2

	// clip [-1,1] (y up) -> viewport pixels (y down)
	clipToPixel := view.Translate(float64(vp.Min.X)+halfW, float64(vp.Min.Y)+halfH).
		Multiply(view.Scale(halfW, -halfH))
	m := clipToPixel.Multiply(v.Transform())

	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}

// ViewportBounds returns the sub-image bounds for the view's viewport on a
// target of the given size, clipped to the target. Pass the result to
// (*ebiten.Image).SubImage to restrict drawing to the viewport.
func ViewportBounds(v Viewer, targetW, targetH int) image.Rectangle {
	return v.PixelViewport(targetW, targetH).Intersect(image.Rect(0, 0, targetW, targetH))
}

// Apply returns the viewport sub-image of target together with the world-to-
// pixel geometry matrix for it. The GeoM is computed against the full target
// size, so it is valid for drawing into the returned sub-image.
func Apply(v Viewer, target *ebiten.Image) (*ebiten.Image, ebiten.GeoM) {
	b := target.Bounds()
	w, h := b.Dx(), b.Dy()
	sub := target.SubImage(ViewportBounds(v, w, h).Add(b.Min)).(*ebiten.Image)
	return sub, GeoM(v, w, h)
}
