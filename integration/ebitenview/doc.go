// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenview applies a view camera to Ebitengine rendering.
//
// Ebitengine draws with pixel-space geometry matrices, so the package
// converts a view's two outputs into Ebitengine terms:
//
//   - GeoM: the world-to-target-pixel ebiten.GeoM, ready to use as the
//     GeoM of DrawImageOptions or DrawTriangles vertices.
//   - ViewportBounds: the image.Rectangle to pass to (*ebiten.Image).SubImage
//     so drawing is restricted to the view's viewport.
//
// Example:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
//	    target := screen.SubImage(ebitenview.ViewportBounds(g.cam, w, h)).(*ebiten.Image)
//
//	    var op ebiten.DrawImageOptions
//	    op.GeoM.Translate(spriteX, spriteY)                // object placement
//	    op.GeoM.Concat(ebitenview.GeoM(g.cam, w, h))      // camera on top
//	    target.DrawImage(sprite, &op)
//	}
package ebitenview
