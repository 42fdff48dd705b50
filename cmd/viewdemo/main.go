// Command viewdemo demonstrates the view camera library with Ebitengine.
//
// Controls:
//
//	arrows     scroll
//	Q / E      rotate
//	Z / X      zoom in / out (mouse wheel works too)
//	G          glide to a random tile
//	Space      screen shake
//	M          toggle minimap viewport
//	R          reset the camera
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/view"
	"github.com/gogpu/view/anim"
	"github.com/gogpu/view/integration/ebitenview"
)

const (
	screenW = 800
	screenH = 600

	worldSize = 2000.0
	tileStep  = 100.0
)

var homeRect = view.RectWH(0, 0, screenW, screenH)

type tile struct {
	rect  view.Rect
	color color.RGBA
}

type game struct {
	cam      *view.View
	minimap  *view.View
	animator *anim.Animator
	shake    anim.Shake
	offset   view.Vec2 // this frame's shake offset

	tiles       []tile
	white       *ebiten.Image
	showMinimap bool
}

func newGame() *game {
	cam := view.FromRect(homeRect)

	minimap := view.FromRect(view.RectWH(0, 0, worldSize, worldSize))
	minimap.SetViewport(view.RectWH(0.74, 0.02, 0.24, 0.24))

	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	g := &game{
		cam:         cam,
		minimap:     minimap,
		animator:    anim.NewAnimator(cam),
		white:       white,
		showMinimap: true,
	}
	for y := 0.0; y < worldSize; y += tileStep {
		for x := 0.0; x < worldSize; x += tileStep {
			g.tiles = append(g.tiles, tile{
				rect: view.RectWH(x+10, y+10, tileStep-20, tileStep-20),
				color: color.RGBA{
					R: uint8(50 + rand.Intn(180)),
					G: uint8(50 + rand.Intn(180)),
					B: uint8(50 + rand.Intn(180)),
					A: 255,
				},
			})
		}
	}
	return g
}

func (g *game) Update() error {
	const dt = 1.0 / 60

	// Scroll speed tracks the zoom level so panning feels constant.
	step := g.cam.Size().X / 120
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Move(view.V2(-step, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Move(view.V2(step, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Move(view.V2(0, -step))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Move(view.V2(0, step))
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.cam.Rotate(-1.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.cam.Rotate(1.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		g.cam.Zoom(0.98)
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		g.cam.Zoom(1.02)
	}
	if _, wheel := ebiten.Wheel(); wheel != 0 {
		if wheel > 0 {
			g.cam.Zoom(0.9)
		} else {
			g.cam.Zoom(1.1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		target := g.tiles[rand.Intn(len(g.tiles))].rect.Center()
		g.animator.PanTo(target, 1.2, ease.OutQuad)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.shake.Trigger(12, 40)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cam.Reset(homeRect)
		g.animator.Stop()
	}

	g.animator.Update(dt)
	g.offset = g.shake.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 24, A: 255})

	// Render through a shaken copy so the shake never drifts the camera.
	shaken := g.cam.Clone()
	shaken.Move(g.offset)
	g.drawWorld(screen, shaken)

	if g.showMinimap {
		g.drawWorld(screen, g.minimap)
	}

	mx, my := ebiten.CursorPosition()
	world := g.cam.MapPixelToCoords(view.Pt(float64(mx), float64(my)), screenW, screenH)
	hud := fmt.Sprintf("center (%.0f, %.0f)  rot %.0f  size %.0fx%.0f  cursor (%.0f, %.0f)",
		g.cam.Center().X, g.cam.Center().Y, g.cam.Rotation(),
		g.cam.Size().X, g.cam.Size().Y, world.X, world.Y)
	text.Draw(screen, hud, basicfont.Face7x13, 8, screenH-10, color.White)
}

func (g *game) drawWorld(screen *ebiten.Image, v *view.View) {
	target := screen.SubImage(ebitenview.ViewportBounds(v, screenW, screenH)).(*ebiten.Image)
	cam := ebitenview.GeoM(v, screenW, screenH)

	for _, t := range g.tiles {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(t.rect.Width(), t.rect.Height())
		op.GeoM.Translate(t.rect.Min.X, t.rect.Min.Y)
		op.GeoM.Concat(cam)
		op.ColorScale.ScaleWithColor(t.color)
		target.DrawImage(g.white, &op)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	verbose := flag.Bool("v", false, "log camera warnings to stderr")
	flag.Parse()
	if *verbose {
		view.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("viewdemo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
