package view

import (
	"bytes"
	"image"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestPixelViewport(t *testing.T) {
	tests := []struct {
		name     string
		viewport Rect
		w, h     int
		want     image.Rectangle
	}{
		{"full target", UnitRect(), 800, 600, image.Rect(0, 0, 800, 600)},
		{"left half", RectWH(0, 0, 0.5, 1), 800, 600, image.Rect(0, 0, 400, 600)},
		{"right half", RectWH(0.5, 0, 0.5, 1), 800, 600, image.Rect(400, 0, 800, 600)},
		{"centered quarter", RectWH(0.25, 0.25, 0.5, 0.5), 800, 600, image.Rect(200, 150, 600, 450)},
		{"rounding", RectWH(0, 0, 1.0/3, 1), 100, 10, image.Rect(0, 0, 33, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(Pt(0, 0), V2(100, 100))
			v.SetViewport(tt.viewport)
			got := v.PixelViewport(tt.w, tt.h)
			if got != tt.want {
				t.Errorf("PixelViewport(%d,%d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestMapCoordsToPixel(t *testing.T) {
	v := New(Pt(100, 100), V2(200, 100))

	tests := []struct {
		name  string
		world Point
		want  Point
	}{
		{"center to target middle", Pt(100, 100), Pt(400, 300)},
		{"right edge", Pt(200, 100), Pt(800, 300)},
		{"top-left corner", Pt(0, 50), Pt(0, 0)},
		{"bottom-right corner", Pt(200, 150), Pt(800, 600)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.MapCoordsToPixel(tt.world, 800, 600)
			if !got.Approx(tt.want, epsilon) {
				t.Errorf("MapCoordsToPixel(%v) = %v, want %v", tt.world, got, tt.want)
			}
		})
	}
}

func TestMapCoordsToPixelWithViewport(t *testing.T) {
	v := New(Pt(100, 100), V2(200, 100))
	v.SetViewport(RectWH(0.5, 0, 0.5, 1))

	// The view center lands in the middle of the right-half viewport.
	got := v.MapCoordsToPixel(Pt(100, 100), 800, 600)
	want := Pt(600, 300)
	if !got.Approx(want, epsilon) {
		t.Errorf("MapCoordsToPixel(center) = %v, want %v", got, want)
	}
}

func TestMapPixelToCoordsRoundTrip(t *testing.T) {
	v := New(Pt(-20, 75), V2(320, 240))
	v.SetRotation(18)
	v.SetViewport(RectWH(0.25, 0.25, 0.5, 0.5))

	pixels := []Point{Pt(400, 300), Pt(200, 150), Pt(599, 449), Pt(0, 0)}
	for _, p := range pixels {
		world := v.MapPixelToCoords(p, 800, 600)
		back := v.MapCoordsToPixel(world, 800, 600)
		if !back.Approx(p, 1e-6) {
			t.Errorf("round trip of pixel %v = %v", p, back)
		}
	}
}

func TestMapPixelToCoordsDegenerateViewport(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	v := New(Pt(0, 0), V2(100, 100))
	// A viewport this thin rounds to zero pixels on a small target.
	v.SetViewport(RectWH(0, 0, 0.001, 1))

	got := v.MapPixelToCoords(Pt(5, 5), 100, 100)
	if got != Pt(5, 5) {
		t.Errorf("degenerate MapPixelToCoords = %v, want the pixel unchanged", got)
	}
	if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
		t.Errorf("degenerate mapping produced non-finite X: %v", got.X)
	}
	if !strings.Contains(buf.String(), "degenerate") {
		t.Errorf("degenerate mapping did not warn, log: %q", buf.String())
	}
}

func TestMapPixelToCoordsIgnoresZoomlessScroll(t *testing.T) {
	// Scrolling the view shifts mapped world coordinates by the same offset.
	v := New(Pt(0, 0), V2(800, 600))
	before := v.MapPixelToCoords(Pt(123, 456), 800, 600)
	v.Move(V2(50, -30))
	after := v.MapPixelToCoords(Pt(123, 456), 800, 600)
	if !after.Approx(before.Add(V2(50, -30)), 1e-6) {
		t.Errorf("scrolled mapping = %v, want %v", after, before.Add(V2(50, -30)))
	}
}
