package view

import (
	"testing"
)

func TestDefaultView(t *testing.T) {
	v := Default()
	if got := v.Center(); got != Pt(0, 0) {
		t.Errorf("Center() = %v, want (0,0)", got)
	}
	if got := v.Size(); got != V2(0, 0) {
		t.Errorf("Size() = %v, want (0,0)", got)
	}
	if got := v.Rotation(); got != 0 {
		t.Errorf("Rotation() = %v, want 0", got)
	}
	if got := v.Viewport(); got != UnitRect() {
		t.Errorf("Viewport() = %+v, want unit rect", got)
	}
}

func TestNewView(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		size   Vec2
	}{
		{"origin", Pt(0, 0), V2(100, 100)},
		{"offset", Pt(-30, 250), V2(640, 480)},
		{"tiny", Pt(0.5, 0.5), V2(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.center, tt.size)
			if got := v.Center(); got != tt.center {
				t.Errorf("Center() = %v, want %v", got, tt.center)
			}
			if got := v.Size(); got != tt.size {
				t.Errorf("Size() = %v, want %v", got, tt.size)
			}
			if got := v.Rotation(); got != 0 {
				t.Errorf("Rotation() = %v, want 0", got)
			}
			if got := v.Viewport(); got != UnitRect() {
				t.Errorf("Viewport() = %+v, want unit rect", got)
			}
		})
	}
}

func TestFromRect(t *testing.T) {
	r := RectWH(100, 200, 400, 300)
	v := FromRect(r)
	if got := v.Center(); got != Pt(300, 350) {
		t.Errorf("Center() = %v, want (300,350)", got)
	}
	if got := v.Size(); got != V2(400, 300) {
		t.Errorf("Size() = %v, want (400,300)", got)
	}
	if got := v.Rotation(); got != 0 {
		t.Errorf("Rotation() = %v, want 0", got)
	}
}

func TestSetCenterIdempotent(t *testing.T) {
	a := New(Pt(0, 0), V2(100, 100))
	b := New(Pt(0, 0), V2(100, 100))
	a.SetCenter(Pt(42, 17))
	b.SetCenter(Pt(42, 17))
	b.SetCenter(Pt(42, 17))
	if a.Center() != b.Center() {
		t.Errorf("repeated SetCenter diverged: %v vs %v", a.Center(), b.Center())
	}
}

func TestRotateAccumulates(t *testing.T) {
	v := New(Pt(0, 0), V2(100, 100))
	v.SetRotation(10)
	v.Rotate(350)
	v.Rotate(20)
	// No implicit wrap-around.
	if got := v.Rotation(); got != 380 {
		t.Errorf("Rotation() = %v, want 380", got)
	}
	v.Rotate(-400)
	if got := v.Rotation(); got != -20 {
		t.Errorf("Rotation() = %v, want -20", got)
	}
}

func TestZoom(t *testing.T) {
	v := New(Pt(0, 0), V2(100, 100))

	v.Zoom(1.0)
	if got := v.Size(); got != V2(100, 100) {
		t.Errorf("Zoom(1) changed size to %v", got)
	}

	v.Zoom(2.0)
	if got := v.Size(); got != V2(200, 200) {
		t.Errorf("Zoom(2) size = %v, want (200,200)", got)
	}

	// Zoom(k1) then Zoom(k2) equals a single Zoom(k1*k2).
	a := New(Pt(0, 0), V2(64, 48))
	b := New(Pt(0, 0), V2(64, 48))
	a.Zoom(0.5)
	a.Zoom(3)
	b.Zoom(1.5)
	if !a.Size().Approx(b.Size(), epsilon) {
		t.Errorf("Zoom(0.5);Zoom(3) = %v, Zoom(1.5) = %v", a.Size(), b.Size())
	}
}

func TestMove(t *testing.T) {
	v := New(Pt(0, 0), V2(100, 100))
	v.Move(V2(10, 10))
	if got := v.Center(); got != Pt(10, 10) {
		t.Errorf("Center() = %v, want (10,10)", got)
	}
	v.Move(V2(-25, 5))
	if got := v.Center(); got != Pt(-15, 15) {
		t.Errorf("Center() = %v, want (-15,15)", got)
	}
}

func TestReset(t *testing.T) {
	v := New(Pt(5, 5), V2(10, 10))
	v.SetRotation(45)
	vp := RectWH(0, 0, 0.5, 1)
	v.SetViewport(vp)

	v.Reset(RectWH(0, 0, 200, 100))

	if got := v.Center(); got != Pt(100, 50) {
		t.Errorf("Center() = %v, want (100,50)", got)
	}
	if got := v.Size(); got != V2(200, 100) {
		t.Errorf("Size() = %v, want (200,100)", got)
	}
	if got := v.Rotation(); got != 0 {
		t.Errorf("Reset must zero rotation, got %v", got)
	}
	// Reset never touches the viewport.
	if got := v.Viewport(); got != vp {
		t.Errorf("Reset changed viewport to %+v", got)
	}
}

func TestViewportIndependence(t *testing.T) {
	v := New(Pt(0, 0), V2(100, 100))
	vp := RectWH(0.25, 0.25, 0.5, 0.5)
	v.SetViewport(vp)

	v.SetCenter(Pt(99, 99))
	v.SetSize(V2(1, 1))
	v.Rotate(123)

	if got := v.Viewport(); got != vp {
		t.Errorf("viewport changed to %+v after unrelated mutations", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	a := New(Pt(1, 2), V2(3, 4))
	a.SetRotation(30)
	b := a.Clone()

	b.SetCenter(Pt(100, 100))
	b.Rotate(60)
	b.SetViewport(RectWH(0, 0, 0.5, 0.5))

	if got := a.Center(); got != Pt(1, 2) {
		t.Errorf("original center changed to %v", got)
	}
	if got := a.Rotation(); got != 30 {
		t.Errorf("original rotation changed to %v", got)
	}
	if got := a.Viewport(); got != UnitRect() {
		t.Errorf("original viewport changed to %+v", got)
	}

	a.SetSize(V2(9, 9))
	if got := b.Size(); got != V2(3, 4) {
		t.Errorf("clone size changed to %v", got)
	}
}

func TestTransformMapsViewRegionToClipSpace(t *testing.T) {
	v := New(Pt(100, 100), V2(200, 100))
	m := v.Transform()

	tests := []struct {
		name  string
		world Point
		want  Point
	}{
		{"center to origin", Pt(100, 100), Pt(0, 0)},
		{"right edge", Pt(200, 100), Pt(1, 0)},
		{"left edge", Pt(0, 100), Pt(-1, 0)},
		{"bottom edge flips to -1", Pt(100, 150), Pt(0, -1)},
		{"top-left corner", Pt(0, 50), Pt(-1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TransformPoint(tt.world)
			if !got.Approx(tt.want, epsilon) {
				t.Errorf("Transform()(%v) = %v, want %v", tt.world, got, tt.want)
			}
		})
	}
}

func TestTransformWithRotation(t *testing.T) {
	v := New(Pt(0, 0), V2(2, 2))
	v.SetRotation(90)
	m := v.Transform()

	// With the camera turned 90 degrees, the world point right of center
	// lands on the vertical clip axis.
	got := m.TransformPoint(Pt(1, 0))
	want := Pt(0, 1)
	if !got.Approx(want, epsilon) {
		t.Errorf("rotated Transform()(1,0) = %v, want %v", got, want)
	}
}

func TestTransformCacheInvalidation(t *testing.T) {
	v := New(Pt(0, 0), V2(2, 2))
	before := v.Transform()
	v.Move(V2(1, 0))
	after := v.Transform()
	if before.Approx(after, epsilon) {
		t.Error("Transform unchanged after Move; cache not invalidated")
	}
	want := Pt(0, 0)
	if got := after.TransformPoint(Pt(1, 0)); !got.Approx(want, epsilon) {
		t.Errorf("Transform after Move maps (1,0) to %v, want %v", got, want)
	}
}

func TestInverseTransformRoundTrip(t *testing.T) {
	v := New(Pt(-40, 260), V2(320, 240))
	v.SetRotation(33)

	points := []Point{Pt(0, 0), Pt(-40, 260), Pt(123, -456)}
	for _, p := range points {
		clip := v.Transform().TransformPoint(p)
		back := v.InverseTransform().TransformPoint(clip)
		if !back.Approx(p, 1e-6) {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}

func TestTransformDegenerateSize(t *testing.T) {
	v := Default()
	if got := v.Transform(); !got.IsIdentity() {
		t.Errorf("zero-size Transform() = %+v, want identity", got)
	}
	v = New(Pt(0, 0), V2(100, 0))
	if got := v.Transform(); !got.IsIdentity() {
		t.Errorf("zero-height Transform() = %+v, want identity", got)
	}
}

func BenchmarkTransform(b *testing.B) {
	v := New(Pt(100, 100), V2(640, 480))
	v.SetRotation(30)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Rotate(0.1)
		_ = v.Transform()
	}
}

func BenchmarkTransformCached(b *testing.B) {
	v := New(Pt(100, 100), V2(640, 480))
	v.SetRotation(30)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Transform()
	}
}
