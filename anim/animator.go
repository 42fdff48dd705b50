package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/view"
)

// Camera is the mutable view surface the helpers in this package drive.
// Both *view.View and *view.Handle satisfy it.
type Camera interface {
	Center() view.Point
	Size() view.Vec2
	Rotation() float64
	SetCenter(view.Point)
	SetSize(view.Vec2)
	SetRotation(float64)
}

// Animator glides a camera toward absolute targets with eased tweens.
// Starting a new glide of the same kind replaces the running one; glides of
// different kinds (pan, rotate, zoom) run concurrently.
//
// An Animator is not safe for concurrent use.
type Animator struct {
	cam Camera

	panX, panY   *gween.Tween
	rot          *gween.Tween
	sizeW, sizeH *gween.Tween
}

// NewAnimator creates an animator driving the given camera.
func NewAnimator(cam Camera) *Animator {
	return &Animator{cam: cam}
}

// PanTo glides the camera center to target over duration seconds.
func (a *Animator) PanTo(target view.Point, duration float64, easing ease.TweenFunc) {
	c := a.cam.Center()
	a.panX = gween.New(float32(c.X), float32(target.X), float32(duration), easing)
	a.panY = gween.New(float32(c.Y), float32(target.Y), float32(duration), easing)
}

// RotateTo glides the camera rotation to an absolute angle in degrees over
// duration seconds. The shortest path is not computed; the tween runs
// through the raw degree values.
func (a *Animator) RotateTo(degrees, duration float64, easing ease.TweenFunc) {
	a.rot = gween.New(float32(a.cam.Rotation()), float32(degrees), float32(duration), easing)
}

// ZoomTo glides the camera size to factor times its current size over
// duration seconds. See view.View.Zoom for the factor semantics.
func (a *Animator) ZoomTo(factor, duration float64, easing ease.TweenFunc) {
	s := a.cam.Size()
	a.sizeW = gween.New(float32(s.X), float32(s.X*factor), float32(duration), easing)
	a.sizeH = gween.New(float32(s.Y), float32(s.Y*factor), float32(duration), easing)
}

// Stop cancels all running glides, leaving the camera where it is.
func (a *Animator) Stop() {
	a.panX, a.panY = nil, nil
	a.rot = nil
	a.sizeW, a.sizeH = nil, nil
}

// Done reports whether no glide is running.
func (a *Animator) Done() bool {
	return a.panX == nil && a.panY == nil && a.rot == nil &&
		a.sizeW == nil && a.sizeH == nil
}

// Update advances all running glides by dt seconds and applies the result
// to the camera. It reports whether the animator is idle afterwards.
func (a *Animator) Update(dt float64) bool {
	fdt := float32(dt)

	if a.panX != nil {
		x, doneX := a.panX.Update(fdt)
		y, _ := a.panY.Update(fdt)
		a.cam.SetCenter(view.Pt(float64(x), float64(y)))
		if doneX {
			a.panX, a.panY = nil, nil
		}
	}
	if a.rot != nil {
		r, done := a.rot.Update(fdt)
		a.cam.SetRotation(float64(r))
		if done {
			a.rot = nil
		}
	}
	if a.sizeW != nil {
		w, doneW := a.sizeW.Update(fdt)
		h, _ := a.sizeH.Update(fdt)
		a.cam.SetSize(view.V2(float64(w), float64(h)))
		if doneW {
			a.sizeW, a.sizeH = nil, nil
		}
	}
	return a.Done()
}
