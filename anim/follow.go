package anim

import (
	"math"

	"github.com/gogpu/view"
)

// Follower keeps a camera trailing a moving target: each tick the camera
// center moves a fraction of the remaining distance toward the target
// (exponential smoothing), optionally leading ahead of the movement
// direction and never showing anything outside the world bounds.
type Follower struct {
	// Smoothing is the per-tick interpolation factor in (0,1]. 1 snaps the
	// camera onto the target, small values trail it softly.
	Smoothing float64

	// LookAhead shifts the aim point ahead of the target by this many world
	// units in the direction of horizontal movement. Zero disables it.
	LookAhead float64

	// LookAheadSmoothing eases the look-ahead offset in and out. Defaults
	// to Smoothing when zero.
	LookAheadSmoothing float64

	// SpeedThreshold freezes the look-ahead offset while the target's
	// horizontal speed is at or below it, so an idle target does not pull
	// the camera back.
	SpeedThreshold float64

	// Bounds confines the visible region to this world rectangle. The zero
	// rectangle disables clamping. When the bounds are smaller than the
	// view, the camera centers on them.
	Bounds view.Rect

	lookAhead float64
}

// Update advances the follower one tick: it aims at target (led by the
// look-ahead if the target moves with the given horizontal velocity), clamps
// the aim to Bounds, and eases the camera toward it.
func (f *Follower) Update(cam Camera, target view.Point, velocityX float64) {
	smoothing := f.Smoothing
	if smoothing <= 0 {
		return
	}
	if smoothing > 1 {
		smoothing = 1
	}

	if f.LookAhead != 0 && math.Abs(velocityX) > f.SpeedThreshold {
		las := f.LookAheadSmoothing
		if las == 0 {
			las = smoothing
		}
		want := math.Copysign(f.LookAhead, velocityX)
		f.lookAhead += (want - f.lookAhead) * las
	}

	aim := view.Pt(target.X+f.lookAhead, target.Y)
	aim = f.clamp(aim, cam.Size())

	c := cam.Center()
	cam.SetCenter(view.Pt(
		c.X+(aim.X-c.X)*smoothing,
		c.Y+(aim.Y-c.Y)*smoothing,
	))
}

// clamp confines a camera center so the view stays inside Bounds.
func (f *Follower) clamp(center view.Point, size view.Vec2) view.Point {
	if f.Bounds == (view.Rect{}) {
		return center
	}
	center.X = clampAxis(center.X, f.Bounds.Min.X, f.Bounds.Max.X, size.X/2)
	center.Y = clampAxis(center.Y, f.Bounds.Min.Y, f.Bounds.Max.Y, size.Y/2)
	return center
}

func clampAxis(c, min, max, half float64) float64 {
	lo, hi := min+half, max-half
	if lo > hi {
		// View wider than the bounds; center on them.
		return (min + max) / 2
	}
	return math.Max(lo, math.Min(hi, c))
}
