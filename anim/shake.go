package anim

import (
	"math"

	"github.com/gogpu/view"
)

// Shake generates a decaying screen-shake offset. Trigger starts a shake,
// Update advances it one tick and returns the offset to add to the camera
// center for that frame. The offset oscillates with incommensurate sin/cos
// frequencies so it never settles into a visible loop, and its amplitude
// decays linearly to zero over the duration.
//
// The zero value is an inactive shake, ready to use.
type Shake struct {
	intensity float64
	duration  int
	elapsed   int
}

// Trigger starts a shake of the given intensity (world units) lasting
// duration ticks. If a shake is already running, the stronger one wins and
// restarts; a weaker trigger is ignored.
func (s *Shake) Trigger(intensity float64, duration int) {
	if s.Active() && intensity <= s.intensity {
		return
	}
	s.intensity = intensity
	s.duration = duration
	s.elapsed = 0
}

// Active reports whether a shake is in progress.
func (s *Shake) Active() bool {
	return s.duration > 0 && s.elapsed < s.duration
}

// Update advances the shake one tick and returns this frame's camera offset.
// Returns the zero vector when no shake is active.
func (s *Shake) Update() view.Vec2 {
	if !s.Active() {
		return view.Vec2{}
	}
	s.elapsed++

	progress := float64(s.duration-s.elapsed) / float64(s.duration)
	if progress < 0 {
		progress = 0
	}
	current := s.intensity * progress

	t := float64(s.elapsed)
	return view.V2(
		math.Sin(t*1.1)*current,
		math.Cos(t*1.3)*current,
	)
}
