// Package anim animates cameras over time.
//
// It provides three helpers that drive the mutable surface of a view.View
// or view.Handle each frame:
//
//   - Animator: eased one-shot glides (pan, rotate, zoom) built on
//     tanema/gween tweens.
//   - Follower: continuous target following with smoothing, look-ahead and
//     world-bounds clamping, the usual platformer camera.
//   - Shake: a decaying screen-shake offset generator.
//
// All helpers are pure update-loop code: call Update once per tick, no
// goroutines, no timers.
package anim
