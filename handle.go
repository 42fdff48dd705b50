package view

import "image"

// Ref is a borrowed, read-only reference to a view owned by a Handle
// elsewhere. It exposes the same read and compute operations as View but no
// mutation, no Clone and no Close: a renderer can inspect another
// component's active camera without being able to outlive or free it.
//
// A Ref is only valid while its owning Handle is open. Using a Ref after
// the owner called Close panics; Valid reports validity without panicking.
// Refs are cheap values and may be freely copied.
type Ref struct {
	arena *Arena
	index int
	gen   uint32
}

// Valid reports whether the referenced view is still owned and unreleased.
func (r Ref) Valid() bool {
	if r.arena == nil {
		return false
	}
	r.arena.mu.Lock()
	defer r.arena.mu.Unlock()
	s := &r.arena.slots[r.index]
	return s.live && s.gen == r.gen
}

// lock guards against the zero Ref, then locks and returns the arena.
// The zero Ref (an unassigned struct field) has no arena to resolve
// against; using it is the same programming error as a released handle and
// panics with an explicit message instead of a nil dereference.
func (r Ref) lock() *Arena {
	if r.arena == nil {
		panic("view: use of uninitialized view handle")
	}
	r.arena.mu.Lock()
	return r.arena
}

// resolveLocked returns the underlying view. The arena mutex must be held.
// Panics if the owner released the view (or the slot was since reused).
func (r Ref) resolveLocked() *View {
	s := &r.arena.slots[r.index]
	if !s.live || s.gen != r.gen {
		panic("view: use of released view handle")
	}
	return &s.view
}

// View returns an independent snapshot of the referenced view's current
// state. Mutations through the owning Handle after View returns are not
// reflected in the snapshot.
func (r Ref) View() *View {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().Clone()
}

// Center returns the world-space point at the middle of the view.
func (r Ref) Center() Point {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().Center()
}

// Size returns the extent of the visible world region.
func (r Ref) Size() Vec2 {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().Size()
}

// Rotation returns the current orientation of the view, in degrees.
func (r Ref) Rotation() float64 {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().Rotation()
}

// Viewport returns the target viewport rectangle in target fractions.
func (r Ref) Viewport() Rect {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().Viewport()
}

// Transform returns the world-to-clip matrix of the referenced view.
func (r Ref) Transform() Matrix {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().Transform()
}

// InverseTransform returns the clip-to-world matrix of the referenced view.
func (r Ref) InverseTransform() Matrix {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().InverseTransform()
}

// PixelViewport returns the viewport applied to a target of the given pixel
// size.
func (r Ref) PixelViewport(targetW, targetH int) image.Rectangle {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().PixelViewport(targetW, targetH)
}

// MapPixelToCoords converts a target pixel position to world space.
func (r Ref) MapPixelToCoords(pixel Point, targetW, targetH int) Point {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().MapPixelToCoords(pixel, targetW, targetH)
}

// MapCoordsToPixel converts a world-space point to target pixels.
func (r Ref) MapCoordsToPixel(world Point, targetW, targetH int) Point {
	a := r.lock()
	defer a.mu.Unlock()
	return r.resolveLocked().MapCoordsToPixel(world, targetW, targetH)
}

// Handle is an owning reference to an arena-allocated view. It embeds Ref,
// so every read operation of Ref is available, and adds the mutators plus
// the two operations reserved for owners: Clone and Close.
//
// Exactly one Handle owns each allocation. Close releases the allocation;
// any use of the Handle or of Refs borrowed from it afterwards panics.
type Handle struct {
	Ref
}

// Borrow returns a read-only reference to the owned view. The Ref stays
// valid until Close is called on the Handle.
func (h *Handle) Borrow() Ref {
	return h.Ref
}

// Clone allocates a new, fully independent view with the same state as the
// owned one and returns its owning handle. Mutating the clone never affects
// the original and vice versa.
func (h *Handle) Clone() *Handle {
	a := h.lock()
	v := *h.resolveLocked()
	a.mu.Unlock()
	return h.arena.adopt(&v)
}

// Close releases the owned view. After Close, the Handle and all Refs
// borrowed from it are invalid. Closing an already closed Handle is a no-op
// that logs a warning.
func (h *Handle) Close() {
	if h.arena == nil {
		panic("view: use of uninitialized view handle")
	}
	if !h.arena.release(h.index, h.gen) {
		Logger().Warn("view: double close of view handle", "index", h.index)
	}
}

// SetCenter sets the world-space point shown at the middle of the view.
func (h *Handle) SetCenter(center Point) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().SetCenter(center)
}

// SetSize sets the extent of the visible world region.
func (h *Handle) SetSize(size Vec2) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().SetSize(size)
}

// SetRotation sets the orientation of the view in degrees.
func (h *Handle) SetRotation(degrees float64) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().SetRotation(degrees)
}

// Rotate turns the view relative to its current orientation.
func (h *Handle) Rotate(degrees float64) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().Rotate(degrees)
}

// Move scrolls the view relative to its current center.
func (h *Handle) Move(offset Vec2) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().Move(offset)
}

// Zoom resizes the visible world region relative to its current size.
// See View.Zoom for the factor semantics.
func (h *Handle) Zoom(factor float64) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().Zoom(factor)
}

// SetViewport sets the target viewport rectangle in target fractions.
func (h *Handle) SetViewport(r Rect) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().SetViewport(r)
}

// Reset makes the view show exactly the given world rectangle and sets
// rotation back to 0. The viewport is unchanged.
func (h *Handle) Reset(r Rect) {
	a := h.lock()
	defer a.mu.Unlock()
	h.resolveLocked().Reset(r)
}
