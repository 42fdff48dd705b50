package view

import "sync"

// Arena owns the storage behind Handles and Refs. Slots are recycled through
// a free list; each slot carries a generation counter that is bumped on
// release, so a stale Handle or Ref can never silently observe a slot that
// was reused for another view.
//
// Arena bookkeeping is mutex-guarded and safe for concurrent use. The Views
// stored inside follow the same rule as plain Views: one goroutine per view
// unless externally synchronized.
type Arena struct {
	mu    sync.Mutex
	slots []arenaSlot
	free  []int
}

type arenaSlot struct {
	view View
	gen  uint32
	live bool
}

// ArenaOption configures an Arena during creation.
type ArenaOption func(*arenaOptions)

type arenaOptions struct {
	capacity int
}

// WithCapacity pre-allocates storage for n views so the first n allocations
// never grow the slot table. Call this during initialization if
// allocation-free operation is required on the hot path.
func WithCapacity(n int) ArenaOption {
	return func(o *arenaOptions) {
		o.capacity = n
	}
}

// NewArena creates a new view arena.
func NewArena(opts ...ArenaOption) *Arena {
	var o arenaOptions
	for _, opt := range opts {
		opt(&o)
	}
	a := &Arena{}
	if o.capacity > 0 {
		a.slots = make([]arenaSlot, 0, o.capacity)
		a.free = make([]int, 0, o.capacity)
	}
	return a
}

// New allocates an owned view with the given center and size, rotation 0 and
// the full-target viewport.
func (a *Arena) New(center Point, size Vec2) *Handle {
	return a.adopt(New(center, size))
}

// FromRect allocates an owned view showing exactly the given world rectangle.
func (a *Arena) FromRect(r Rect) *Handle {
	return a.adopt(FromRect(r))
}

// Default allocates an owned view with the default state: center (0,0),
// size (0,0), rotation 0 and the full-target viewport.
func (a *Arena) Default() *Handle {
	return a.adopt(Default())
}

// Adopt copies the given view value into the arena and returns an owning
// handle for the copy. The original view is left untouched and stays
// independent.
func (a *Arena) Adopt(v *View) *Handle {
	return a.adopt(v.Clone())
}

func (a *Arena) adopt(v *View) *Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var index int
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, arenaSlot{})
		index = len(a.slots) - 1
	}
	s := &a.slots[index]
	s.view = *v
	s.live = true
	return &Handle{Ref{arena: a, index: index, gen: s.gen}}
}

// release frees a slot. Reports false if the slot was already released
// (or reused), in which case nothing happens.
func (a *Arena) release(index int, gen uint32) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := &a.slots[index]
	if !s.live || s.gen != gen {
		return false
	}
	s.view = View{}
	s.live = false
	s.gen++
	a.free = append(a.free, index)
	return true
}

// Len returns the number of live views in the arena.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.slots) - len(a.free)
}

// defaultArena backs the package-level handle constructors. Code that wants
// isolation or pre-allocation creates its own Arena.
var defaultArena = NewArena()

// NewHandle allocates an owned view in the default arena.
func NewHandle(center Point, size Vec2) *Handle {
	return defaultArena.New(center, size)
}

// NewHandleFromRect allocates an owned view in the default arena, showing
// exactly the given world rectangle.
func NewHandleFromRect(r Rect) *Handle {
	return defaultArena.FromRect(r)
}
