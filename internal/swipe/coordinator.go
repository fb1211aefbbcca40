package swipe

import "sync/atomic"

// Coordinator holds the swiping flag shared by every container of one list.
// Any container crossing the swipe threshold sets it; any settle clears it.
// Two containers dragged at once race on the flag and the last settle wins.
type Coordinator struct {
	swiping atomic.Bool
}

// NewCoordinator returns a coordinator with the flag cleared.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Swiping reports whether a horizontal swipe is in progress.
func (c *Coordinator) Swiping() bool {
	if c == nil {
		return false
	}
	return c.swiping.Load()
}

func (c *Coordinator) set(v bool) {
	if c == nil {
		return
	}
	c.swiping.Store(v)
}

// ScrollGuard vetoes vertical scrolling of a list while one of its rows is
// being swiped.
type ScrollGuard struct {
	coord *Coordinator
}

// NewScrollGuard binds a guard to the coordinator shared with the rows.
func NewScrollGuard(coord *Coordinator) ScrollGuard {
	return ScrollGuard{coord: coord}
}

// CanScrollVertically is false whenever a swipe is active.
func (g ScrollGuard) CanScrollVertically() bool {
	return !g.coord.Swiping()
}
