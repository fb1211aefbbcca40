package swipe

// MatchConstraint is the configured background height meaning "stretch to the
// foreground's height". Any other height fails Bind.
const MatchConstraint = 0

// Clickable is a direct child of the background layer. Children only accept
// clicks while the menu is expanded.
type Clickable interface {
	SetClickable(bool)
}

// Layer is one of the two children of a container.
type Layer interface {
	ID() string
	// Width is the configured width, used as the reveal width when dynamic
	// width is disabled.
	Width() int
	// Height is the configured height; backgrounds must use MatchConstraint.
	Height() int
	Children() []Clickable
}

// Layout is the constraint system hosting the container.
type Layout interface {
	// Pin anchors the background's outer edge to the container edge on the
	// given side and its top and bottom to the foreground's.
	Pin(container, background, foreground string, side Side)
	// MeasuredWidth returns the laid-out width of a layer.
	MeasuredWidth(id string) int
	// SetMargins sets a layer's leading and trailing margins and re-lays out
	// only that layer.
	SetMargins(id string, leading, trailing int)
}

// Scheduler runs a callback on a later turn of the host event loop, after
// the current call has returned.
type Scheduler interface {
	Post(func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(func())

// Post implements Scheduler.
func (f SchedulerFunc) Post(fn func()) { f(fn) }
