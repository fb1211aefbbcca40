// Package swipe implements a swipeable list row: a background menu layer
// pinned to one edge and a foreground content layer that horizontal drags
// slide to reveal or hide the menu, snapping fully open or fully closed on
// release.
package swipe

import "math"

// State is the gesture state of a container.
type State uint8

// Gesture states. A container moves Idle → Dragging → Settling → Idle.
const (
	StateIdle State = iota
	StateDragging
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// EventType classifies a pointer event.
type EventType uint8

// Pointer event types.
const (
	Press EventType = iota
	Move
	Release
	Cancel
)

// Event is a single-pointer event in container coordinates.
type Event struct {
	Type EventType
	X    float64
}

// Container is a swipeable row. It must be bound to its two layers with Bind
// before it reacts to pointer events.
type Container struct {
	id     string
	coord  *Coordinator
	layout Layout
	sched  Scheduler
	logf   func(string, ...any)

	side    Side
	dynamic bool

	background Layer
	foreground Layer
	bound      bool

	// measured is the one-shot guard for Measured.
	measured bool
	// pending is set while a deferred re-measure is registered.
	pending bool

	width    int
	expanded bool
	offset   int

	state  State
	origin float64
	delta  float64
	swiped bool

	onClick OnClickListener
	onSwipe OnSwipeListener
}

// Option configures a Container.
type Option func(*Container)

// WithSide selects the edge the menu is pinned to. Defaults to SideRight.
func WithSide(side Side) Option {
	return func(c *Container) { c.side = side }
}

// WithDynamicWidth measures the reveal width from the laid-out background
// instead of its configured width. Defaults to true.
func WithDynamicWidth(dynamic bool) Option {
	return func(c *Container) { c.dynamic = dynamic }
}

// WithScheduler sets the deferred-callback mechanism used by Apply. Without
// one, the re-measure runs synchronously.
func WithScheduler(s Scheduler) Option {
	return func(c *Container) { c.sched = s }
}

// WithLogger sets a debug log function.
func WithLogger(logf func(string, ...any)) Option {
	return func(c *Container) { c.logf = logf }
}

// New creates an unbound container. id identifies it to the layout.
func New(id string, coord *Coordinator, layout Layout, opts ...Option) *Container {
	c := &Container{
		id:      id,
		coord:   coord,
		layout:  layout,
		side:    SideRight,
		dynamic: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bind attaches the background (index 0) and foreground (index 1) layers.
// A malformed structure returns a *StructureError and leaves the container
// unbound; nothing is pinned or laid out in that case.
func (c *Container) Bind(children ...Layer) error {
	if len(children) != 2 {
		return structureErr(ErrWrongChildCount, "got %d children, need background and foreground", len(children))
	}
	background, foreground := children[0], children[1]

	if c.id == "" {
		return structureErr(ErrMissingContainerID, "container needs an id to attach constraints")
	}
	if background == nil || background.ID() == "" {
		return structureErr(ErrMissingBackgroundID, "background layer needs an id to attach constraints")
	}
	if foreground == nil || foreground.ID() == "" {
		return structureErr(ErrMissingForegroundID, "foreground layer needs an id to attach constraints")
	}
	if h := background.Height(); h != MatchConstraint {
		return structureErr(ErrInvalidBackgroundHeight, "background height is %d, must match the foreground", h)
	}

	c.background = background
	c.foreground = foreground
	c.layout.Pin(c.id, background.ID(), foreground.ID(), c.side)

	if !c.dynamic {
		c.width = max(background.Width(), 0)
	}
	c.bound = true
	c.snap()
	c.debugf("bound container %s side=%s dynamic=%t width=%d", c.id, c.side, c.dynamic, c.width)
	return nil
}

// Measured is the host's post-measure hook. With dynamic width the reveal
// width is read from the layout once; later changes go through Apply.
func (c *Container) Measured() {
	if !c.bound || !c.dynamic || c.measured {
		return
	}
	c.measured = true
	c.remeasure()
	if c.state == StateIdle {
		c.snap()
	}
}

// Apply sets the settled state without a gesture. The offset is applied at
// once; with dynamic width a re-measure and re-apply is also registered to
// run on a later turn, since the menu width may not be known yet.
func (c *Container) Apply(expanded bool) {
	c.expanded = expanded
	if c.bound {
		c.snap()
	}
	if c.dynamic {
		c.post(c.reapply)
	}
}

func (c *Container) post(fn func()) {
	if c.pending {
		return
	}
	if c.sched == nil {
		fn()
		return
	}
	c.pending = true
	c.sched.Post(fn)
}

// reapply is the deferred half of Apply.
func (c *Container) reapply() {
	c.pending = false
	if !c.bound {
		return
	}
	c.remeasure()
	if c.state == StateIdle {
		c.snap()
	}
}

func (c *Container) remeasure() {
	c.width = max(c.layout.MeasuredWidth(c.background.ID()), 0)
	c.offset = clamp(c.offset, 0, c.width)
}

// Handle dispatches a pointer event.
func (c *Container) Handle(ev Event) {
	switch ev.Type {
	case Press:
		c.Press(ev.X)
	case Move:
		c.Move(ev.X)
	case Release:
		c.Release()
	case Cancel:
		c.Cancel()
	}
}

// Press starts a gesture at x.
func (c *Container) Press(x float64) {
	if !c.bound {
		return
	}
	c.state = StateDragging
	c.origin = x
	c.delta = 0
	c.swiped = false
}

// Move tracks the pointer at x. The foreground only moves once the drag
// exceeds SwipeThreshold, so jitter during a tap leaves the row still.
func (c *Container) Move(x float64) {
	if c.state != StateDragging {
		return
	}
	d := c.side.towardMenu(c.origin, x)
	if c.expanded {
		d = -d
		c.offset = CollapsingOffset(d, c.width)
	} else {
		c.offset = ExpandingOffset(d, c.width)
	}
	c.delta = d

	swiping := math.Abs(d) > SwipeThreshold
	c.coord.set(swiping)
	if swiping {
		c.swiped = true
		c.applyMargins()
	}
}

// Release ends the gesture. A release that never crossed the threshold is
// also reported to the click listener.
func (c *Container) Release() {
	c.settle(false)
}

// Cancel ends the gesture like Release but never counts as a tap.
func (c *Container) Cancel() {
	c.settle(true)
}

func (c *Container) settle(cancelled bool) {
	if c.state != StateDragging {
		return
	}
	c.state = StateSettling
	tap := !cancelled && !c.swiped

	c.expanded = settlesExpanded(c.offset, c.width)
	c.snap()
	c.coord.set(false)
	c.swiped = false
	c.state = StateIdle
	c.debugf("container %s settled expanded=%t tap=%t cancelled=%t", c.id, c.expanded, tap, cancelled)

	if c.onSwipe != nil {
		c.onSwipe.OnSwipe(c.expanded)
	}
	if tap && c.onClick != nil {
		c.onClick.OnClick(c)
	}
}

// snap moves the offset to the boundary matching the expanded state.
func (c *Container) snap() {
	if c.expanded {
		c.offset = c.width
	} else {
		c.offset = 0
	}
	c.delta = 0
	c.applyMargins()
	c.applyClickable()
}

func (c *Container) applyMargins() {
	leading, trailing := c.side.margins(c.offset)
	c.layout.SetMargins(c.foreground.ID(), leading, trailing)
}

func (c *Container) applyClickable() {
	for _, child := range c.background.Children() {
		if child != nil {
			child.SetClickable(c.expanded)
		}
	}
}

// SetOnSwipeListener replaces the swipe listener; nil removes it.
func (c *Container) SetOnSwipeListener(l OnSwipeListener) {
	c.onSwipe = l
}

// SetOnClickListener replaces the click listener; nil removes it.
func (c *Container) SetOnClickListener(l OnClickListener) {
	c.onClick = l
}

// ID returns the container id.
func (c *Container) ID() string { return c.id }

// Side returns the menu side.
func (c *Container) Side() Side { return c.side }

// DynamicWidth reports whether the reveal width is measured.
func (c *Container) DynamicWidth() bool { return c.dynamic }

// Bound reports whether Bind succeeded.
func (c *Container) Bound() bool { return c.bound }

// Expanded reports the settled state.
func (c *Container) Expanded() bool { return c.expanded }

// Offset returns the live foreground offset in [0, RevealWidth].
func (c *Container) Offset() int { return c.offset }

// RevealWidth returns the known width of the menu layer.
func (c *Container) RevealWidth() int { return c.width }

// State returns the gesture state.
func (c *Container) State() State { return c.state }

// DragDelta returns the signed drag distance of the current gesture.
func (c *Container) DragDelta() float64 { return c.delta }

func (c *Container) debugf(format string, args ...any) {
	if c.logf == nil {
		return
	}
	c.logf(format, args...)
}
