package swipe

// OnSwipeListener is told the settled state after every release or cancel.
type OnSwipeListener interface {
	OnSwipe(expanded bool)
}

// SwipeFunc adapts a function to OnSwipeListener.
type SwipeFunc func(expanded bool)

// OnSwipe implements OnSwipeListener.
func (f SwipeFunc) OnSwipe(expanded bool) { f(expanded) }

// OnClickListener is told about taps: a press and release that never crossed
// the swipe threshold.
type OnClickListener interface {
	OnClick(c *Container)
}

// ClickFunc adapts a function to OnClickListener.
type ClickFunc func(c *Container)

// OnClick implements OnClickListener.
func (f ClickFunc) OnClick(c *Container) { f(c) }
