package swipe

// SwipeThreshold is the drag distance, in layout units, a gesture must
// exceed before it counts as a swipe rather than a tap.
const SwipeThreshold = 10

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ExpandingOffset is the foreground offset while opening a collapsed menu
// after dragging d units toward the menu edge.
func ExpandingOffset(d float64, width int) int {
	if d < 0 {
		return 0
	}
	if d > float64(width) {
		return width
	}
	return clamp(int(d), 0, width)
}

// CollapsingOffset is the foreground offset while closing an expanded menu
// after dragging d units away from the menu edge.
func CollapsingOffset(d float64, width int) int {
	if d < 0 {
		return width
	}
	if d > float64(width) {
		return 0
	}
	return clamp(int(float64(width)-d), 0, width)
}

// settlesExpanded reports whether a release at offset snaps open. Exactly
// half the width collapses.
func settlesExpanded(offset, width int) bool {
	return offset > width/2
}
