package swipe

import "strings"

// Side identifies the horizontal edge the menu layer is pinned to.
type Side uint8

// Menu sides.
const (
	SideRight Side = iota
	SideLeft
)

const sideLeftName = "left"

// ParseSide maps a configuration value to a Side. Only "left" selects the
// left edge; every other value reads as right.
func ParseSide(value string) Side {
	if strings.ToLower(strings.TrimSpace(value)) == sideLeftName {
		return SideLeft
	}
	return SideRight
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return sideLeftName
	default:
		return "right"
	}
}

// towardMenu returns the signed distance from origin to x, positive when the
// pointer moved toward the menu edge.
func (s Side) towardMenu(origin, x float64) float64 {
	if s == SideLeft {
		return x - origin
	}
	return origin - x
}

// margins converts an offset into leading and trailing margins for the
// foreground layer. The layer keeps its width and slides away from the menu.
func (s Side) margins(offset int) (leading, trailing int) {
	if s == SideLeft {
		return offset, -offset
	}
	return -offset, offset
}
