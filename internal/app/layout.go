package app

import "github.com/chmouel/swipemenu/internal/swipe"

// pin records the constraints attached for one container.
type pin struct {
	container  string
	background string
	foreground string
	side       swipe.Side
}

type layerBox struct {
	leading  int
	trailing int
	measured int
}

// cellLayout is the constraint system of the list, in terminal cells. Rows
// read it back when composing their lines.
type cellLayout struct {
	pins  map[string]pin
	boxes map[string]*layerBox
}

func newCellLayout() *cellLayout {
	return &cellLayout{
		pins:  make(map[string]pin),
		boxes: make(map[string]*layerBox),
	}
}

func (l *cellLayout) box(id string) *layerBox {
	b, ok := l.boxes[id]
	if !ok {
		b = &layerBox{}
		l.boxes[id] = b
	}
	return b
}

// Pin implements swipe.Layout.
func (l *cellLayout) Pin(container, background, foreground string, side swipe.Side) {
	l.pins[container] = pin{container: container, background: background, foreground: foreground, side: side}
	l.box(background)
	l.box(foreground)
}

// MeasuredWidth implements swipe.Layout.
func (l *cellLayout) MeasuredWidth(id string) int {
	if b, ok := l.boxes[id]; ok {
		return b.measured
	}
	return 0
}

// SetMargins implements swipe.Layout.
func (l *cellLayout) SetMargins(id string, leading, trailing int) {
	b := l.box(id)
	b.leading = leading
	b.trailing = trailing
}

func (l *cellLayout) setMeasured(id string, width int) {
	l.box(id).measured = width
}

func (l *cellLayout) margins(id string) (leading, trailing int) {
	if b, ok := l.boxes[id]; ok {
		return b.leading, b.trailing
	}
	return 0, 0
}

// forget drops everything attached to a container.
func (l *cellLayout) forget(container string) {
	p, ok := l.pins[container]
	if !ok {
		return
	}
	delete(l.boxes, p.background)
	delete(l.boxes, p.foreground)
	delete(l.pins, container)
}
