package swipe

type fakeChild struct{ clickable bool }

func (f *fakeChild) SetClickable(v bool) { f.clickable = v }

type fakeLayer struct {
	id       string
	width    int
	height   int
	children []*fakeChild
}

func (l *fakeLayer) ID() string  { return l.id }
func (l *fakeLayer) Width() int  { return l.width }
func (l *fakeLayer) Height() int { return l.height }

func (l *fakeLayer) Children() []Clickable {
	out := make([]Clickable, 0, len(l.children))
	for _, ch := range l.children {
		out = append(out, ch)
	}
	return out
}

type margins struct{ leading, trailing int }

type fakeLayout struct {
	pinned   []string
	side     Side
	measured map[string]int
	margins  map[string]margins
	sets     int
}

func newFakeLayout() *fakeLayout {
	return &fakeLayout{measured: map[string]int{}, margins: map[string]margins{}}
}

func (f *fakeLayout) Pin(container, background, foreground string, side Side) {
	f.pinned = []string{container, background, foreground}
	f.side = side
}

func (f *fakeLayout) MeasuredWidth(id string) int { return f.measured[id] }

func (f *fakeLayout) SetMargins(id string, leading, trailing int) {
	f.margins[id] = margins{leading, trailing}
	f.sets++
}

type queue struct{ fns []func() }

func (q *queue) Post(fn func()) { q.fns = append(q.fns, fn) }

func (q *queue) drain() {
	fns := q.fns
	q.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func newLayers(width int) (*fakeLayer, *fakeLayer) {
	bg := &fakeLayer{id: "bg", width: width, height: MatchConstraint, children: []*fakeChild{{}, {}}}
	fg := &fakeLayer{id: "fg", width: 80, height: 3}
	return bg, fg
}

// newBound returns a bound fixed-width container.
func newBound(width int, side Side) (*Container, *Coordinator, *fakeLayout, *fakeLayer) {
	coord := NewCoordinator()
	layout := newFakeLayout()
	c := New("row", coord, layout, WithSide(side), WithDynamicWidth(false))
	bg, fg := newLayers(width)
	if err := c.Bind(bg, fg); err != nil {
		panic(err)
	}
	return c, coord, layout, bg
}
