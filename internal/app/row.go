package app

import (
	"github.com/chmouel/swipemenu/internal/models"
	"github.com/chmouel/swipemenu/internal/swipe"
	"github.com/google/uuid"
)

type menuAction uint8

const (
	actionPin menuAction = iota
	actionDelete
)

// menuButton is one action of a row's menu layer. start and end are cell
// offsets within the menu, end exclusive.
type menuButton struct {
	action    menuAction
	label     string
	start     int
	end       int
	clickable bool
}

// SetClickable implements swipe.Clickable.
func (b *menuButton) SetClickable(clickable bool) {
	b.clickable = clickable
}

// menuLayer is the background of a row.
type menuLayer struct {
	id      string
	width   int
	buttons []*menuButton
}

func (l *menuLayer) ID() string  { return l.id }
func (l *menuLayer) Width() int  { return l.width }
func (l *menuLayer) Height() int { return swipe.MatchConstraint }

func (l *menuLayer) Children() []swipe.Clickable {
	children := make([]swipe.Clickable, 0, len(l.buttons))
	for _, b := range l.buttons {
		children = append(children, b)
	}
	return children
}

// naturalWidth is the width the menu lays out at: one cell of padding around
// and between the buttons.
func (l *menuLayer) naturalWidth() int {
	w := 1
	for _, b := range l.buttons {
		w += buttonWidth(b.label) + 1
	}
	return w
}

// arrange centres the buttons in a menu of the given width.
func (l *menuLayer) arrange(width int) {
	x := 1 + max((width-l.naturalWidth())/2, 0)
	for _, b := range l.buttons {
		b.start = x
		b.end = x + buttonWidth(b.label)
		x = b.end + 1
	}
}

func buttonWidth(label string) int {
	return len([]rune(label)) + 2
}

// contentLayer is the foreground of a row.
type contentLayer struct {
	id   string
	item *models.Item
}

func (l *contentLayer) ID() string                  { return l.id }
func (l *contentLayer) Width() int                  { return swipe.MatchConstraint }
func (l *contentLayer) Height() int                 { return l.item.Lines() }
func (l *contentLayer) Children() []swipe.Clickable { return nil }

// Row is one swipeable entry of the list.
type Row struct {
	item      *models.Item
	container *swipe.Container
	menu      *menuLayer
	content   *contentLayer
}

func newRow(item *models.Item, menuWidth int) *Row {
	return &Row{
		item: item,
		menu: &menuLayer{
			id:    layerID(item.ID, "menu"),
			width: menuWidth,
			buttons: []*menuButton{
				{action: actionPin, label: pinLabel(item)},
				{action: actionDelete, label: "Delete"},
			},
		},
		content: &contentLayer{
			id:   layerID(item.ID, "content"),
			item: item,
		},
	}
}

func layerID(itemID, layer string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(itemID+"/"+layer)).String()
}

func pinLabel(item *models.Item) string {
	if item.Pinned {
		return "Unpin"
	}
	return "Pin"
}

// refreshLabels updates button labels that depend on item state.
func (r *Row) refreshLabels() {
	for _, b := range r.menu.buttons {
		if b.action == actionPin {
			b.label = pinLabel(r.item)
		}
	}
}

// height is the number of lines the row renders.
func (r *Row) height() int {
	n := r.item.Lines()
	if r.item.Detail {
		n++
	}
	return n
}

// menuSpan returns the first cell and width of the menu within a row of the
// given width.
func (r *Row) menuSpan(width int) (left, menuWidth int) {
	menuWidth = min(r.container.RevealWidth(), width)
	if r.container.Side() == swipe.SideRight {
		return width - menuWidth, menuWidth
	}
	return 0, menuWidth
}

// buttonAt returns the menu button under cell x of the given row line.
func (r *Row) buttonAt(x, line, width int) *menuButton {
	if line != 0 {
		return nil
	}
	left, menuWidth := r.menuSpan(width)
	r.menu.arrange(menuWidth)
	rel := x - left
	if rel < 0 || rel >= menuWidth {
		return nil
	}
	for _, b := range r.menu.buttons {
		if rel >= b.start && rel < b.end {
			return b
		}
	}
	return nil
}
