package app

import "github.com/chmouel/swipemenu/internal/swipe"

// rowList is the vertically scrolling viewport over the visible rows. Every
// vertical step asks the guard first, so the list stays still while a row is
// being swiped.
type rowList struct {
	guard  swipe.ScrollGuard
	rows   []*Row
	cursor int
	offset int // index of the first visible row
	height int // lines available
}

// placedRow is a row positioned in the viewport.
type placedRow struct {
	index int
	row   *Row
	top   int
	lines int
}

func newRowList(guard swipe.ScrollGuard) rowList {
	return rowList{guard: guard}
}

func (l *rowList) setRows(rows []*Row) {
	l.rows = rows
	l.clamp()
	l.ensureCursorVisible()
}

func (l *rowList) setHeight(height int) {
	l.height = max(height, 0)
	l.clamp()
}

func (l *rowList) clamp() {
	switch {
	case len(l.rows) == 0:
		l.cursor = 0
	case l.cursor >= len(l.rows):
		l.cursor = len(l.rows) - 1
	case l.cursor < 0:
		l.cursor = 0
	}
	l.offset = min(max(l.offset, 0), l.maxOffset())
}

// selected returns the row under the cursor.
func (l *rowList) selected() (*Row, bool) {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return nil, false
	}
	return l.rows[l.cursor], true
}

// scroll moves the viewport by n rows.
func (l *rowList) scroll(n int) bool {
	if !l.guard.CanScrollVertically() {
		return false
	}
	next := min(max(l.offset+n, 0), l.maxOffset())
	if next == l.offset {
		return false
	}
	l.offset = next
	return true
}

// moveCursor moves the cursor by n rows, scrolling to keep it in view.
func (l *rowList) moveCursor(n int) bool {
	if !l.guard.CanScrollVertically() || len(l.rows) == 0 {
		return false
	}
	next := min(max(l.cursor+n, 0), len(l.rows)-1)
	if next == l.cursor {
		return false
	}
	l.cursor = next
	l.ensureCursorVisible()
	return true
}

// selectRow puts the cursor on row without scrolling.
func (l *rowList) selectRow(row *Row) {
	for i, r := range l.rows {
		if r == row {
			l.cursor = i
			return
		}
	}
}

// maxOffset is the first row index that still fills the viewport.
func (l *rowList) maxOffset() int {
	total := 0
	for i := len(l.rows) - 1; i >= 0; i-- {
		total += l.rows[i].height()
		if total > l.height {
			return min(i+1, len(l.rows)-1)
		}
	}
	return 0
}

func (l *rowList) ensureCursorVisible() {
	if len(l.rows) == 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
		return
	}
	for l.offset < l.cursor && l.linesBetween(l.offset, l.cursor) > l.height {
		l.offset++
	}
}

func (l *rowList) linesBetween(from, to int) int {
	n := 0
	for i := from; i <= to && i < len(l.rows); i++ {
		n += l.rows[i].height()
	}
	return n
}

// visible lays out the rows that fit in the viewport. The last one may be
// cut short.
func (l *rowList) visible() []placedRow {
	var placed []placedRow
	top := 0
	for i := l.offset; i < len(l.rows) && top < l.height; i++ {
		h := l.rows[i].height()
		placed = append(placed, placedRow{
			index: i,
			row:   l.rows[i],
			top:   top,
			lines: min(h, l.height-top),
		})
		top += h
	}
	return placed
}

// rowAt returns the row covering viewport line y and the line within it.
func (l *rowList) rowAt(y int) (*Row, int, bool) {
	for _, p := range l.visible() {
		if y >= p.top && y < p.top+p.lines {
			return p.row, y - p.top, true
		}
	}
	return nil, 0, false
}
