// Package app implements the swipe list screen: a Bubble Tea model hosting
// one swipeable row per item, with mouse gestures routed to the rows and
// vertical scrolling locked while a row is being swiped.
package app

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/log"
	"github.com/chmouel/swipemenu/internal/models"
	"github.com/chmouel/swipemenu/internal/swipe"
	"github.com/chmouel/swipemenu/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the list screen.
type Model struct {
	config *config.AppConfig
	theme  *theme.Theme
	keys   keyMap
	help   help.Model

	filterInput textinput.Model
	filtering   bool

	coord  *swipe.Coordinator
	layout *cellLayout
	items  []*models.Item
	rows   []*Row
	list   rowList

	// posted holds callbacks registered by containers; they run on the next
	// turn, after a measure pass.
	posted         []func()
	flushScheduled bool

	// active owns the gesture in progress, pressed the menu button under a
	// press that has not been released yet.
	active  *Row
	pressed *pressedButton

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool

	watcher *config.Watcher
	reload  func() (*config.AppConfig, error)
	debugf  func(string, ...any)
}

type pressedButton struct {
	row    *Row
	button *menuButton
}

// NewModel builds the screen for items. Rows are bound immediately; an item
// whose row cannot be bound fails the whole screen.
func NewModel(cfg *config.AppConfig, items []*models.Item) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	filterInput := textinput.New()
	filterInput.Prompt = "/ "
	filterInput.Placeholder = "filter items"

	coord := swipe.NewCoordinator()
	m := &Model{
		config:      cfg,
		theme:       theme.GetTheme(cfg.Theme),
		keys:        newKeyMap(cfg.Side()),
		help:        help.New(),
		filterInput: filterInput,
		coord:       coord,
		layout:      newCellLayout(),
		items:       items,
		list:        newRowList(swipe.NewScrollGuard(coord)),
		width:       defaultWidth,
		height:      defaultHeight,
		debugf:      log.Scoped("app"),
	}
	if err := m.buildRows(); err != nil {
		return nil, err
	}
	m.resize()
	return m, nil
}

// WatchConfig reloads the configuration through reload whenever w reports a
// change.
func (m *Model) WatchConfig(w *config.Watcher, reload func() (*config.AppConfig, error)) {
	m.watcher = w
	m.reload = reload
}

// Close releases the config watcher.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.flushPosted(), m.waitForConfigChange())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width, height := max(msg.Width, 1), max(msg.Height, 1)
		if width != m.width || height != m.height {
			m.cancelGesture()
		}
		m.width, m.height = width, height
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case postedMsg:
		m.runPosted()
	case configChangedMsg:
		cmd = m.reloadConfig()
	case configReloadedMsg:
		m.handleConfigReloaded(msg)
		cmd = m.waitForConfigChange()
	}
	m.resize()
	return m, tea.Batch(cmd, m.flushPosted())
}

// Post implements swipe.Scheduler.
func (m *Model) Post(fn func()) {
	m.posted = append(m.posted, fn)
}

func (m *Model) flushPosted() tea.Cmd {
	if len(m.posted) == 0 || m.flushScheduled {
		return nil
	}
	m.flushScheduled = true
	return func() tea.Msg { return postedMsg{} }
}

func (m *Model) runPosted() {
	m.flushScheduled = false
	m.measure()
	fns := m.posted
	m.posted = nil
	for _, fn := range fns {
		fn()
	}
}

// buildRows binds one row per item, dropping any previous rows.
func (m *Model) buildRows() error {
	for _, r := range m.rows {
		m.layout.forget(r.container.ID())
	}
	m.active, m.pressed = nil, nil
	// Callbacks of the old containers would write to the new layers.
	m.posted = nil

	rows := make([]*Row, 0, len(m.items))
	for _, item := range m.items {
		r, err := m.bindRow(item)
		if err != nil {
			return fmt.Errorf("failed to bind row %s: %w", item.ID, err)
		}
		rows = append(rows, r)
	}
	m.rows = rows
	m.measure()
	m.applyFilter()
	return nil
}

func (m *Model) bindRow(item *models.Item) (*Row, error) {
	r := newRow(item, m.config.MenuWidth)
	r.container = swipe.New(item.ID, m.coord, m.layout,
		swipe.WithSide(m.config.Side()),
		swipe.WithDynamicWidth(m.config.DynamicMenuWidth),
		swipe.WithScheduler(m),
		swipe.WithLogger(log.Scoped("swipe")),
	)
	if err := r.container.Bind(r.menu, r.content); err != nil {
		return nil, err
	}
	r.container.SetOnSwipeListener(swipe.SwipeFunc(func(expanded bool) {
		m.onSwipe(r, expanded)
	}))
	r.container.SetOnClickListener(swipe.ClickFunc(func(*swipe.Container) {
		m.onTap(r)
	}))
	r.container.Apply(item.Expanded)
	return r, nil
}

// measure lays out every menu and reports it to its container.
func (m *Model) measure() {
	for _, r := range m.rows {
		r.refreshLabels()
		width := m.config.MenuWidth
		if m.config.DynamicMenuWidth {
			width = r.menu.naturalWidth()
		}
		m.layout.setMeasured(r.menu.id, width)
		r.container.Measured()
	}
}

func (m *Model) applyFilter() {
	m.list.setRows(filterRows(m.rows, m.filterInput.Value()))
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.filterInput.Width = max(m.width-4, 1)
	m.list.setHeight(m.height - m.headerLines() - m.footerLines())
}

func (m *Model) cancelGesture() {
	m.pressed = nil
	if r := m.active; r != nil {
		m.active = nil
		r.container.Cancel()
	}
}

func (m *Model) onSwipe(r *Row, expanded bool) {
	if r.item.Expanded == expanded {
		return
	}
	r.item.Expanded = expanded
	state := "closed"
	if expanded {
		state = "open"
	}
	m.setStatus(fmt.Sprintf("Menu %s for %s", state, r.item.Title))
	m.debugf("row %s expanded=%t", r.item.ID, expanded)
}

func (m *Model) onTap(r *Row) {
	m.list.selectRow(r)
	r.item.Detail = !r.item.Detail
	m.setStatus("Tapped " + r.item.Title)
}

// press runs a menu action for a row.
func (m *Model) press(r *Row, action menuAction) {
	switch action {
	case actionPin:
		r.item.Pinned = !r.item.Pinned
		r.refreshLabels()
		r.container.Apply(false)
		r.item.Expanded = false
		if r.item.Pinned {
			m.setStatus("Pinned " + r.item.Title)
		} else {
			m.setStatus("Unpinned " + r.item.Title)
		}
	case actionDelete:
		m.deleteRow(r)
		m.setStatus("Deleted " + r.item.Title)
	}
}

func (m *Model) deleteRow(r *Row) {
	m.items = slices.DeleteFunc(m.items, func(it *models.Item) bool { return it == r.item })
	m.rows = slices.DeleteFunc(m.rows, func(row *Row) bool { return row == r })
	m.layout.forget(r.container.ID())
	if m.active == r {
		m.active = nil
	}
	m.applyFilter()
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.debugf("error: %v", err)
}

// Items returns the items still in the list.
func (m *Model) Items() []*models.Item {
	return m.items
}
