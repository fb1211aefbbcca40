package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelBindsAndMeasuresRows(t *testing.T) {
	m, err := NewModel(config.DefaultConfig(), testItems(3))
	require.NoError(t, err)

	require.Len(t, m.rows, 3)
	for _, r := range m.rows {
		assert.True(t, r.container.Bound())
		assert.Equal(t, swipe.SideRight, r.container.Side())
		assert.Equal(t, testMenuWidth, r.container.RevealWidth())
	}
	assert.Len(t, m.posted, 3, "dynamic rows re-measure on a later turn")
	assert.NotNil(t, m.Init())
	assert.True(t, m.flushScheduled)

	m.Update(postedMsg{})
	assert.Empty(t, m.posted)
	assert.False(t, m.flushScheduled)
}

func TestNewModelNilConfigUsesDefaults(t *testing.T) {
	m, err := NewModel(nil, testItems(1))
	require.NoError(t, err)
	assert.Equal(t, "right", m.config.MenuSide)
}

func TestStaticWidthUsesConfiguredMenuWidth(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DynamicMenuWidth = false
	cfg.MenuWidth = 30
	m := newTestModel(t, cfg, 2)

	assert.Equal(t, 30, m.rows[0].container.RevealWidth())
	assert.Empty(t, m.posted)
}

func TestSwipeOpensMenu(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 5)
	r := m.rows[0]
	y := screenY(m, 0)

	press(m, 70, y)
	motion(m, 50, y)
	assert.True(t, m.coord.Swiping())
	assert.Equal(t, testMenuWidth, r.container.Offset())
	leading, trailing := m.layout.margins(r.content.id)
	assert.Equal(t, -testMenuWidth, leading)
	assert.Equal(t, testMenuWidth, trailing)

	release(m, 50, y)
	assert.False(t, m.coord.Swiping())
	assert.True(t, r.item.Expanded)
	assert.False(t, r.item.Detail, "a swipe is not a tap")
	for _, b := range r.menu.buttons {
		assert.True(t, b.clickable)
	}
	assert.Contains(t, m.status, "Menu open")
}

func TestSwipeLocksVerticalScroll(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 30)
	y := screenY(m, 0)

	press(m, 70, y)
	motion(m, 55, y)
	require.True(t, m.coord.Swiping())

	wheel(m, tea.MouseButtonWheelDown)
	assert.Equal(t, 0, m.list.offset)
	sendKey(m, "j")
	assert.Equal(t, 0, m.list.cursor)
	assert.Contains(t, m.View(), "scroll locked")

	release(m, 55, y)
	wheel(m, tea.MouseButtonWheelDown)
	assert.Equal(t, 1, m.list.offset)
	sendKey(m, "j")
	assert.Equal(t, 1, m.list.cursor)
}

func TestTapTogglesDetail(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 5)
	r := m.rows[1]

	press(m, 10, screenY(m, 1))
	motion(m, 15, screenY(m, 1))
	release(m, 15, screenY(m, 1))

	assert.True(t, r.item.Detail)
	assert.False(t, r.item.Expanded)
	assert.Equal(t, 1, m.list.cursor)
	assert.Equal(t, "Tapped "+r.item.Title, m.status)
	assert.Equal(t, 2, r.height())
}

func TestMenuButtonsOnlyWorkWhenOpen(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 3)
	r := m.rows[0]
	y := screenY(m, 0)
	// The menu is right-aligned; Delete spans cells 7..14 inside it.
	deleteX := testWidth - testMenuWidth + 8

	press(m, deleteX, y)
	release(m, deleteX, y)
	assert.Len(t, m.rows, 3)
	assert.True(t, r.item.Detail, "a closed menu passes the press to the row")

	r.container.Apply(true)
	m.Update(postedMsg{})
	press(m, deleteX, y)
	assert.Nil(t, m.active)
	release(m, deleteX, y)

	assert.Len(t, m.rows, 2)
	assert.Len(t, m.Items(), 2)
	assert.NotContains(t, m.rows, r)
	assert.Equal(t, "Deleted "+r.item.Title, m.status)
}

func TestButtonReleaseElsewhereDoesNothing(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 3)
	m.rows[0].container.Apply(true)
	m.Update(postedMsg{})
	y := screenY(m, 0)
	deleteX := testWidth - testMenuWidth + 8

	press(m, deleteX, y)
	release(m, 5, y)
	assert.Len(t, m.rows, 3)
}

func TestPressOnAnotherRowCancelsGesture(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 5)
	first := m.rows[0]

	press(m, 70, screenY(m, 0))
	motion(m, 40, screenY(m, 0))
	require.True(t, m.coord.Swiping())

	press(m, 10, screenY(m, 2))
	assert.False(t, m.coord.Swiping())
	assert.True(t, first.item.Expanded)
	assert.False(t, first.item.Detail)
	assert.Same(t, m.rows[2], m.active)
}

func TestWindowResizeCancelsGesture(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 5)
	press(m, 70, screenY(m, 0))
	motion(m, 40, screenY(m, 0))

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, m.active)
	assert.False(t, m.coord.Swiping())
	assert.Equal(t, swipe.StateIdle, m.rows[0].container.State())
}

func TestEscCancelsGesture(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 5)
	press(m, 70, screenY(m, 0))
	motion(m, 65, screenY(m, 0))

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.active)
	assert.False(t, m.rows[0].item.Detail, "cancel never taps")
}

func TestKeyboardOpenPinAndClose(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 3)
	r := m.rows[0]

	sendKey(m, "p")
	assert.Equal(t, "Open the menu first", m.status)
	assert.False(t, r.item.Pinned)

	sendKey(m, "h")
	assert.True(t, r.item.Expanded)
	assert.Equal(t, testMenuWidth, r.container.Offset())

	sendKey(m, "p")
	assert.True(t, r.item.Pinned)
	assert.False(t, r.container.Expanded())
	m.Update(postedMsg{})
	assert.Equal(t, testMenuWidth+2, r.container.RevealWidth(), "Unpin is wider than Pin")

	sendKey(m, "l")
	assert.False(t, r.item.Expanded)
}

func TestKeyboardOpenFollowsMenuSide(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MenuSide = "left"
	m := newTestModel(t, cfg, 2)

	sendKey(m, "l")
	assert.True(t, m.rows[0].item.Expanded)
	leading, _ := m.layout.margins(m.rows[0].content.id)
	assert.Equal(t, testMenuWidth, leading)
}

func TestEnterTapsCursorRow(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 3)
	sendKey(m, "j")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.rows[1].item.Detail)
}

func TestFilterNarrowsRows(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 12)

	sendKey(m, "/")
	require.True(t, m.filtering)
	assert.Equal(t, 2, m.headerLines())
	sendKey(m, "[11]")
	assert.Len(t, m.list.rows, 1)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filtering)
	assert.Len(t, m.list.rows, 1)
	assert.Contains(t, m.View(), `filter "[11]"`)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.list.rows, 12)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 3)
	short := m.footerLines()
	sendKey(m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Greater(t, m.footerLines(), short)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 3)
	cmd := sendKey(m, "q")
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestConfigReloadKeepsItemState(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 3)
	sendKey(m, "h")
	require.True(t, m.rows[0].item.Expanded)

	cfg := config.DefaultConfig()
	cfg.MenuSide = "left"
	m.Update(configReloadedMsg{cfg: cfg})
	m.Update(postedMsg{})

	assert.Equal(t, "Configuration reloaded", m.status)
	r := m.rows[0]
	assert.Equal(t, swipe.SideLeft, r.container.Side())
	assert.True(t, r.container.Expanded())
	assert.Equal(t, testMenuWidth, r.container.Offset())
	leading, _ := m.layout.margins(r.content.id)
	assert.Equal(t, testMenuWidth, leading)
}

func TestConfigReloadError(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 1)
	m.Update(configReloadedMsg{err: assert.AnError})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "failed to reload config")
}

func TestViewRendersRows(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ShowIcons = false
	m := newTestModel(t, cfg, 3)
	view := m.View()

	assert.Contains(t, view, "swipemenu")
	assert.Contains(t, view, "Item [1] should have [0] lines of description")
	assert.NotContains(t, view, "Delete", "closed menus stay hidden")

	sendKey(m, "h")
	assert.Contains(t, m.View(), "Delete")
}
