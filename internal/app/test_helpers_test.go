package app

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/models"
	"github.com/chmouel/swipemenu/internal/sample"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 80
	testHeight = 24
	// Natural menu width: " Pin " and " Delete " with one cell around each.
	testMenuWidth = 16
)

func testItems(n int) []*models.Item {
	items := make([]*models.Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, &models.Item{
			ID:    sample.ItemID(i),
			Title: fmt.Sprintf("Item [%d] should have [0] lines of description", i),
			File:  "main.go",
		})
	}
	return items
}

func newTestModel(t *testing.T, cfg *config.AppConfig, n int) *Model {
	t.Helper()
	m, err := NewModel(cfg, testItems(n))
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m.Update(postedMsg{})
	return m
}

// screenY maps a row index of a one-line-per-row list to a terminal line.
func screenY(m *Model, row int) int {
	return m.headerLines() + row
}

func press(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func motion(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func wheel(m *Model, button tea.MouseButton) {
	m.Update(tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionPress, Button: button})
}

func sendKey(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}
