package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const pageRows = 5

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancelGesture()
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.active != nil || m.pressed != nil {
			m.cancelGesture()
			return nil
		}
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.applyFilter()
		}
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m.filterInput.Focus()
	case key.Matches(msg, m.keys.Up):
		m.list.moveCursor(-1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.list.moveCursor(1)
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.list.moveCursor(-pageRows)
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.list.moveCursor(pageRows)
		return nil
	}

	// The remaining keys act on the cursor row and would fight a drag.
	if m.active != nil {
		return nil
	}
	r, ok := m.list.selected()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Open):
		r.container.Apply(true)
		m.onSwipe(r, true)
	case key.Matches(msg, m.keys.Close):
		r.container.Apply(false)
		m.onSwipe(r, false)
	case key.Matches(msg, m.keys.Tap):
		m.onTap(r)
	case key.Matches(msg, m.keys.Pin):
		m.pressKey(r, actionPin)
	case key.Matches(msg, m.keys.Delete):
		m.pressKey(r, actionDelete)
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applyFilter()
		return nil
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return nil
	case tea.KeyCtrlC:
		m.quitting = true
		return tea.Quit
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return cmd
}

// pressKey triggers a menu button from the keyboard. Like a click, it only
// works while the menu is open.
func (m *Model) pressKey(r *Row, action menuAction) {
	for _, b := range r.menu.buttons {
		if b.action != action {
			continue
		}
		if !b.clickable {
			m.setStatus("Open the menu first")
			return
		}
		m.press(r, action)
		return
	}
}

// handleMouse routes mouse events: the left button drives row gestures or
// menu buttons, the wheel scrolls the list.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	x := msg.X
	y := msg.Y - m.headerLines()

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.list.scroll(-1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.list.scroll(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// A new press means the previous release was lost.
		m.cancelGesture()
		r, line, ok := m.list.rowAt(y)
		if !ok {
			return
		}
		if b := r.buttonAt(x, line, m.width); b != nil && b.clickable {
			m.pressed = &pressedButton{row: r, button: b}
			return
		}
		m.active = r
		r.container.Press(float64(x))
	case msg.Action == tea.MouseActionMotion:
		if m.active != nil {
			m.active.container.Move(float64(x))
		}
	case msg.Action == tea.MouseActionRelease:
		if p := m.pressed; p != nil {
			m.pressed = nil
			r, line, ok := m.list.rowAt(y)
			if ok && r == p.row && r.buttonAt(x, line, m.width) == p.button && p.button.clickable {
				m.press(r, p.button.action)
			}
			return
		}
		if r := m.active; r != nil {
			m.active = nil
			r.container.Release()
		}
	}
}
