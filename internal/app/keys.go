package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/chmouel/swipemenu/internal/swipe"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Close    key.Binding
	Tap      key.Binding
	Pin      key.Binding
	Delete   key.Binding
	Filter   key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// newKeyMap returns the bindings for a list whose menus sit on side. The
// open and close keys follow the direction the content slides.
func newKeyMap(side swipe.Side) keyMap {
	open := key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "open menu"))
	closeMenu := key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "close menu"))
	if side == swipe.SideLeft {
		open = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "open menu"))
		closeMenu = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "close menu"))
	}

	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Open:     open,
		Close:    closeMenu,
		Tap:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "tap")),
		Pin:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Close, k.Tap, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Close, k.Tap},
		{k.Pin, k.Delete},
		{k.Filter, k.Cancel, k.Help, k.Quit},
	}
}
