package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/theme"
)

func (m *Model) waitForConfigChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

func (m *Model) reloadConfig() tea.Cmd {
	reload := m.reload
	if reload == nil {
		return m.waitForConfigChange()
	}
	return func() tea.Msg {
		cfg, err := reload()
		return configReloadedMsg{cfg: cfg, err: err}
	}
}

func (m *Model) handleConfigReloaded(msg configReloadedMsg) {
	if msg.err != nil {
		m.setError(fmt.Errorf("failed to reload config: %w", msg.err))
		return
	}
	if msg.cfg == nil {
		return
	}
	m.applyConfig(msg.cfg)
}

// applyConfig swaps the configuration and rebuilds every row. Menu side and
// width mode are fixed per container, so rows are rebound; item state,
// including open menus, carries over.
func (m *Model) applyConfig(cfg *config.AppConfig) {
	m.cancelGesture()
	m.config = cfg
	m.theme = theme.GetTheme(cfg.Theme)
	m.keys = newKeyMap(cfg.Side())
	if err := m.buildRows(); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Configuration reloaded")
}
