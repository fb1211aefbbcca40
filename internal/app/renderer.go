package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{m.renderHeader()}
	if m.filtering {
		lines = append(lines, m.filterInput.View())
	}
	lines = append(lines, m.renderList()...)
	lines = append(lines, m.renderStatus(), m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m *Model) headerLines() int {
	if m.filtering {
		return 2
	}
	return 1
}

func (m *Model) footerLines() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

func (m *Model) renderHeader() string {
	mode := "dynamic width"
	if !m.config.DynamicMenuWidth {
		mode = fmt.Sprintf("width %d", m.config.MenuWidth)
	}
	title := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("swipemenu")
	info := fmt.Sprintf(" • menu %s • %s • %d items", m.config.Side(), mode, len(m.list.rows))
	if q := m.filterInput.Value(); q != "" && !m.filtering {
		info += fmt.Sprintf(" • filter %q", q)
	}
	info = lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render(info)
	return truncate.StringWithTail(title+info, uint(m.width), "…")
}

func (m *Model) renderStatus() string {
	style := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	text := m.status
	switch {
	case m.coord.Swiping():
		style = lipgloss.NewStyle().Foreground(m.theme.WarnFg)
		text = "Swiping, list scroll locked"
	case m.statusErr:
		style = lipgloss.NewStyle().Foreground(m.theme.ErrorFg)
	}
	return style.Render(truncate.StringWithTail(text, uint(m.width), "…"))
}

// renderList returns exactly the viewport's lines.
func (m *Model) renderList() []string {
	lines := make([]string, 0, m.list.height)
	if len(m.list.rows) == 0 && m.list.height > 0 {
		empty := "No items"
		if m.filterInput.Value() != "" {
			empty = "No items match the filter"
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.MutedFg).Italic(true).Render(empty))
	}
	for _, p := range m.list.visible() {
		rowLines := m.renderRow(p.row, p.index == m.list.cursor)
		lines = append(lines, rowLines[:p.lines]...)
	}
	for len(lines) < m.list.height {
		lines = append(lines, "")
	}
	return lines
}

// renderRow composes the content layer over the menu layer, shifted by the
// content's margins.
func (m *Model) renderRow(r *Row, selected bool) []string {
	fg := m.contentLines(r, selected)
	bg := m.menuLines(r, len(fg))
	leading, _ := m.layout.margins(r.content.id)

	out := make([]string, len(fg))
	for i := range fg {
		out[i] = compose(bg[i], fg[i], leading, m.width)
	}
	return out
}

// compose overlays fg on bg, both width cells wide. A positive leading
// margin pushes fg right, a negative one pulls it left.
func compose(bg, fg string, leading, width int) string {
	switch {
	case leading > 0:
		shift := min(leading, width)
		return ansi.Cut(bg, 0, shift) + ansi.Cut(fg, 0, width-shift)
	case leading < 0:
		shift := min(-leading, width)
		return ansi.Cut(fg, shift, width) + ansi.Cut(bg, width-shift, width)
	default:
		return fg
	}
}

func (m *Model) contentLines(r *Row, selected bool) []string {
	marker := "  "
	if selected {
		marker = "› "
	}
	title := r.item.Title
	if r.item.Pinned {
		if m.config.ShowIcons {
			title = iconWithSpace(iconPinned) + title
		} else {
			title = "* " + title
		}
	}
	icon := ""
	if m.config.ShowIcons {
		icon = iconWithSpace(deviconForName(r.item.File))
	}

	titleStyle := lipgloss.NewStyle().Width(m.width).Foreground(m.theme.TextFg).Bold(true)
	descStyle := lipgloss.NewStyle().Width(m.width).Foreground(m.theme.MutedFg)
	if selected {
		titleStyle = titleStyle.Background(m.theme.AccentDim)
		descStyle = descStyle.Background(m.theme.AccentDim)
	}

	lines := []string{titleStyle.Render(m.fit(marker + icon + title))}
	for _, d := range r.item.Description {
		lines = append(lines, descStyle.Render(m.fit("    "+d)))
	}
	if r.item.Detail {
		detail := fmt.Sprintf("    %s · %s", r.item.File, r.item.ID)
		lines = append(lines, descStyle.Foreground(m.theme.Accent).Render(m.fit(detail)))
	}
	return lines
}

func (m *Model) fit(s string) string {
	return truncate.StringWithTail(s, uint(m.width), "…")
}

func (m *Model) menuLines(r *Row, n int) []string {
	left, menuWidth := r.menuSpan(m.width)
	r.menu.arrange(menuWidth)
	gap := strings.Repeat(" ", m.width-menuWidth)
	blank := lipgloss.NewStyle().Background(m.theme.MenuBg).Render(strings.Repeat(" ", menuWidth))

	lines := make([]string, n)
	for i := range lines {
		block := ""
		if menuWidth > 0 {
			block = blank
			if i == 0 {
				block = m.renderButtons(r, menuWidth)
			}
		}
		if left == 0 {
			lines[i] = block + gap
		} else {
			lines[i] = gap + block
		}
	}
	return lines
}

func (m *Model) renderButtons(r *Row, menuWidth int) string {
	blank := lipgloss.NewStyle().Background(m.theme.MenuBg)
	var b strings.Builder
	x := 0
	for _, btn := range r.menu.buttons {
		if btn.start > x {
			b.WriteString(blank.Render(strings.Repeat(" ", btn.start-x)))
		}
		b.WriteString(m.buttonStyle(btn).Render(" " + btn.label + " "))
		x = btn.end
	}
	line := ansi.Truncate(b.String(), menuWidth, "")
	if w := lipgloss.Width(line); w < menuWidth {
		line += blank.Render(strings.Repeat(" ", menuWidth-w))
	}
	return line
}

func (m *Model) buttonStyle(b *menuButton) lipgloss.Style {
	if !b.clickable {
		return lipgloss.NewStyle().Background(m.theme.MenuBg).Foreground(m.theme.DisabledFg)
	}
	bg := m.theme.PinBg
	if b.action == actionDelete {
		bg = m.theme.DeleteBg
	}
	return lipgloss.NewStyle().Background(bg).Foreground(m.theme.MenuFg).Bold(true)
}
