package tui

import (
	"strings"

	"github.com/akyairhashvil/taskloot/internal/config"
)

const settingsLabelWidth = 28

func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	width := m.width
	if width < config.MinFormWidth {
		width = config.MinFormWidth
	}
	compact := width < config.CompactModeThreshold

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("taskloot settings"))
	b.WriteString("  ")
	b.WriteString(m.theme.Dim.Render("v" + AppVersion))
	b.WriteString("\n\n")

	end := m.scroll + config.MaxVisibleRows
	if end > len(m.controls) {
		end = len(m.controls)
	}
	if m.scroll > 0 {
		b.WriteString(m.theme.Dim.Render("  ↑ more") + "\n")
	}
	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderRow(i, width, compact))
		b.WriteString("\n")
	}
	if end < len(m.controls) {
		b.WriteString(m.theme.Dim.Render("  ↓ more") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render(m.registry.Help()))
	return m.theme.Base.Render(b.String())
}

func (m SettingsModel) renderRow(i, width int, compact bool) string {
	c := m.controls[i]
	cursor := "  "
	titleStyle := m.theme.Label
	if i == m.focus {
		cursor = "> "
		titleStyle = m.theme.Focused
	}

	var value string
	if m.editing && i == m.focus {
		value = m.inputs[i].View()
	} else {
		max := width - settingsLabelWidth - 6
		if compact {
			max = width - 6
		}
		value = m.theme.Value.Render(truncateLabel(c.value(m.settings), max))
	}

	var row string
	if compact {
		row = cursor + titleStyle.Render(c.title) + "\n    " + value
	} else {
		row = cursor + titleStyle.Width(settingsLabelWidth).Render(c.title) + " " + value
	}
	if i == m.focus && !m.editing && c.desc != "" {
		row += "\n    " + m.theme.Dim.Render(c.desc)
	}
	return row
}
