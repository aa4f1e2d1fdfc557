package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("Sales Tax Calculator"),
		m.theme.Subtitle.Render("Enter one item per line: <quantity> <name> at <price>"),
		m.theme.RoundedBox.Render(m.renderReceipt()),
	}

	if m.lastError != nil {
		sections = append(sections, m.theme.StatusError.Render("✗ "+m.lastError.Error()))
	}

	sections = append(sections, m.input.View(), m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderReceipt() string {
	lines := strings.Split(m.rendered, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Sales Taxes:") || strings.HasPrefix(line, "Total:") {
			lines[i] = m.theme.Total.Render(line)
		} else {
			lines[i] = m.theme.Normal.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
