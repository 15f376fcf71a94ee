package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit, StateRenameHabit, StateAddRecord, StateEditRecord:
		content = m.form.View()
	case StateConfirmDeleteHabit:
		content = m.viewConfirm(fmt.Sprintf("Delete habit %q and all of its records?", m.habit.Name))
	case StateConfirmDeleteRecord:
		content = m.viewConfirm(fmt.Sprintf("Delete the record for %s?", m.record.Date))
	default:
		content = m.menu.View()
	}

	sections := []string{content}
	if m.status != "" {
		if m.isError {
			sections = append(sections, errorStyle.Render(m.status))
		} else {
			sections = append(sections, statusStyle.Render(m.status))
		}
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewConfirm(question string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render(question),
		"",
		"[y] Yes",
		"[n] No",
	)
}
