package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/constants"
)

// ChooseMsg is emitted when the user confirms the highlighted option.
type ChooseMsg struct {
	Index int
}

// CancelMsg is emitted when the user backs out of the menu.
type CancelMsg struct{}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	pagerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is a single-column option menu. The highlight wraps at both ends
// and long lists are paged. The only state carried between updates is the
// cursor position.
type Model struct {
	Title    string
	Subtitle string

	items    []string
	cursor   int
	pageSize int
	keys     KeyMap
}

func New(title string, items []string) Model {
	return Model{
		Title:    title,
		items:    items,
		pageSize: constants.MenuPageSize,
		keys:     DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return m, func() tea.Msg { return CancelMsg{} }
	case len(m.items) == 0:
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.items)
	case key.Matches(keyMsg, m.keys.Choose):
		index := m.cursor
		return m, func() tea.Msg { return ChooseMsg{Index: index} }
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("\n")
	if m.Subtitle != "" {
		b.WriteString(subtitleStyle.Render(m.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(pagerStyle.Render("  (nothing here yet)"))
		b.WriteString("\n")
		return b.String()
	}

	page := m.cursor / m.pageSize
	pages := (len(m.items) + m.pageSize - 1) / m.pageSize
	start := page * m.pageSize
	end := start + m.pageSize
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + m.items[i]))
		} else {
			b.WriteString("  " + m.items[i])
		}
		b.WriteString("\n")
	}

	if pages > 1 {
		b.WriteString("\n")
		b.WriteString(pagerStyle.Render(fmt.Sprintf("Page %d of %d", page+1, pages)))
		b.WriteString("\n")
	}

	return b.String()
}

// Cursor returns the index of the highlighted option.
func (m Model) Cursor() int {
	return m.cursor
}

// Len returns the number of options.
func (m Model) Len() int {
	return len(m.items)
}
