package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu, selecting the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{Items: items, Selected: selected}
}

// Update handles navigation and selection keys.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.prevEnabled()
	case "down", "j":
		m.Selected = m.nextEnabled()
	case "enter":
		item := m.Items[m.Selected]
		if !item.Disabled && item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

func (m Menu) prevEnabled() int {
	for i := 1; i <= len(m.Items); i++ {
		idx := (m.Selected - i + len(m.Items)) % len(m.Items)
		if !m.Items[idx].Disabled {
			return idx
		}
	}
	return m.Selected
}

func (m Menu) nextEnabled() int {
	for i := 1; i <= len(m.Items); i++ {
		idx := (m.Selected + i) % len(m.Items)
		if !m.Items[idx].Disabled {
			return idx
		}
	}
	return m.Selected
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)

		switch {
		case item.Disabled:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(style.Render(prefix + item.Label))
		b.WriteString("\n")
	}
	return b.String()
}
