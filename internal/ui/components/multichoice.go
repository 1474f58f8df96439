package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

// Choice is one selectable answer option.
type Choice struct {
	Key  string
	Text string
}

// MultiChoice renders keyed answer options for one question. Before the
// answer is submitted the cursor highlights the focused option; after
// submission the correct option is shown in green, a wrong pick in red,
// and everything else dimmed.
type MultiChoice struct {
	Choices    []Choice
	CorrectKey string
	Cursor     int
	Submitted  bool
	ChosenKey  string
}

// NewMultiChoice creates a component for the given options.
func NewMultiChoice(choices []Choice, correctKey string) MultiChoice {
	return MultiChoice{
		Choices:    choices,
		CorrectKey: correctKey,
	}
}

// MoveUp moves the cursor to the previous option.
func (m *MultiChoice) MoveUp() {
	if m.Submitted {
		return
	}
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// MoveDown moves the cursor to the next option.
func (m *MultiChoice) MoveDown() {
	if m.Submitted {
		return
	}
	if m.Cursor < len(m.Choices)-1 {
		m.Cursor++
	}
}

// SelectKey submits the option with the given key. Returns false when the
// key matches no option or an answer was already submitted.
func (m *MultiChoice) SelectKey(key string) bool {
	if m.Submitted {
		return false
	}
	for i, c := range m.Choices {
		if strings.EqualFold(c.Key, key) {
			m.Cursor = i
			m.Submitted = true
			m.ChosenKey = c.Key
			return true
		}
	}
	return false
}

// SelectCursor submits the option under the cursor.
func (m *MultiChoice) SelectCursor() bool {
	if m.Submitted || len(m.Choices) == 0 {
		return false
	}
	m.Submitted = true
	m.ChosenKey = m.Choices[m.Cursor].Key
	return true
}

// IsCorrect reports whether the submitted choice was the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenKey == m.CorrectKey
}

// View renders the option list.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, c := range m.Choices {
		prefix := "  "
		if !m.Submitted && i == m.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, c.Key, c.Text)

		var style lipgloss.Style
		switch {
		case m.Submitted && c.Key == m.CorrectKey:
			style = theme.Correct
		case m.Submitted && c.Key == m.ChosenKey:
			style = theme.Incorrect
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
