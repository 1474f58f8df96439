package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaya9689/examtrainer/internal/quiz"
	"github.com/yaya9689/examtrainer/internal/router"
	"github.com/yaya9689/examtrainer/internal/screen"
	"github.com/yaya9689/examtrainer/internal/ui/layout"
	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

// SummaryScreen displays the completion statistics for a finished session.
type SummaryScreen struct {
	summary quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n\n")

	// The session total is the authoritative count: it differs from the
	// bank size when the session ran on a sample.
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("You worked through all %d questions.", sum.SessionTotal)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 48)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	stat := func(label string, value string, style lipgloss.Style) {
		line := fmt.Sprintf("%-12s %s", label, style.Render(value))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	stat("Correct", fmt.Sprintf("%d", sum.CorrectCount), theme.Correct)
	stat("Incorrect", fmt.Sprintf("%d", sum.IncorrectCount), theme.Incorrect)
	stat("Accuracy", fmt.Sprintf("%d%%", sum.AccuracyPercent), theme.Selected)

	if sum.IncorrectCount > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(
			"Review your mistakes from the home screen."))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
