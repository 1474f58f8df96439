package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaya9689/examtrainer/internal/progress"
	"github.com/yaya9689/examtrainer/internal/router"
	"github.com/yaya9689/examtrainer/internal/screen"
	"github.com/yaya9689/examtrainer/internal/ui/components"
	"github.com/yaya9689/examtrainer/internal/ui/layout"
	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

// StatsScreen shows the aggregate progress over the full question bank.
type StatsScreen struct {
	store *progress.Store
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(store *progress.Store) *StatsScreen {
	return &StatsScreen{store: store}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	stats := s.store.Statistics()
	mistakes := len(s.store.MistakeIDs())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Your Progress"))
	b.WriteString("\n\n")

	barWidth := minInt(width-16, 56)

	var completion float64
	if stats.TotalBankSize > 0 {
		completion = float64(stats.CompletedCount) / float64(stats.TotalBankSize)
	}
	completionBar := components.NewProgressBar("Completed", completion, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, completionBar.View()))
	b.WriteString("\n\n")

	accuracyBar := components.NewProgressBar("Accuracy ", float64(stats.AccuracyPercent)/100, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, accuracyBar.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 48)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	line := func(label string, value string, style lipgloss.Style) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			fmt.Sprintf("%-16s %s", label, style.Render(value))))
		b.WriteString("\n")
	}

	line("Bank size", fmt.Sprintf("%d", stats.TotalBankSize), theme.Body)
	line("Answered", fmt.Sprintf("%d", stats.CompletedCount), theme.Body)
	line("Correct", fmt.Sprintf("%d", stats.CorrectCount), theme.Correct)
	line("Incorrect", fmt.Sprintf("%d", stats.IncorrectCount), theme.Incorrect)
	line("Open mistakes", fmt.Sprintf("%d", mistakes), theme.Selected)

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
