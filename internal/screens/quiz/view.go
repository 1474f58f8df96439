package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yaya9689/examtrainer/internal/quiz"
	"github.com/yaya9689/examtrainer/internal/ui/components"
	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + s.spin.View() + " Loading question banks...")
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Position line + progress bar.
	pos := fmt.Sprintf("  Question %d / %d", s.session.Index()+1, s.session.Len())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(pos))
	b.WriteString("\n")

	percent := float64(s.session.Index()) / float64(s.session.Len())
	if s.session.Phase() == quiz.PhaseAnswered {
		percent = float64(s.session.Index()+1) / float64(s.session.Len())
	}
	bar := components.NewProgressBar("  ", percent, true, width-8)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if !s.storageOK {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Storage unavailable — this session will not be saved"))
		b.WriteString("\n\n")
	}

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	// Feedback line once answered.
	if s.session.Phase() == quiz.PhaseAnswered {
		b.WriteString("\n")
		if s.mc.IsCorrect() {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render(theme.Correct.Render("Correct!")))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render(theme.Incorrect.Render(
					fmt.Sprintf("Wrong — the correct answer is %s", q.CorrectAnswer))))
		}
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\nLeave the quiz?\n\nYour progress is saved and the session resumes where you left off.\n\n[Y]es   [N]o")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\nCould not start the quiz:\n\n" + msg + "\n\nPress any key to go back.")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
