package mistakes

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/progress"
	"github.com/yaya9689/examtrainer/internal/router"
	"github.com/yaya9689/examtrainer/internal/screen"
	"github.com/yaya9689/examtrainer/internal/ui/components"
	"github.com/yaya9689/examtrainer/internal/ui/layout"
	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

// bankLoadedMsg delivers the fetched question bank.
type bankLoadedMsg struct {
	Questions []bank.Question
	Err       error
}

// MistakesScreen pages through the questions currently answered wrong and
// lets the learner re-answer them. A correct re-answer removes the
// question from the mistake set through the normal recording path.
type MistakesScreen struct {
	store    *progress.Store
	source   bank.Source
	reviewID string

	byID   map[bank.QuestionID]bank.Question
	ids    []bank.QuestionID // snapshot taken at load, stable while open
	index  int
	mc     components.MultiChoice
	spin   spinner.Model
	loaded bool
	errMsg string
}

var _ screen.Screen = (*MistakesScreen)(nil)
var _ screen.KeyHintProvider = (*MistakesScreen)(nil)

// New creates a MistakesScreen that loads the bank on Init.
func New(store *progress.Store, source bank.Source) *MistakesScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &MistakesScreen{
		store:    store,
		source:   source,
		reviewID: uuid.New().String(),
		spin:     sp,
	}
}

func (s *MistakesScreen) Init() tea.Cmd {
	source := s.source
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		qs, err := source.FetchAll(context.Background())
		return bankLoadedMsg{Questions: qs, Err: err}
	})
}

func (s *MistakesScreen) Title() string {
	return "Mistake Review"
}

func (s *MistakesScreen) KeyHints() []layout.KeyHint {
	if !s.loaded || len(s.ids) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.mc.Submitted {
		return []layout.KeyHint{
			{Key: "←→", Description: "Prev/Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D / Enter", Description: "Answer again"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MistakesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.loaded = true
			return s, nil
		}
		s.byID = make(map[bank.QuestionID]bank.Question, len(msg.Questions))
		for _, q := range msg.Questions {
			s.byID[q.ID] = q
		}
		// Keep only mistake ids that still exist in the bank; bank files
		// change between releases and stale ids must not break review.
		for _, id := range s.store.MistakeIDs() {
			if _, ok := s.byID[id]; ok {
				s.ids = append(s.ids, id)
			}
		}
		s.loaded = true
		s.resetChoice()
		return s, nil

	case spinner.TickMsg:
		if s.loaded {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *MistakesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.loaded {
		return s, nil
	}
	// Empty list and load failure are terminal views; any key leaves.
	if len(s.ids) == 0 || s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch key {
	case "left", "p", "h":
		if s.index > 0 {
			s.index--
			s.resetChoice()
		}
		return s, nil
	case "right", "n", "l":
		if s.index < len(s.ids)-1 {
			s.index++
			s.resetChoice()
		}
		return s, nil
	case "up", "k":
		s.mc.MoveUp()
		return s, nil
	case "down", "j":
		s.mc.MoveDown()
		return s, nil
	case "enter":
		if s.mc.SelectCursor() {
			s.recordReanswer()
		}
		return s, nil
	default:
		if s.mc.SelectKey(strings.ToUpper(key)) {
			s.recordReanswer()
		}
		return s, nil
	}
}

// recordReanswer overwrites the stored answer for the current question.
// The store reconciles the mistake set; the on-screen list stays fixed
// until the screen is reopened.
func (s *MistakesScreen) recordReanswer() {
	q := s.byID[s.ids[s.index]]
	s.store.RecordAnswer(q.ID, s.mc.ChosenKey, s.mc.IsCorrect(), s.reviewID)
}

// resetChoice rebuilds the multichoice component for the current mistake.
func (s *MistakesScreen) resetChoice() {
	if len(s.ids) == 0 {
		return
	}
	q := s.byID[s.ids[s.index]]
	choices := make([]components.Choice, 0, len(q.Options))
	for _, key := range q.OptionKeys() {
		choices = append(choices, components.Choice{Key: key, Text: q.Options[key]})
	}
	s.mc = components.NewMultiChoice(choices, q.CorrectAnswer)
}

func (s *MistakesScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + s.spin.View() + " Loading question banks...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not load questions:\n\n" + s.errMsg)
	}
	if len(s.ids) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("\n\nNo mistakes to review — well done!")
	}

	q := s.byID[s.ids[s.index]]

	var b strings.Builder

	pos := fmt.Sprintf("  Mistake %d / %d", s.index+1, len(s.ids))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(pos))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n\n")

	if !s.mc.Submitted {
		if prev, ok := s.store.SelectedAnswer(q.ID); ok {
			b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(
				fmt.Sprintf("Last time you answered %s", prev)))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	if s.mc.Submitted {
		b.WriteString("\n")
		if s.mc.IsCorrect() {
			b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
				theme.Correct.Render("Correct — removed from your mistakes.")))
		} else {
			b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
				theme.Incorrect.Render(
					fmt.Sprintf("Still wrong — the correct answer is %s", q.CorrectAnswer))))
		}
	}

	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
