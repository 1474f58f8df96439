package quiz

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/progress"
	"github.com/yaya9689/examtrainer/internal/quiz"
	"github.com/yaya9689/examtrainer/internal/router"
	"github.com/yaya9689/examtrainer/internal/screen"
	summaryscreen "github.com/yaya9689/examtrainer/internal/screens/summary"
	"github.com/yaya9689/examtrainer/internal/ui/components"
	"github.com/yaya9689/examtrainer/internal/ui/layout"
	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

// QuizScreen drives an active session: loading spinner, one question at a
// time, answer reveal, and the handoff to the summary screen.
type QuizScreen struct {
	store      *progress.Store
	source     bank.Source
	sampleSize int

	session   *quiz.Session
	mc        components.MultiChoice
	spin      spinner.Model
	storageOK bool

	showQuitConfirm bool
	errMsg          string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that will load questions from source on Init.
func New(store *progress.Store, source bank.Source, sampleSize int) *QuizScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &QuizScreen{
		store:      store,
		source:     source,
		sampleSize: sampleSize,
		spin:       sp,
		storageOK:  store.Available(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Tick, s.startSession())
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave (progress saved)"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.session != nil && s.session.Phase() == quiz.PhaseAnswered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D / ↑↓+Enter", Description: "Answer"},
		{Key: "Esc", Description: "Leave"},
	}
}

// startSession fetches the bank and starts the session off the UI thread.
func (s *QuizScreen) startSession() tea.Cmd {
	store, source, sampleSize := s.store, s.source, s.sampleSize
	return func() tea.Msg {
		session := quiz.New(store)
		if err := session.Start(context.Background(), source, sampleSize); err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{Session: session}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleSessionReady(msg)

	case spinner.TickMsg:
		if s.session != nil {
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

func (s *QuizScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.session = msg.Session

	if s.session.Phase() == quiz.PhaseComplete {
		return s, s.showSummary()
	}
	s.resetChoice()
	return s, nil
}

// resetChoice rebuilds the multichoice component for the current question.
func (s *QuizScreen) resetChoice() {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return
	}
	choices := make([]components.Choice, 0, len(q.Options))
	for _, key := range q.OptionKeys() {
		choices = append(choices, components.Choice{Key: key, Text: q.Options[key]})
	}
	s.mc = components.NewMultiChoice(choices, q.CorrectAnswer)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.session == nil {
		return s, nil
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	switch s.session.Phase() {
	case quiz.PhasePresenting:
		switch key {
		case "esc":
			s.showQuitConfirm = true
			return s, nil
		case "up", "k":
			s.mc.MoveUp()
			return s, nil
		case "down", "j":
			s.mc.MoveDown()
			return s, nil
		case "enter":
			if s.mc.SelectCursor() {
				s.session.SelectAnswer(s.mc.ChosenKey)
			}
			return s, nil
		default:
			// Direct option keys (a, b, c, d...).
			if s.mc.SelectKey(strings.ToUpper(key)) {
				s.session.SelectAnswer(s.mc.ChosenKey)
			}
			return s, nil
		}

	case quiz.PhaseAnswered:
		switch key {
		case "esc":
			s.showQuitConfirm = true
			return s, nil
		case "enter", "space", "n", "right":
			s.session.Advance()
			if s.session.Phase() == quiz.PhaseComplete {
				return s, s.showSummary()
			}
			s.resetChoice()
			return s, nil
		}
	}

	return s, nil
}

// showSummary replaces this screen with the completion summary.
func (s *QuizScreen) showSummary() tea.Cmd {
	summary, err := s.session.Summary()
	if err != nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summaryscreen.New(summary)}
	}
}
