package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/progress"
	"github.com/yaya9689/examtrainer/internal/router"
	"github.com/yaya9689/examtrainer/internal/screen"
	mistakesscreen "github.com/yaya9689/examtrainer/internal/screens/mistakes"
	quizscreen "github.com/yaya9689/examtrainer/internal/screens/quiz"
	statsscreen "github.com/yaya9689/examtrainer/internal/screens/stats"
	"github.com/yaya9689/examtrainer/internal/ui/components"
	"github.com/yaya9689/examtrainer/internal/ui/layout"
	"github.com/yaya9689/examtrainer/internal/ui/theme"
)

// HomeScreen is the landing screen: start a session, review mistakes,
// inspect statistics, or reset progress.
type HomeScreen struct {
	menu         components.Menu
	store        *progress.Store
	storageOK    bool
	confirmReset bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(store *progress.Store, source bank.Source, sampleSize int) *HomeScreen {
	h := &HomeScreen{
		store:     store,
		storageOK: store.Available(),
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(store, source, sampleSize)}
			}
		}},
		{Label: "REVIEW MISTAKES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: mistakesscreen.New(store, source)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(store)}
			}
		}},
		{Label: "RESET PROGRESS", Action: func() tea.Cmd {
			h.confirmReset = true
			return nil
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Keep progress"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.confirmReset {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "y", "Y":
				h.store.Reset()
				h.confirmReset = false
			case "n", "N", "esc":
				h.confirmReset = false
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.confirmReset {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("\n\nReset ALL progress?\n\nEvery answer and every recorded mistake will be lost.\n\n[Y]es   [N]o")
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("EXAMTRAINER"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("multiple-choice exam practice"))
	b.WriteString("\n\n")

	stats := h.store.Statistics()
	if stats.CompletedCount > 0 {
		line := fmt.Sprintf("%d of %d questions answered · %d%% correct",
			stats.CompletedCount, stats.TotalBankSize, stats.AccuracyPercent)
		b.WriteString(theme.Subtitle.Width(width).Render(line))
		b.WriteString("\n\n")
	}

	if !h.storageOK {
		warn := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Storage unavailable — progress will not be saved")
		b.WriteString(warn)
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
