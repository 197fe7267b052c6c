package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitsort/internal/round"
	"github.com/abhisek/traitsort/internal/router"
	"github.com/abhisek/traitsort/internal/screen"
	"github.com/abhisek/traitsort/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealAfter  = 800 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows the banner and the rules of the three rounds, then
// hands over to the quiz on any key.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen built by
// next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		if w.elapsed >= revealAfter {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	quiz := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quiz}
	}
}

func (w *WelcomeScreen) revealed() bool {
	return w.elapsed >= revealAfter
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Find out which traits drive your choices"),
	}

	if w.revealed() {
		sections = append(sections, "")
		for _, r := range round.All() {
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.RoundColor(r)).Render(r.Title()))
		}
		sections = append(sections, "",
			theme.Hint.Render("Options you skip in a round are gone for the rounds after it."),
			"",
			theme.Hint.Render("press any key to start"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
