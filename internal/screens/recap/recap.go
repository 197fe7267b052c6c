package recap

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
	"github.com/abhisek/traitsort/internal/router"
	"github.com/abhisek/traitsort/internal/screen"
	"github.com/abhisek/traitsort/internal/session"
	"github.com/abhisek/traitsort/internal/ui/components"
	"github.com/abhisek/traitsort/internal/ui/layout"
	"github.com/abhisek/traitsort/internal/ui/theme"
)

// RestartMsg is sent to the screen below the recap after the user asks to
// take the test again.
type RestartMsg struct{}

var (
	backKey    = key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("Enter", "Back"))
	restartKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Restart"))
	scrollKey  = key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Scroll"))
)

// RecapScreen shows every group's three-round timeline and the final
// scores of a completed session.
type RecapScreen struct {
	sess *session.Session
	vp   viewport.Model
}

var _ screen.Screen = (*RecapScreen)(nil)
var _ screen.KeyHintProvider = (*RecapScreen)(nil)

// New creates a RecapScreen for sess.
func New(sess *session.Session) *RecapScreen {
	return &RecapScreen{
		sess: sess,
		vp:   viewport.New(),
	}
}

func (s *RecapScreen) Init() tea.Cmd {
	return nil
}

func (s *RecapScreen) Title() string {
	return "Your Profile"
}

func (s *RecapScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 3)
	for _, b := range []key.Binding{scrollKey, backKey, restartKey} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

func (s *RecapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, backKey):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(kmsg, restartKey):
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return RestartMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *RecapScreen) View(width, height int) string {
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.vp.SetContent(s.content(width))
	return s.vp.View()
}

func (s *RecapScreen) content(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Test complete!"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Here is how your picks narrowed down, group by group."))
	b.WriteString("\n\n")

	for _, g := range s.sess.Bank().Groups() {
		b.WriteString(Timeline(g, s.sess.History(g.ID)))
		b.WriteString("\n")
	}

	d := s.sess.DisplayScores()
	b.WriteString(components.ScorePanel{
		Primary:     d.Primary,
		Final:       d.Final,
		Percentages: d.Percentages,
		Width:       min(width-2, 70),
	}.View())

	return b.String()
}

// Timeline renders one group's picks per round, oldest round first.
func Timeline(g bank.Group, h session.GroupHistory) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(g.Title))
	b.WriteString("\n")

	for _, r := range round.All() {
		picks := h.ForRound(r)
		text := theme.Hint.Render("no selection")
		if len(picks) > 0 {
			labels := make([]string, len(picks))
			for i, opt := range picks {
				labels[i] = opt.Label
			}
			text = lipgloss.NewStyle().Foreground(theme.RoundColor(r)).Render(strings.Join(labels, "  "))
		}
		fmt.Fprintf(&b, "  %s %s  %s\n",
			theme.RoundBadge(r),
			theme.Subtitle.Render(fmt.Sprintf("%d pt", r.ScoreWeight())),
			text)
	}
	return b.String()
}
