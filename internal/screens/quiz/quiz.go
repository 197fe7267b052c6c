package quiz

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
	"github.com/abhisek/traitsort/internal/router"
	"github.com/abhisek/traitsort/internal/scoring"
	"github.com/abhisek/traitsort/internal/screen"
	"github.com/abhisek/traitsort/internal/screens/recap"
	"github.com/abhisek/traitsort/internal/session"
	"github.com/abhisek/traitsort/internal/ui/components"
	"github.com/abhisek/traitsort/internal/ui/layout"
	"github.com/abhisek/traitsort/internal/ui/theme"
)

const optionsWidth = 34

// QuizScreen shows one group at a time next to the live score board.
// All state lives in the session; the screen only keeps its cursor.
type QuizScreen struct {
	sess   *session.Session
	groups []bank.GroupID
	group  int
	cursor int

	message string
	warning bool
	changes scoring.Changes

	keys keyMap
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving sess.
func New(sess *session.Session) *QuizScreen {
	return &QuizScreen{
		sess:   sess,
		groups: sess.Bank().GroupIDs(),
		keys:   defaultKeys(),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	if q.sess.Completed() {
		return "Complete"
	}
	return fmt.Sprintf("Round %d of %d", int(q.sess.Round()), round.Count)
}

func (q *QuizScreen) Status() string {
	done := 0
	for _, g := range q.groups {
		if q.sess.Count(g) == q.sess.Required() {
			done++
		}
	}
	if q.sess.Completed() {
		done = len(q.groups)
	}
	return fmt.Sprintf("%d/%d groups ready", done, len(q.groups))
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	bindings := []key.Binding{q.keys.Up, q.keys.PrevGroup, q.keys.Toggle}
	advance := q.keys.Advance
	advance.SetHelp("n", q.sess.Round().AdvanceLabel())
	bindings = append(bindings, advance, q.keys.Reset)
	if q.sess.Completed() {
		bindings = []key.Binding{q.keys.Recap, q.keys.Reset}
	}

	hints := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "q", Description: "Quit"})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recap.RestartMsg:
		q.restart()
		return q, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, q.keys.Up):
			q.cursor = max(q.cursor-1, 0)
		case key.Matches(msg, q.keys.Down):
			q.cursor = min(q.cursor+1, max(len(q.visible())-1, 0))
		case key.Matches(msg, q.keys.PrevGroup):
			q.selectGroup((q.group - 1 + len(q.groups)) % len(q.groups))
		case key.Matches(msg, q.keys.NextGroup):
			q.selectGroup((q.group + 1) % len(q.groups))
		case key.Matches(msg, q.keys.Toggle):
			q.toggle()
		case key.Matches(msg, q.keys.Advance):
			return q, q.advance()
		case key.Matches(msg, q.keys.Reset):
			q.restart()
		case key.Matches(msg, q.keys.Recap):
			if q.sess.Completed() {
				return q, q.showRecap()
			}
		}
	}
	return q, nil
}

func (q *QuizScreen) currentGroup() bank.GroupID {
	return q.groups[q.group]
}

func (q *QuizScreen) visible() []bank.Option {
	return q.sess.Visible(q.currentGroup())
}

func (q *QuizScreen) selectGroup(i int) {
	q.group = i
	q.cursor = 0
}

func (q *QuizScreen) toggle() {
	opts := q.visible()
	if q.cursor >= len(opts) {
		return
	}
	opt := opts[q.cursor]

	before := q.sess.DisplayScores().Scores()
	if _, err := q.sess.Interact(opt.Group, opt.Label); err != nil {
		q.warn(rejection(err))
		return
	}
	q.changes = scoring.Changed(before, q.sess.DisplayScores().Scores())
	q.clear()
}

func rejection(err error) string {
	var capErr *session.SelectionCapError
	switch {
	case errors.As(err, &capErr):
		return "Limit reached: " + capErr.Error()
	case errors.Is(err, session.ErrCompleted):
		return "The test is complete. Press r to take it again."
	default:
		return err.Error()
	}
}

func (q *QuizScreen) advance() tea.Cmd {
	tr, err := q.sess.Advance()
	if err != nil {
		var inc *session.IncompleteSelectionError
		if errors.As(err, &inc) {
			q.warn(inc.Message())
			q.jumpTo(inc.Mismatches[0].Group)
			return nil
		}
		q.warn(rejection(err))
		return nil
	}

	q.changes = scoring.Changes{}
	q.cursor = 0
	if tr.Completed {
		q.note("Test complete! Press v to see how your picks narrowed down.")
		return q.showRecap()
	}
	q.note(fmt.Sprintf("%d options eliminated. %s", tr.Hidden, tr.To.Instruction()))
	return nil
}

func (q *QuizScreen) jumpTo(g bank.GroupID) {
	for i, id := range q.groups {
		if id == g {
			q.selectGroup(i)
			return
		}
	}
}

func (q *QuizScreen) restart() {
	q.sess.Reset()
	q.selectGroup(0)
	q.changes = scoring.Changes{}
	q.note("Started over. " + q.sess.Round().Instruction())
}

func (q *QuizScreen) showRecap() tea.Cmd {
	rs := recap.New(q.sess)
	return func() tea.Msg { return router.PushScreenMsg{Screen: rs} }
}

func (q *QuizScreen) warn(msg string) {
	q.message = msg
	q.warning = true
}

func (q *QuizScreen) note(msg string) {
	q.message = msg
	q.warning = false
}

func (q *QuizScreen) clear() {
	q.message = ""
	q.warning = false
}

func (q *QuizScreen) View(width, height int) string {
	d := q.sess.DisplayScores()
	scores := components.ScorePanel{
		Primary:     d.Primary,
		Final:       d.Final,
		Percentages: d.Percentages,
		Changes:     q.changes,
		Width:       max(width-optionsWidth-4, 30),
	}.View()

	left := lipgloss.NewStyle().Width(optionsWidth).Render(q.optionsView())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", scores)
}

func (q *QuizScreen) optionsView() string {
	var b strings.Builder
	r := q.sess.Round()

	if q.sess.Completed() {
		b.WriteString(theme.Title.Render("Test complete!"))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("v: recap   r: start over"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.RoundColor(r)).Bold(true).Render(r.Title()))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(r.Instruction()))
		b.WriteString("\n\n")
		b.WriteString(q.groupStrip())
		b.WriteString("\n\n")
		b.WriteString(q.checklist().View())
	}

	if q.message != "" {
		style := theme.Notice
		if q.warning {
			style = theme.Warning
		}
		b.WriteString("\n\n")
		b.WriteString(style.Width(optionsWidth).Render(q.message))
	}
	return b.String()
}

// groupStrip renders "1 4/4  2 1/4 ..." with the active group underlined and
// ready groups in green.
func (q *QuizScreen) groupStrip() string {
	parts := make([]string, len(q.groups))
	for i, g := range q.groups {
		count := q.sess.Count(g)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if count == q.sess.Required() {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if i == q.group {
			style = style.Bold(true).Underline(true)
		}
		parts[i] = style.Render(fmt.Sprintf("%d %d/%d", g, count, q.sess.Required()))
	}
	return strings.Join(parts, " ")
}

func (q *QuizScreen) checklist() components.Checklist {
	g, _ := q.sess.Bank().Group(q.currentGroup())
	opts := q.visible()
	items := make([]components.CheckItem, len(opts))
	for i, opt := range opts {
		items[i] = components.CheckItem{
			Label:   opt.Label,
			Checked: q.sess.Checked(opt),
			Mark:    theme.RoundColor(q.sess.Round()),
		}
	}
	return components.Checklist{
		Title:    g.Title,
		Items:    items,
		Cursor:   q.cursor,
		Footnote: fmt.Sprintf("%d / %d selected", q.sess.Count(g.ID), q.sess.Required()),
	}
}
