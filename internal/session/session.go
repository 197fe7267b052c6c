// Package session runs one attempt at the quiz: the three-round elimination
// state machine over a question bank, with live scoring and history.
//
// A Session is driven by a single actor and is not safe for concurrent use.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
	"github.com/abhisek/traitsort/internal/scoring"
	"github.com/abhisek/traitsort/internal/selection"
	"github.com/abhisek/traitsort/internal/traits"
)

// Session is the quiz core that presentation adapters talk to.
type Session struct {
	id     string
	bank   *bank.Bank
	logger *zap.Logger

	store   *selection.Store
	current round.Round
	done    bool

	// eligible[r] is the set of options that may be toggled in round r. It
	// only ever shrinks between rounds; eliminated options never come back.
	eligible [round.Count + 1]map[bank.Key]bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for session events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New creates a session in round 1 with every option of b eligible.
func New(b *bank.Bank, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		bank:   b,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	s.reset()
	return s
}

// Interaction is the outcome of a toggle.
type Interaction struct {
	Accepted bool
	Checked  bool
}

// Transition describes a successful advance.
type Transition struct {
	From      round.Round
	To        round.Round // zero when Completed
	Completed bool
	Hidden    int // options eliminated by this advance
}

// Display is everything the adapter shows for the current scores.
type Display struct {
	Primary     map[traits.Primary]int
	Final       map[traits.Axis]int
	Percentages map[traits.Axis]int
}

// Scores returns the primary and final totals as a scoring.Scores.
func (d Display) Scores() scoring.Scores {
	return scoring.Scores{Primary: d.Primary, Final: d.Final}
}

// GroupHistory is one group's picks in each round, in the order they were
// made.
type GroupHistory struct {
	Round1 []bank.Option
	Round2 []bank.Option
	Round3 []bank.Option
}

// ForRound returns the picks of round r.
func (h GroupHistory) ForRound(r round.Round) []bank.Option {
	switch r {
	case round.First:
		return h.Round1
	case round.Second:
		return h.Round2
	case round.Third:
		return h.Round3
	default:
		return nil
	}
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Bank returns the question bank the session runs over.
func (s *Session) Bank() *bank.Bank { return s.bank }

// Round returns the active round. It stays at round 3 once completed.
func (s *Session) Round() round.Round { return s.current }

// Completed reports whether round 3 has been finished.
func (s *Session) Completed() bool { return s.done }

// Required returns the per-group quota of the active round.
func (s *Session) Required() int { return s.current.RequiredSelections() }

// Count returns how many options of group are checked in the active round.
func (s *Session) Count(group bank.GroupID) int {
	return s.store.Count(s.current, group)
}

// Checked reports whether opt is checked in the active round.
func (s *Session) Checked(opt bank.Option) bool {
	return s.store.Checked(s.current, opt)
}

// CheckedIn reports whether opt is checked in round r.
func (s *Session) CheckedIn(r round.Round, opt bank.Option) bool {
	return s.store.Checked(r, opt)
}

// Visible returns the options of group still in play in the active round,
// in bank order.
func (s *Session) Visible(group bank.GroupID) []bank.Option {
	g, ok := s.bank.Group(group)
	if !ok {
		return nil
	}
	var out []bank.Option
	for _, opt := range g.Options {
		if s.eligible[s.current][opt.Key()] {
			out = append(out, opt)
		}
	}
	return out
}

// Interact toggles the option (group, label) in the active round.
//
// Turning an option on is rejected with a *SelectionCapError when its group
// already holds the round's quota. Rejections never change state.
func (s *Session) Interact(group bank.GroupID, label string) (Interaction, error) {
	if s.done {
		return Interaction{}, ErrCompleted
	}
	opt, ok := s.bank.Lookup(group, label)
	if !ok {
		return Interaction{}, fmt.Errorf("%w: group %d %q", ErrUnknownOption, group, label)
	}
	if !s.eligible[s.current][opt.Key()] {
		return Interaction{}, fmt.Errorf("%w: group %d %q", ErrOptionHidden, group, label)
	}

	quota := s.current.RequiredSelections()
	if !s.store.Checked(s.current, opt) && s.store.Count(s.current, group) >= quota {
		s.logger.Info("selection rejected",
			zap.Int("round", int(s.current)),
			zap.Int("group", int(group)),
			zap.String("option", label),
			zap.Int("cap", quota))
		return Interaction{}, &SelectionCapError{Round: s.current, Group: group, Cap: quota}
	}

	checked := s.store.Toggle(s.current, opt)
	s.logger.Debug("option toggled",
		zap.Int("round", int(s.current)),
		zap.Int("group", int(group)),
		zap.String("option", label),
		zap.String("trait", string(opt.Trait)),
		zap.Bool("checked", checked))
	return Interaction{Accepted: true, Checked: checked}, nil
}

// Mismatches lists the groups whose checked count differs from the active
// round's quota, in group order.
func (s *Session) Mismatches() []Mismatch {
	required := s.current.RequiredSelections()
	var out []Mismatch
	for _, id := range s.bank.GroupIDs() {
		if n := s.store.Count(s.current, id); n != required {
			out = append(out, Mismatch{Group: id, Selected: n, Required: required})
		}
	}
	return out
}

// Advance leaves the active round once every group holds exactly the
// round's quota. From rounds 1 and 2 the unchecked options are eliminated
// and the next round starts with nothing checked; earlier rounds keep their
// checked options and keep scoring. Advancing from round 3 completes the
// test. On failure state is unchanged.
func (s *Session) Advance() (Transition, error) {
	if s.done {
		return Transition{}, ErrCompleted
	}
	if mm := s.Mismatches(); len(mm) > 0 {
		s.logger.Info("advance rejected",
			zap.Int("round", int(s.current)),
			zap.Int("groups", len(mm)))
		return Transition{}, &IncompleteSelectionError{Round: s.current, Mismatches: mm}
	}

	from := s.current
	next, ok := from.Next()
	if !ok {
		s.done = true
		final := s.DisplayScores()
		s.logger.Info("test completed",
			zap.Any("final", final.Final),
			zap.Any("percentages", final.Percentages))
		return Transition{From: from, Completed: true}, nil
	}

	survivors := make(map[bank.Key]bool)
	for _, opt := range s.store.Live(from) {
		survivors[opt.Key()] = true
	}
	hidden := len(s.eligible[from]) - len(survivors)

	s.eligible[next] = survivors
	s.store.ClearRound(next)
	s.current = next

	s.logger.Info("round advanced",
		zap.Int("from", int(from)),
		zap.Int("to", int(next)),
		zap.Int("hidden", hidden))
	return Transition{From: from, To: next, Hidden: hidden}, nil
}

// Reset discards all selections and history and returns to round 1.
func (s *Session) Reset() {
	s.reset()
	s.logger.Info("session reset")
}

// reset swaps in a fresh state in one step.
func (s *Session) reset() {
	var eligible [round.Count + 1]map[bank.Key]bool
	all := make(map[bank.Key]bool)
	for _, opt := range s.bank.Options() {
		all[opt.Key()] = true
	}
	eligible[round.First] = all
	for _, r := range round.All()[1:] {
		eligible[r] = make(map[bank.Key]bool)
	}

	s.store = selection.NewStore()
	s.eligible = eligible
	s.current = round.First
	s.done = false
}

// DisplayScores computes the current scores and percentages.
func (s *Session) DisplayScores() Display {
	sc := scoring.Compute(s.store)
	return Display{
		Primary:     sc.Primary,
		Final:       sc.Final,
		Percentages: scoring.Percentages(sc.Final),
	}
}

// History returns group's per-round picks.
func (s *Session) History(group bank.GroupID) GroupHistory {
	return GroupHistory{
		Round1: s.store.HistoryForGroup(round.First, group),
		Round2: s.store.HistoryForGroup(round.Second, group),
		Round3: s.store.HistoryForGroup(round.Third, group),
	}
}

// Eliminated returns every option no longer in play in the active round, in
// bank order.
func (s *Session) Eliminated() []bank.Option {
	var out []bank.Option
	for _, opt := range s.bank.Options() {
		if !s.eligible[s.current][opt.Key()] {
			out = append(out, opt)
		}
	}
	return out
}
