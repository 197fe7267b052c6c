package replay

import (
	"fmt"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/session"
)

// Run applies picks to s round by round: every label is toggled through
// Interact and each round is closed with Advance. It stops at the first
// rejection and returns it wrapped with its position; s keeps whatever state
// was reached.
func Run(s *session.Session, p *Picks) error {
	for i, rp := range p.Rounds {
		if s.Completed() {
			return fmt.Errorf("picks for round %d: %w", i+1, session.ErrCompleted)
		}
		for _, group := range rp.Groups() {
			for _, label := range rp[group] {
				if _, err := s.Interact(group, label); err != nil {
					return fmt.Errorf("%v group %d %q: %w", s.Round(), group, label, err)
				}
			}
		}
		if _, err := s.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// GroupReport is one group's recap.
type GroupReport struct {
	Group  bank.GroupID `json:"group"`
	Title  string       `json:"title"`
	Round1 []string     `json:"round1"`
	Round2 []string     `json:"round2"`
	Round3 []string     `json:"round3"`
}

// Report is the outcome of a replay.
type Report struct {
	Session     string         `json:"session"`
	Round       int            `json:"round"`
	Completed   bool           `json:"completed"`
	Primary     map[string]int `json:"primary"`
	Final       map[string]int `json:"final"`
	Percentages map[string]int `json:"percentages"`
	Groups      []GroupReport  `json:"groups"`
}

// BuildReport snapshots the session's scores and history.
func BuildReport(s *session.Session) *Report {
	d := s.DisplayScores()
	r := &Report{
		Session:     s.ID(),
		Round:       int(s.Round()),
		Completed:   s.Completed(),
		Primary:     make(map[string]int, len(d.Primary)),
		Final:       make(map[string]int, len(d.Final)),
		Percentages: make(map[string]int, len(d.Percentages)),
	}
	for k, v := range d.Primary {
		r.Primary[string(k)] = v
	}
	for k, v := range d.Final {
		r.Final[string(k)] = v
	}
	for k, v := range d.Percentages {
		r.Percentages[string(k)] = v
	}
	for _, g := range s.Bank().Groups() {
		h := s.History(g.ID)
		r.Groups = append(r.Groups, GroupReport{
			Group:  g.ID,
			Title:  g.Title,
			Round1: labelsOf(h.Round1),
			Round2: labelsOf(h.Round2),
			Round3: labelsOf(h.Round3),
		})
	}
	return r
}

func labelsOf(opts []bank.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}
