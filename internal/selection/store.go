// Package selection tracks which options are checked in each round and the
// per-round selection history shown in the completion recap.
package selection

import (
	"slices"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
)

// Store holds a live set and a history log for every round.
//
// The live set is what scoring reads. The history keeps insertion order and
// is deduplicated by option identity; checking an option appends it, and
// unchecking removes it again, so the two agree while a round is active.
// ClearRound empties only the live set.
type Store struct {
	live    [round.Count + 1]map[bank.Key]bank.Option
	history [round.Count + 1][]bank.Option
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Toggle flips option's membership in round r and returns the new checked
// state. Invalid rounds are ignored and report false.
func (s *Store) Toggle(r round.Round, opt bank.Option) bool {
	if !r.Valid() {
		return false
	}
	key := opt.Key()
	if _, checked := s.live[r][key]; checked {
		delete(s.live[r], key)
		s.history[r] = slices.DeleteFunc(s.history[r], func(o bank.Option) bool {
			return o.Key() == key
		})
		return false
	}

	s.live[r][key] = opt
	if !slices.ContainsFunc(s.history[r], func(o bank.Option) bool { return o.Key() == key }) {
		s.history[r] = append(s.history[r], opt)
	}
	return true
}

// Checked reports whether option is in round r's live set.
func (s *Store) Checked(r round.Round, opt bank.Option) bool {
	if !r.Valid() {
		return false
	}
	_, ok := s.live[r][opt.Key()]
	return ok
}

// Count returns the number of checked options of group in round r.
func (s *Store) Count(r round.Round, group bank.GroupID) int {
	if !r.Valid() {
		return 0
	}
	n := 0
	for key := range s.live[r] {
		if key.Group == group {
			n++
		}
	}
	return n
}

// Live returns round r's checked options in bank order.
func (s *Store) Live(r round.Round) []bank.Option {
	if !r.Valid() {
		return nil
	}
	out := make([]bank.Option, 0, len(s.live[r]))
	for _, opt := range s.live[r] {
		out = append(out, opt)
	}
	slices.SortFunc(out, bank.Compare)
	return out
}

// History returns round r's selection history in the order options were
// checked.
func (s *Store) History(r round.Round) []bank.Option {
	if !r.Valid() {
		return nil
	}
	return slices.Clone(s.history[r])
}

// HistoryForGroup returns round r's history restricted to one group.
func (s *Store) HistoryForGroup(r round.Round, group bank.GroupID) []bank.Option {
	if !r.Valid() {
		return nil
	}
	var out []bank.Option
	for _, opt := range s.history[r] {
		if opt.Group == group {
			out = append(out, opt)
		}
	}
	return out
}

// ClearRound empties round r's live set. History is left untouched.
func (s *Store) ClearRound(r round.Round) {
	if !r.Valid() {
		return
	}
	s.live[r] = make(map[bank.Key]bank.Option)
}

// Reset empties every live set and history.
func (s *Store) Reset() {
	for _, r := range round.All() {
		s.live[r] = make(map[bank.Key]bank.Option)
		s.history[r] = nil
	}
}
