// Package scoring turns checked options into primary-trait totals, derived
// axis totals and bipolar percentages.
package scoring

import (
	"math"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
	"github.com/abhisek/traitsort/internal/traits"
)

// Selections exposes the live set of every round.
type Selections interface {
	Live(r round.Round) []bank.Option
}

// Scores holds the primary and axis totals. Every trait has an entry.
type Scores struct {
	Primary map[traits.Primary]int
	Final   map[traits.Axis]int
}

// Compute sums each round's live options, weighted by round, into primary
// totals and folds them into axis totals through the trait map. Options whose
// trait tag is not a primary trait add nothing. Compute does not mutate sel.
func Compute(sel Selections) Scores {
	s := Scores{
		Primary: make(map[traits.Primary]int, len(traits.AllPrimary())),
		Final:   make(map[traits.Axis]int, len(traits.AllAxes())),
	}
	for _, p := range traits.AllPrimary() {
		s.Primary[p] = 0
	}
	for _, a := range traits.AllAxes() {
		s.Final[a] = 0
	}

	for _, r := range round.All() {
		for _, opt := range sel.Live(r) {
			if !opt.Scores() {
				continue
			}
			s.Primary[opt.Trait] += r.ScoreWeight()
		}
	}

	for _, p := range traits.AllPrimary() {
		for _, a := range traits.Contributes(p) {
			s.Final[a] += s.Primary[p]
		}
	}
	return s
}

// PairPercent splits a bipolar pair into whole percentages. Both are zero
// when the pair is empty; otherwise they always sum to exactly 100.
func PairPercent(left, right int) (int, int) {
	total := left + right
	if total == 0 {
		return 0, 0
	}
	l := int(math.Round(float64(left) / float64(total) * 100))
	return l, 100 - l
}

// Percentages derives the percentage of every axis trait relative to its
// opposing pole.
func Percentages(final map[traits.Axis]int) map[traits.Axis]int {
	out := make(map[traits.Axis]int, len(traits.AllAxes()))
	for _, p := range traits.Pairs() {
		out[p.Left], out[p.Right] = PairPercent(final[p.Left], final[p.Right])
	}
	return out
}

// Changes marks the cells whose value differs between two score sets.
type Changes struct {
	Primary map[traits.Primary]bool
	Final   map[traits.Axis]bool
}

// Any reports whether anything changed.
func (c Changes) Any() bool {
	return len(c.Primary) > 0 || len(c.Final) > 0
}

// Changed compares prev and cur cell by cell. Missing cells count as zero.
func Changed(prev, cur Scores) Changes {
	c := Changes{
		Primary: make(map[traits.Primary]bool),
		Final:   make(map[traits.Axis]bool),
	}
	for _, p := range traits.AllPrimary() {
		if prev.Primary[p] != cur.Primary[p] {
			c.Primary[p] = true
		}
	}
	for _, a := range traits.AllAxes() {
		if prev.Final[a] != cur.Final[a] {
			c.Final[a] = true
		}
	}
	return c
}
