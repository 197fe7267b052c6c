package round

import "fmt"

// Round is one of the three elimination stages.
type Round int

const (
	First  Round = iota + 1 // Pick 4 of 8 per group, 1 point each
	Second                  // Pick 2 of the surviving 4, 2 points each
	Third                   // Pick 1 of the surviving 2, 4 points each
)

// Count is the number of rounds in a test.
const Count = 3

// requiredSelections and scoreWeights are indexed by round; index 0 is unused.
var (
	requiredSelections = [Count + 1]int{0, 4, 2, 1}
	scoreWeights       = [Count + 1]int{0, 1, 2, 4}
)

// All returns the rounds in play order.
func All() []Round {
	return []Round{First, Second, Third}
}

// Valid reports whether r is a playable round.
func (r Round) Valid() bool {
	return r >= First && r <= Third
}

// RequiredSelections returns how many options must be checked per group
// before the round can be left. It also caps live selection.
func (r Round) RequiredSelections() int {
	if !r.Valid() {
		return 0
	}
	return requiredSelections[r]
}

// ScoreWeight returns the points each checked option earns in this round.
func (r Round) ScoreWeight() int {
	if !r.Valid() {
		return 0
	}
	return scoreWeights[r]
}

// Next returns the following round and false when r is the last one.
func (r Round) Next() (Round, bool) {
	if r >= Third || !r.Valid() {
		return 0, false
	}
	return r + 1, true
}

// Last reports whether r is the final round.
func (r Round) Last() bool {
	return r == Third
}

func (r Round) String() string {
	return fmt.Sprintf("round %d", int(r))
}

// Title returns the heading shown while the round is active.
func (r Round) Title() string {
	switch r {
	case First:
		return "Round 1: pick the 4 most important of 8"
	case Second:
		return "Round 2: pick the 2 more important of 4"
	case Third:
		return "Round 3: pick the 1 most important of 2"
	default:
		return ""
	}
}

// Instruction returns the per-round quota and scoring hint.
func (r Round) Instruction() string {
	if !r.Valid() {
		return ""
	}
	return fmt.Sprintf("Choose %d in every group (%d %s each)",
		r.RequiredSelections(), r.ScoreWeight(), pointWord(r.ScoreWeight()))
}

// AdvanceLabel returns the label of the action that leaves the round.
func (r Round) AdvanceLabel() string {
	if r.Last() {
		return "Finish"
	}
	return "Next round"
}

func pointWord(n int) string {
	if n == 1 {
		return "point"
	}
	return "points"
}
