package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
)

var (
	// ErrCompleted is returned for any toggle or advance after round 3.
	ErrCompleted = errors.New("test already completed")

	// ErrOptionHidden is returned when toggling an option that was eliminated
	// in an earlier round.
	ErrOptionHidden = errors.New("option was eliminated in an earlier round")

	// ErrUnknownOption is returned when no option matches (group, label).
	ErrUnknownOption = errors.New("unknown option")
)

// SelectionCapError rejects checking an option in a group that already holds
// the round's quota.
type SelectionCapError struct {
	Round round.Round
	Group bank.GroupID
	Cap   int
}

func (e *SelectionCapError) Error() string {
	return fmt.Sprintf("each group allows at most %d selections", e.Cap)
}

// Mismatch is a group whose checked count differs from the round's quota.
type Mismatch struct {
	Group    bank.GroupID
	Selected int
	Required int
}

// IncompleteSelectionError rejects an advance while any group is under- or
// over-selected. Mismatches are in group order.
type IncompleteSelectionError struct {
	Round      round.Round
	Mismatches []Mismatch
}

func (e *IncompleteSelectionError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = fmt.Sprintf("group %d has %d of %d", m.Group, m.Selected, m.Required)
	}
	return fmt.Sprintf("%v selection incomplete: %s", e.Round, strings.Join(parts, ", "))
}

// Message renders the multi-line text shown to the user.
func (e *IncompleteSelectionError) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d is not finished yet. Check these groups:\n\n", int(e.Round))
	for _, m := range e.Mismatches {
		fmt.Fprintf(&b, "Group %d: %d selected, %d needed\n", m.Group, m.Selected, m.Required)
	}
	fmt.Fprintf(&b, "\nEvery group needs exactly %d selections before moving on.", e.Round.RequiredSelections())
	return b.String()
}
