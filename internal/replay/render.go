package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/traitsort/internal/traits"
)

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// WriteText writes the report as plain tables.
func (r *Report) WriteText(w io.Writer) error {
	status := fmt.Sprintf("round %d in progress", r.Round)
	if r.Completed {
		status = "completed"
	}

	primary := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Primary trait", "Score")
	for _, p := range traits.AllPrimary() {
		primary.Row(p.DisplayName(), strconv.Itoa(r.Primary[string(p)]))
	}

	axes := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Trait", "Score", "%", "Trait", "Score", "%")
	for _, p := range traits.Pairs() {
		l, rt := string(p.Left), string(p.Right)
		axes.Row(
			p.Left.DisplayName(), strconv.Itoa(r.Final[l]), fmt.Sprintf("%d%%", r.Percentages[l]),
			p.Right.DisplayName(), strconv.Itoa(r.Final[rt]), fmt.Sprintf("%d%%", r.Percentages[rt]),
		)
	}

	history := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Group", "Round 1 (1 pt)", "Round 2 (2 pts)", "Round 3 (4 pts)")
	for _, g := range r.Groups {
		history.Row(g.Title, joinPicks(g.Round1), joinPicks(g.Round2), joinPicks(g.Round3))
	}

	_, err := fmt.Fprintf(w, "Session %s: %s\n\n%s\n\n%s\n\n%s\n",
		r.Session, status, primary.String(), axes.String(), history.String())
	return err
}

func joinPicks(labels []string) string {
	if len(labels) == 0 {
		return "no selection"
	}
	return strings.Join(labels, ", ")
}
