package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/traitsort/internal/scoring"
	"github.com/abhisek/traitsort/internal/traits"
	"github.com/abhisek/traitsort/internal/ui/theme"
)

// ScorePanel renders the live score board: primary totals beside the axis
// totals, then one BipolarBar per pair.
type ScorePanel struct {
	Primary     map[traits.Primary]int
	Final       map[traits.Axis]int
	Percentages map[traits.Axis]int
	// Changes highlights the cells that moved on the last toggle.
	Changes scoring.Changes
	Width   int
}

// View renders the panel.
func (p ScorePanel) View() string {
	primaries := traits.AllPrimary()
	axes := traits.AllAxes()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Trait", "Pts", "Axis", "Pts").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Foreground(theme.TextDim).Bold(true)
			}
			if p.changedCell(row, col) {
				return base.Inherit(theme.Changed)
			}
			return base.Foreground(theme.Text)
		})

	for i, pt := range primaries {
		cells := []string{pt.DisplayName(), strconv.Itoa(p.Primary[pt]), "", ""}
		if i < len(axes) {
			cells[2] = axes[i].DisplayName()
			cells[3] = strconv.Itoa(p.Final[axes[i]])
		}
		t.Row(cells...)
	}

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n\n")
	for _, pair := range traits.Pairs() {
		b.WriteString(BipolarBar{
			Left:      pair.Left.DisplayName(),
			Right:     pair.Right.DisplayName(),
			LeftPct:   p.Percentages[pair.Left],
			RightPct:  p.Percentages[pair.Right],
			Width:     p.Width,
			Highlight: p.Changes.Final[pair.Left] || p.Changes.Final[pair.Right],
		}.View())
		b.WriteString("\n")
	}
	return b.String()
}

// changedCell maps a table cell back to the trait it shows.
func (p ScorePanel) changedCell(row, col int) bool {
	switch col {
	case 0, 1:
		primaries := traits.AllPrimary()
		return row < len(primaries) && p.Changes.Primary[primaries[row]]
	case 2, 3:
		axes := traits.AllAxes()
		return row < len(axes) && p.Changes.Final[axes[row]]
	}
	return false
}
