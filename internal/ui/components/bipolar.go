package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitsort/internal/ui/theme"
)

// BipolarBar shows the split between two opposite traits as one bar, the
// left share filled from the left and the right share from the right.
type BipolarBar struct {
	Left, Right       string
	LeftPct, RightPct int
	Width             int
	// Highlight renders the percentages in the accent colour.
	Highlight bool
}

// View renders the bar as "Left 40% ████░░░░░░ 60% Right".
func (b BipolarBar) View() string {
	pctStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if b.Highlight {
		pctStyle = theme.Changed
	}

	left := fmt.Sprintf("%-13s", b.Left) + pctStyle.Render(fmt.Sprintf("%3d%%", b.LeftPct)) + " "
	right := " " + pctStyle.Render(fmt.Sprintf("%3d%%", b.RightPct)) + " " + b.Right

	barWidth := max(b.Width-lipgloss.Width(left)-lipgloss.Width(right), 4)

	// Nothing scored yet: both sides are zero and the bar stays empty.
	if b.LeftPct+b.RightPct == 0 {
		empty := lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth))
		return left + empty + right
	}

	filled := min(max(barWidth*b.LeftPct/100, 0), barWidth)

	leftBar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled))
	rightBar := lipgloss.NewStyle().Background(theme.Primary).Render(strings.Repeat(" ", barWidth-filled))

	return left + leftBar + rightBar + right
}
