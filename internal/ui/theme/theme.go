package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitsort/internal/round"
)

// Palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Round colours mark which round an option was checked in.
var (
	Round1 = lipgloss.Color("#38BDF8") // Sky
	Round2 = lipgloss.Color("#A78BFA") // Violet
	Round3 = lipgloss.Color("#F472B6") // Pink
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Cursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unchecked = lipgloss.NewStyle().
			Foreground(Text)

	Changed = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Notice = lipgloss.NewStyle().
		Foreground(Success)
)

// RoundColor returns the marking colour for r. Unknown rounds fall back to
// the primary colour.
func RoundColor(r round.Round) color.Color {
	switch r {
	case round.First:
		return Round1
	case round.Second:
		return Round2
	case round.Third:
		return Round3
	}
	return Primary
}

// RoundBadge renders a compact "R1" style badge in the round's colour.
func RoundBadge(r round.Round) string {
	return lipgloss.NewStyle().
		Foreground(BgCard).
		Background(RoundColor(r)).
		Bold(true).
		Padding(0, 1).
		Render(fmt.Sprintf("R%d", r))
}
