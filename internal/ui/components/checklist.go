package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitsort/internal/ui/theme"
)

// CheckItem is one row of a Checklist.
type CheckItem struct {
	Label   string
	Checked bool
	// Mark colours a checked row. Nil uses the primary colour.
	Mark color.Color
}

// Checklist renders a titled list of checkable rows with a cursor.
type Checklist struct {
	Title  string
	Items  []CheckItem
	Cursor int
	// Footnote is rendered dimmed below the rows, e.g. "3 / 4 selected".
	Footnote string
}

// View renders the checklist.
func (c Checklist) View() string {
	var b strings.Builder

	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title))
		b.WriteString("\n\n")
	}

	if len(c.Items) == 0 {
		b.WriteString(theme.Hint.Render("  no options left"))
		b.WriteString("\n")
	}

	for i, item := range c.Items {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		line := prefix + box + " " + item.Label

		style := theme.Unchecked
		if item.Checked {
			mark := item.Mark
			if mark == nil {
				mark = theme.Primary
			}
			style = lipgloss.NewStyle().Foreground(mark).Bold(true)
		} else if i == c.Cursor {
			style = theme.Cursor
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if c.Footnote != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(c.Footnote))
	}

	return b.String()
}
