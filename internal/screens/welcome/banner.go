package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/traitsort/internal/ui/theme"
)

const bannerArt = `
 ▀█▀ █▀█ ▄▀█ █ ▀█▀ █▀ █▀█ █▀█ ▀█▀
  █  █▀▄ █▀█ █  █  ▄█ █▄█ █▀▄  █ `

const bannerCompact = "T R A I T S O R T"

// RenderBanner returns the title banner in the primary colour, or a compact
// line when the terminal is narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
