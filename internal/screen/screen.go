package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/traitsort/internal/ui/layout"
)

// Screen is one full-frame view managed by the router.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that want their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status on the right
// side of the header.
type StatusProvider interface {
	Status() string
}
