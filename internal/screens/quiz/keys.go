package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevGroup key.Binding
	NextGroup key.Binding
	Toggle    key.Binding
	Advance   key.Binding
	Reset     key.Binding
	Recap     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "Down")),
		PrevGroup: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←→", "Group")),
		NextGroup: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "Next group")),
		Toggle:    key.NewBinding(key.WithKeys("space", "enter", "x"), key.WithHelp("Space", "Toggle")),
		Advance:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Next round")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Restart")),
		Recap:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Recap")),
	}
}
