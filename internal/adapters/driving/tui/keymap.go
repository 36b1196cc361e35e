package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browser's key bindings on top of the list's built-in
// navigation and filtering.
type keyMap struct {
	Focus key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read section"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
