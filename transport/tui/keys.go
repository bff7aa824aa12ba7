package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Play: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("click/1-9", "play"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc", "quit"),
	),
}

func (that keyMap) ShortHelp() []key.Binding {
	return []key.Binding{that.Play, that.Quit}
}
