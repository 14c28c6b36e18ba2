package tracker

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	next    key.Binding
	start   key.Binding
	end     key.Binding
	cancel  key.Binding
	history key.Binding
	retry   key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	next: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch field"),
	),
	start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	end: key.NewBinding(
		key.WithKeys("enter", "ctrl+e"),
		key.WithHelp("enter", "end session"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to session"),
	),
	history: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "toggle log"),
	),
	retry: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "retry save"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
