package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the card key bindings
type KeyMap struct {
	Next  key.Binding
	Known key.Binding
	Flip  key.Binding
	Quit  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Known, km.Flip, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Known}, {km.Flip, km.Quit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap binds n/→ to next, enter/k to known, space/f to flip and q/esc to quit
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("n", "x", "right"),
		key.WithHelp("→/n", "next"),
	),
	Known: key.NewBinding(
		key.WithKeys("k", "enter"),
		key.WithHelp("enter/k", "known"),
	),
	Flip: key.NewBinding(
		key.WithKeys(" ", "space", "f"),
		key.WithHelp("space/f", "flip"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
