// internal/tui/keymap.go
//
// Key bindings for the terminal front-end. Gameplay keys map one-to-one to
// engine commands; UI-only keys (help, quit) are handled by the model and
// never reach the engine.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the game understands.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Check    key.Binding
	Depth    key.Binding
	Deselect key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap keeps the classic layout: arrows move, space or enter
// selects, d reports a tile's depth, escape drops the selection.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
		Select:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select tile")),
		Check:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check selection")),
		Depth:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "tile depth")),
		Deselect: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "deselect all")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Depth, k.Help, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Check, k.Depth, k.Deselect},
		{k.Help, k.Quit},
	}
}
