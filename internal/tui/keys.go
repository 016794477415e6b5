package tui

import (
	"github.com/charmbracelet/bubbles/key"

	listview "github.com/rshade/dexterm/internal/tui/list"
)

// KeyMap holds the browser's bindings. Next and Prev are enabled only while
// the loaded page has a page in that direction.
type KeyMap struct {
	List listview.KeyMap
	Next key.Binding
	Prev key.Binding
	Open key.Binding
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		List: listview.DefaultKeyMap(),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous page"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// listHelp is the help.KeyMap shown under the list view.
type listHelp KeyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.List.Up, k.List.Down, k.Prev, k.Next, k.Open, k.Help, k.Quit}
}

func (k listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.List.Up, k.List.Down, k.List.PageUp, k.List.PageDown, k.List.Home, k.List.End},
		{k.Prev, k.Next, k.Open},
		{k.Help, k.Quit},
	}
}

// detailHelp is the help.KeyMap shown under the detail view.
type detailHelp KeyMap

func (k detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
