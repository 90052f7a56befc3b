// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// Mode is the interaction mode the hints are shown for.
type Mode int

const (
	ModeMenu Mode = iota
	ModeQuery
	ModeResults
	ModeCategories
	ModeDetail
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding
	Up   key.Binding
	Down key.Binding

	// Submit runs the typed query.
	Submit key.Binding

	// Open shows the highlighted entry or browses the highlighted category.
	Open key.Binding

	// NewSearch clears the query and returns to typing.
	NewSearch key.Binding

	// NextSource narrows the search to the next catalog source,
	// wrapping back to all sources.
	NextSource key.Binding

	// Browse jumps from the menu to the category browser.
	Browse key.Binding

	// Reload refetches category counts.
	Reload key.Binding
}

// Section is a titled group of bindings on the help page.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n", "/"),
			key.WithHelp("n, /", "new search"),
		),
		NextSource: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle source filter"),
		),
		Browse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "browse categories"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload counts"),
		),
	}
}

// Hints returns the bindings worth showing in the status bar for mode.
func (k *KeyMap) Hints(mode Mode) []key.Binding {
	switch mode {
	case ModeMenu:
		return []key.Binding{k.Open, k.NewSearch, k.Browse, k.Quit}
	case ModeQuery:
		return []key.Binding{k.Submit, k.NextSource, k.Back}
	case ModeResults:
		return []key.Binding{k.Open, k.NewSearch, k.NextSource, k.Back}
	case ModeCategories:
		return []key.Binding{k.Open, k.Reload, k.Back}
	case ModeDetail:
		return []key.Binding{k.Up, k.Down, k.Back}
	}
	return []key.Binding{k.Back}
}

// Sections groups every binding by the view that uses it, in the
// order the help page lists them.
func (k *KeyMap) Sections() []Section {
	return []Section{
		{Title: "Menu", Bindings: []key.Binding{k.Up, k.Down, k.Open, k.NewSearch, k.Browse, k.Help, k.Quit}},
		{Title: "Search", Bindings: []key.Binding{k.Submit, k.NextSource, k.Back}},
		{Title: "Results", Bindings: []key.Binding{k.Up, k.Down, k.Open, k.NewSearch, k.NextSource, k.Back}},
		{Title: "Categories", Bindings: []key.Binding{k.Open, k.Reload, k.Back}},
	}
}
