package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts shown in help.
type KeyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
	SwitchTab key.Binding

	// Actions
	Open     key.Binding
	Sort     key.Binding
	Upvote   key.Binding
	Complete key.Binding
	Back     key.Binding

	// Application
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "first report"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "last report"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", "my / public reports"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open report"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s", "f"),
			key.WithHelp("s/f", "sort & filter"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("u", " "),
			key.WithHelp("u/Space", "upvote"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "mark as completed"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("Esc", "back"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Open, k.Sort, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.SwitchTab},
		{k.Open, k.Sort, k.Upvote, k.Complete, k.Back},
		{k.Refresh, k.Help, k.Quit, k.ForceQuit},
	}
}
