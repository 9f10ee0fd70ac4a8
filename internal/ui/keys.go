package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the app
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Tab      key.Binding // Switch focus between list and detail
	Enter    key.Binding
	Space    key.Binding // Toggle startup on/off
	Escape   key.Binding

	Search key.Binding // Filter by name/command
	Filter key.Binding // Cycle origin/status filter
	Add    key.Binding // Add a custom startup entry
	Delay  key.Binding // Set startup delay
	Diff   key.Binding // Preview what enabling would write
	RunNow key.Binding // Launch the selected app immediately

	Export     key.Binding
	Import     key.Binding
	OpenFolder key.Binding // Open ~/.config/autostart
	Refresh    key.Binding

	History key.Binding // Snapshot history panel
	Restore key.Binding // Restore from a snapshot

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "last"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "enable/disable"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add custom"),
		),
		Delay: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "set delay"),
		),
		Diff: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "preview changes"),
		),
		RunNow: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "run now"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		OpenFolder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open folder"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		History: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "history"),
		),
		Restore: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restore from..."),
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

// ShortHelp returns keybindings to show in short help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Space, k.Search, k.Filter, k.Add, k.Delay, k.Help, k.Quit}
}

// FullHelp returns all keybindings for full help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		// List & Filtering
		{k.Tab, k.Space, k.Enter, k.Search, k.Filter},
		// Entry Operations
		{k.Add, k.Delay, k.Diff, k.RunNow},
		// Transfer & Files
		{k.Export, k.Import, k.OpenFolder, k.Refresh},
		// History
		{k.History, k.Restore},
		// General
		{k.Help, k.Escape, k.Quit},
	}
}
