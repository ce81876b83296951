package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Save      key.Binding
	ExportPNG key.Binding
	Copy      key.Binding
	Diff      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	Tab       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		ExportPNG: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "export png"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy all"),
		),
		Diff: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "pending changes"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("alt+up", "alt++"),
			key.WithHelp("alt+↑", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("alt+down", "alt+-"),
			key.WithHelp("alt+↓", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("alt+0"),
			key.WithHelp("alt+0", "zoom 100%"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "insert tab"),
		),
	}
}
