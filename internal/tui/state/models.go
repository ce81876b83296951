package state

// View selects what the main panel shows.
type View int

const (
	Write View = iota
	PendingChanges
)

// UIState holds cross-widget UI state used by the editor, status bar
// and overlays. Link and geometry state live in their own packages;
// this is only the presentation side.
type UIState struct {
	View     View
	ShowHelp bool

	// Layout
	Width  int
	Height int

	// Quit confirmation: armed after the first quit key while content
	// is not guaranteed durable.
	QuitArmed bool

	// Notices and ephemeral messages
	Notice string
}
