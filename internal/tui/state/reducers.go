package state

// ToggleDiff switches between the writing view and the pending-changes
// view and returns a new state copy.
func ToggleDiff(s UIState) UIState {
	if s.View == Write {
		s.View = PendingChanges
		s.Notice = "[pending changes]"
	} else {
		s.View = Write
		s.Notice = ""
	}
	return s
}

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// Resize records the terminal size.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}

// Notify sets an ephemeral notice.
func Notify(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}

// ArmQuit arms the quit confirmation and explains it.
func ArmQuit(s UIState, reason string) UIState {
	s.QuitArmed = true
	s.Notice = reason
	return s
}

// DisarmQuit clears a pending quit confirmation, typically because the
// user kept typing instead of confirming.
func DisarmQuit(s UIState) UIState {
	if s.QuitArmed {
		s.QuitArmed = false
		s.Notice = ""
	}
	return s
}
