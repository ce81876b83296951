package state

import "testing"

func TestToggleDiff(t *testing.T) {
	s := UIState{View: Write}
	s = ToggleDiff(s)
	if s.View != PendingChanges || s.Notice == "" {
		t.Fatalf("expected PendingChanges view and notice")
	}
	s = ToggleDiff(s)
	if s.View != Write || s.Notice != "" {
		t.Fatalf("expected Write view with cleared notice")
	}
}

func TestToggleHelp(t *testing.T) {
	s := UIState{}
	s = ToggleHelp(s)
	if !s.ShowHelp {
		t.Fatalf("expected help overlay on")
	}
}

func TestResize(t *testing.T) {
	s := Resize(UIState{}, 120, 40)
	if s.Width != 120 || s.Height != 40 {
		t.Fatalf("resize = %dx%d", s.Width, s.Height)
	}
}

func TestQuitArming(t *testing.T) {
	s := ArmQuit(UIState{}, "unsaved changes; quit again to discard")
	if !s.QuitArmed || s.Notice == "" {
		t.Fatalf("expected armed quit with reason")
	}
	s = DisarmQuit(s)
	if s.QuitArmed || s.Notice != "" {
		t.Fatalf("expected disarmed quit")
	}
}

func TestDisarmQuitIsNoOpWhenNotArmed(t *testing.T) {
	s := Notify(UIState{}, "Saved")
	s = DisarmQuit(s)
	if s.Notice != "Saved" {
		t.Fatalf("disarm must not clear unrelated notices")
	}
}
