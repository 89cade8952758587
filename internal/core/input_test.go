package core

import "testing"

func TestInputFrameCollapsesDuplicates(t *testing.T) {
	f := NewInputFrame()

	// Key press, mouse click and auto-repeat inside one tick.
	f.Set(ActionFlap)
	f.Set(ActionFlap)
	f.Set(ActionFlap)

	if !f.Has(ActionFlap) {
		t.Fatal("Flap should be set")
	}
	if f.Len() != 1 {
		t.Errorf("Duplicate actions should collapse, got %d entries", f.Len())
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)

	if f.Len() != 0 {
		t.Errorf("ActionNone should not be recorded, got %d entries", f.Len())
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFlap)
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Clear should remove all actions, got %d", f.Len())
	}
	if !clone.Has(ActionFlap) || !clone.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionFlap, "Flap"},
		{ActionPause, "Pause"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
