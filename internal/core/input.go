package core

// Action is a semantic input, abstracted from keys, clicks and taps.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W, K, left click - flap (also starts and restarts)
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionHelp           // ? - toggle the help footer
	ActionQuit           // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions requested during one simulation tick.
// Setting an action that is already set is a no-op, so any number of
// keyboard, mouse or touch events collapse into one request per tick.
type InputFrame struct {
	actions map[Action]struct{}
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]struct{})}
}

// Set marks an action as requested for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.actions == nil {
		f.actions = make(map[Action]struct{})
	}
	f.actions[a] = struct{}{}
}

// Has returns true if the given action was requested this frame.
func (f InputFrame) Has(a Action) bool {
	_, ok := f.actions[a]
	return ok
}

// Len returns the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.actions {
		delete(f.actions, k)
	}
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k := range f.actions {
		clone.actions[k] = struct{}{}
	}
	return clone
}
