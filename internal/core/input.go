package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move plane up
	ActionDown           // S, Down arrow - move plane down
	ActionLeft           // A, Left arrow - move plane left
	ActionRight          // D, Right arrow - move plane right
	ActionToggle         // T, Z - toggle the stasis zone
	ActionConfirm        // Enter, Space - start a match / select in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggle:
		return "Toggle"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered (or are held) during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Directions is the four-way directional state sampled once per tick.
// Flags are independent; opposite directions cancel out.
type Directions struct {
	Up, Down, Left, Right bool
}

// Directions extracts the directional flags from the frame.
func (f InputFrame) Directions() Directions {
	return Directions{
		Up:    f.Has(ActionUp),
		Down:  f.Has(ActionDown),
		Left:  f.Has(ActionLeft),
		Right: f.Has(ActionRight),
	}
}

// Any reports whether at least one direction is pressed.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}
