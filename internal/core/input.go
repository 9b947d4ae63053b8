package core

// Action represents a discrete semantic game action, abstracted from
// physical key presses. This allows the game to work with high-level
// intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - start from menu / restart from game over
	ActionDash           // Space - trigger the evasive dash
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionDash:
		return "Dash"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MoveState carries the continuous key-held movement axes for one tick.
// Terminals deliver no key-up events, so the platform emulates held keys;
// the game only sees the resulting boolean flags.
type MoveState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Any returns true if at least one direction is held.
func (m MoveState) Any() bool {
	return m.Up || m.Down || m.Left || m.Right
}

// InputFrame represents the input state for a single simulation tick:
// discrete actions triggered this frame plus the held movement state.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Move is the continuous movement state sampled for this frame.
	Move MoveState
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

// Clear resets all actions and movement for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Move = MoveState{}
}
