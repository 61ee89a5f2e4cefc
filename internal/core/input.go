package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - start a run from the menu or after game over
	ActionPlace          // Space - drop the moving block
	ActionPause          // P - pause a running game
	ActionResume         // P - resume a paused game
	ActionReset          // R - abandon the run and return to the menu
	ActionBack           // B, Escape - leave the game screen
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPlace:
		return "Place"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Actions keep their arrival order so the driver can apply them one at a time
// before the tick runs.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
