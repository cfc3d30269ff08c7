package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left while held
	ActionRight          // Right arrow, D - move right while held
	ActionStart          // Enter, start control - begin a run
	ActionReset          // R, reset control - back to idle
	ActionTap            // Space, click control - primary button of tap games
	ActionPause          // P - pause/unpause the frame loop
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionTap:
		return "Tap"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case action name to an Action.
// Unknown names map to ActionNone.
func ParseAction(name string) Action {
	switch name {
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "start":
		return ActionStart
	case "reset":
		return ActionReset
	case "tap":
		return ActionTap
	case "pause":
		return ActionPause
	default:
		return ActionNone
	}
}

// InputEvent is a single press or release of an action.
// Buttons such as Start and Reset only ever arrive as presses.
type InputEvent struct {
	Action Action
	Down   bool
}

// Press builds a key-down event.
func Press(a Action) InputEvent {
	return InputEvent{Action: a, Down: true}
}

// Release builds a key-up event.
func Release(a Action) InputEvent {
	return InputEvent{Action: a, Down: false}
}
