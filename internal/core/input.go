package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends translate raw keys to actions through the configured key bindings.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, w, k - steer up
	ActionDown              // Down arrow, s, j - steer down
	ActionLeft              // Left arrow, a, h - steer left
	ActionRight             // Right arrow, d, l - steer right
	ActionQuit              // q - end the session
	ActionInterrupt         // Ctrl+C - end the session, even while waiting after game over
	ActionScreenshot        // Ctrl+S - save the current frame
	ActionAny               // any other key; only meaningful as an acknowledgment
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
	case ActionQuit:
		return "Quit"
	case ActionInterrupt:
		return "Interrupt"
	case ActionScreenshot:
		return "Screenshot"
	case ActionAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// Vector returns the unit direction for a steering action.
// ok is false for actions that do not steer.
func (a Action) Vector() (dx, dy int, ok bool) {
	switch a {
	case ActionUp:
		return 0, -1, true
	case ActionDown:
		return 0, 1, true
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// Ends reports whether the action terminates the play loop.
func (a Action) Ends() bool {
	return a == ActionQuit || a == ActionInterrupt
}
