package core

// Key is a platform-neutral identifier for a pressed key.
// Front ends translate their native key events into Key values.
type Key string

// Keys understood by the game. Anything else is ignored.
const (
	KeyNone  Key = ""
	KeySpace Key = "space"
	KeyUp    Key = "up"
	KeyX     Key = "x"
)

// JumpKeys lists every key that triggers a jump (and a restart after game over).
var JumpKeys = []Key{KeySpace, KeyUp, KeyX}

// IsJumpKey returns true if k is one of the jump keys.
func IsJumpKey(k Key) bool {
	for _, jk := range JumpKeys {
		if k == jk {
			return true
		}
	}
	return false
}

// Action represents a front-end action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionJump        // Space, Up, X - flap, restarts after game over
	ActionHelp        // ? - toggle full help
	ActionScreenshot  // Ctrl+S - save the screen as text
	ActionQuit        // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
