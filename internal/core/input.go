package core

// Action represents a semantic trainer action, abstracted from physical key presses.
// The platform maps keys onto actions so the session logic never sees raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionPause           // Space, P - toggle pause while a session is live
	ActionReset           // R - reset the session to idle
	ActionSettings        // S - open or close the settings panel
	ActionConfirm         // Enter - start a session or apply settings
	ActionBack            // Escape, B - leave the current view
	ActionQuit            // Q, Ctrl+C - exit the trainer
	ActionUp              // Up, K - previous settings row
	ActionDown            // Down, J - next settings row
	ActionLeft            // Left, H - decrease the selected setting
	ActionRight           // Right, L - increase the selected setting
	ActionLanguage        // G - cycle display language
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionSettings:
		return "Settings"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLanguage:
		return "Language"
	default:
		return "Unknown"
	}
}
