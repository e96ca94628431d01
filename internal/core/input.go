package core

// Action is a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // steer left
	ActionUp             // steer up
	ActionRight          // steer right
	ActionDown           // steer down
	ActionReset          // drop trail walls and return to the start cell
	ActionRestart        // start the pack again once the run is over
	ActionPause
	ActionBack // leave the game for the menu
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionUp:      "Up",
	ActionRight:   "Right",
	ActionDown:    "Down",
	ActionReset:   "Reset",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions held during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	held uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.held |= 1 << a
}

// Has reports whether the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.held&(1<<a) != 0
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.held == 0
}

// Held lists the held actions in declaration order.
func (f InputFrame) Held() []Action {
	var out []Action
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear releases every action for the next frame.
func (f *InputFrame) Clear() {
	f.held = 0
}
