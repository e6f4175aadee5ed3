package core

import "math"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H, swipe left - move one lane left
	ActionRight          // Right arrow, D, L, swipe right - move one lane right
	ActionJump           // Space, W, Up, swipe up - jump
	ActionConfirm        // Enter - start a run from the title screen
	ActionRestart        // R key - restart after game over
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions pending for one simulation tick.
// The platform fills it between ticks and clears it after each Step.
type InputFrame struct {
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

// Empty reports whether no action is pending.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
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

// SwipeThresholds are the minimum travel distances for a drag to count as a
// gesture. Units are whatever the pointer reports (cells in a terminal).
type SwipeThresholds struct {
	Vertical   float64
	Horizontal float64
}

// ClassifySwipe maps a pointer drag (end minus start) onto an action.
// A vertical-dominant drag upward beyond the vertical threshold is a jump;
// otherwise a horizontal drag beyond the horizontal threshold moves a lane.
// Everything else, including downward drags, is ActionNone.
func ClassifySwipe(dx, dy float64, th SwipeThresholds) Action {
	if math.Abs(dy) > math.Abs(dx) {
		if dy < -th.Vertical {
			return ActionJump
		}
		return ActionNone
	}

	switch {
	case dx < -th.Horizontal:
		return ActionLeft
	case dx > th.Horizontal:
		return ActionRight
	}
	return ActionNone
}
