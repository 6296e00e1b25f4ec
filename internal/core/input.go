package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - move up
	ActionDown         // S, Down arrow - move down
	ActionLeft         // A, Left arrow - move left
	ActionRight        // D, Right arrow - move right
	ActionStop         // Space - release all held directions
	ActionPause        // P - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit game
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
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// Opposite returns the reverse direction, or ActionNone for non-directions.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}

// InputFrame represents the input state during one simulation tick.
// Directional actions are "currently pressed"; others fire once.
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

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// HeldKeys approximates a "currently pressed" key set on terminals, which
// report presses and auto-repeats but never releases. A direction stays held
// for holdTicks ticks after its most recent press.
type HeldKeys struct {
	holdTicks int
	remaining map[Action]int
}

// NewHeldKeys creates a tracker that holds each press for holdTicks ticks.
// holdTicks below 1 is treated as 1.
func NewHeldKeys(holdTicks int) *HeldKeys {
	return &HeldKeys{
		holdTicks: max(1, holdTicks),
		remaining: make(map[Action]int),
	}
}

// Press records a key press. Pressing a direction releases its opposite,
// and ActionStop releases everything.
func (h *HeldKeys) Press(a Action) {
	switch {
	case a == ActionStop:
		h.ReleaseAll()
	case a.IsDirection():
		delete(h.remaining, a.Opposite())
		h.remaining[a] = h.holdTicks
	}
}

// Release drops a single held direction.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// ReleaseAll drops every held direction.
func (h *HeldKeys) ReleaseAll() {
	for k := range h.remaining {
		delete(h.remaining, k)
	}
}

// Held reports whether a direction is currently held.
func (h *HeldKeys) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Tick writes the currently held directions into the frame and ages them by
// one tick.
func (h *HeldKeys) Tick(frame *InputFrame) {
	for a, left := range h.remaining {
		frame.Set(a)
		if left <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = left - 1
		}
	}
}
