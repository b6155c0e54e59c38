package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W, Up arrow
	ActionBackward           // S, Down arrow
	ActionStrafeLeft         // A
	ActionStrafeRight        // D
	ActionTurnLeft           // Left arrow, J
	ActionTurnRight          // Right arrow, L
	ActionLookUp             // I
	ActionLookDown           // K
	ActionInteract           // Space, E, left click
	ActionConfirm            // Enter - confirm selection in menus
	ActionBack               // B - back to menu
	ActionPause              // P, Escape
	ActionQuit               // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionForward:     "Forward",
	ActionBackward:    "Backward",
	ActionStrafeLeft:  "StrafeLeft",
	ActionStrafeRight: "StrafeRight",
	ActionTurnLeft:    "TurnLeft",
	ActionTurnRight:   "TurnRight",
	ActionLookUp:      "LookUp",
	ActionLookDown:    "LookDown",
	ActionInteract:    "Interact",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionPause:       "Pause",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input state for one simulation tick.
type InputFrame struct {
	// Actions holds the actions active during this tick. Movement actions
	// stay set for as long as the key is held.
	Actions map[Action]bool

	// PointerDX and PointerDY are the pointer movement since the last tick
	// in screen pixels.
	PointerDX, PointerDY float32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Look accumulates pointer movement.
func (f *InputFrame) Look(dx, dy float32) {
	f.PointerDX += dx
	f.PointerDY += dy
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.PointerDX, f.PointerDY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerDX, clone.PointerDY = f.PointerDX, f.PointerDY
	return clone
}
