package core

// Action represents a semantic game action, abstracted from physical key
// or mouse events. The simulation works with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionSteerLeft         // A, Left arrow - steer the mount left
	ActionSteerRight        // D, Right arrow - steer the mount right
	ActionTap               // Space, Enter - jump out of water / confirm
	ActionChoiceA           // 1 - first upgrade choice
	ActionChoiceB           // 2 - second upgrade choice
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game
	ActionPause             // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionTap:
		return "Tap"
	case ActionChoiceA:
		return "ChoiceA"
	case ActionChoiceB:
		return "ChoiceB"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// DragPhase describes the lifecycle of a drag gesture.
type DragPhase int

const (
	DragNone  DragPhase = iota
	DragBegin           // Press started, anchor recorded
	DragMove            // Pointer moved while held; feeds the aim preview
	DragEnd             // Release; commits a launch
)

// Drag carries the state of an aim gesture for one tick. Vector is the
// pull-back offset from the anchor point in world units. An in-progress
// drag (Begin/Move) only affects the read-only trajectory preview; the
// simulation mutates state only when phase is DragEnd.
type Drag struct {
	Phase  DragPhase
	Vector Vec2
}

// InputFrame represents the input sampled for a single simulation tick:
// discrete actions plus at most one drag event.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	Drag    Drag
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

// SetDrag records the drag gesture for this frame.
func (f *InputFrame) SetDrag(phase DragPhase, vector Vec2) {
	f.Drag = Drag{Phase: phase, Vector: vector}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the drag event for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Drag = Drag{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Drag = f.Drag
	return clone
}
