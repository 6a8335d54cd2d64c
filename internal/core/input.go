package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionSubmit         // Enter - play the composed word
	ActionClear          // Backspace - clear the composed word
	ActionShuffle        // Tab - rearrange tiles
	ActionDiscard        // Ctrl+D - trade tiles for a fresh draw
	ActionConfirm        // Enter on an interstitial screen - continue / play again
	ActionBack           // Esc - go back to menu
	ActionQuit           // Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionClear:
		return "Clear"
	case ActionShuffle:
		return "Shuffle"
	case ActionDiscard:
		return "Discard"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents everything the player did during one simulation tick:
// triggered actions, typed letters (in order) and pointer clicks (in order).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Letters holds typed letters in the order they arrived.
	Letters []rune

	// Clicks holds left-button presses in screen coordinates.
	Clicks []Point
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

// Type records a typed letter.
func (f *InputFrame) Type(r rune) {
	f.Letters = append(f.Letters, r)
}

// Click records a pointer press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Letters) == 0 && len(f.Clicks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Letters = f.Letters[:0]
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Letters = append([]rune(nil), f.Letters...)
	clone.Clicks = append([]Point(nil), f.Clicks...)
	return clone
}
