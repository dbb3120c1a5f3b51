package core

// Action represents a semantic game intent, abstracted from physical keys,
// buttons or mouse presses. The simulation never sees raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Any key or click before the first run
	ActionJump              // Space, W
	ActionDuckBegin         // Down, S
	ActionDuckEnd           // Up
	ActionBuyPowerUp        // B, left click
	ActionRestart           // Any key after game over
	ActionPause             // P, Esc
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionDuckBegin:
		return "DuckBegin"
	case ActionDuckEnd:
		return "DuckEnd"
	case ActionBuyPowerUp:
		return "BuyPowerUp"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame queues the intents delivered between two simulation ticks.
// Actions keep their arrival order so that, for example, a duck followed by
// a stand within one frame ends standing.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, queued := range f.Actions {
		if queued == a {
			return true
		}
	}
	return false
}

// Empty reports whether no actions are queued.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
