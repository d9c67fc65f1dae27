package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up (held)
	ActionDown           // S, Down arrow - move down (held)
	ActionFire           // Space - fire the top cannon (one-shot)
	ActionDebug          // D - toggle debug overlay (one-shot)
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
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
	case ActionFire:
		return "Fire"
	case ActionDebug:
		return "Debug"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the sampled input for one simulation tick.
//
// Held carries level-triggered movement keys that stay set across ticks until
// released. Actions carries one-shot events (fire, debug toggle, pause) that are
// consumed by exactly one tick and then cleared.
type InputFrame struct {
	Held    map[Action]bool
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Actions: make(map[Action]bool),
	}
}

// Hold marks a movement key as held. Holding an already held key has no effect.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Release clears a held movement key.
func (f *InputFrame) Release(a Action) {
	delete(f.Held, a)
}

// IsHeld returns true if the movement key is currently held.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Set marks a one-shot action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given one-shot action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear drops the one-shot actions for the next frame. Held keys survive.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Bits packs the frame into two bitmasks (held, actions), one bit per Action.
func (f InputFrame) Bits() (held, actions uint32) {
	for a, on := range f.Held {
		if on {
			held |= 1 << uint(a)
		}
	}
	for a, on := range f.Actions {
		if on {
			actions |= 1 << uint(a)
		}
	}
	return held, actions
}

// InputFrameFromBits rebuilds a frame packed with Bits.
func InputFrameFromBits(held, actions uint32) InputFrame {
	f := NewInputFrame()
	for a := ActionNone + 1; a <= ActionQuit; a++ {
		if held&(1<<uint(a)) != 0 {
			f.Hold(a)
		}
		if actions&(1<<uint(a)) != 0 {
			f.Set(a)
		}
	}
	return f
}
