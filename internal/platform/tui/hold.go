package tui

import (
	"time"

	"github.com/vovakirdan/tui-anglers/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press or auto-repeat. It covers the usual 250-500ms terminal delay before
// auto-repeat starts.
const DefaultHoldWindow = 500 * time.Millisecond

// HoldTracker turns key presses into held movement keys. Terminals report
// presses and auto-repeats but never releases, so a key is considered held
// until no repeat has arrived for the hold window.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press of a movement key. Up and down are exclusive: pressing
// one releases the other.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionUp:
		delete(h.last, core.ActionDown)
	case core.ActionDown:
		delete(h.last, core.ActionUp)
	default:
		return
	}
	h.last[a] = now
}

// Apply updates the held set of frame as of now.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range [...]core.Action{core.ActionUp, core.ActionDown} {
		at, ok := h.last[a]
		if ok && now.Sub(at) < h.window {
			frame.Hold(a)
			continue
		}
		delete(h.last, a)
		frame.Release(a)
	}
}

// Reset forgets every press.
func (h *HoldTracker) Reset() {
	for a := range h.last {
		delete(h.last, a)
	}
}
