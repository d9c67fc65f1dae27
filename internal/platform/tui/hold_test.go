package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-anglers/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	h.Press(core.ActionUp, t0)

	h.Apply(&frame, t0.Add(100*time.Millisecond))
	if !frame.IsHeld(core.ActionUp) {
		t.Fatal("up should be held inside the window")
	}

	h.Apply(&frame, t0.Add(150*time.Millisecond))
	if frame.IsHeld(core.ActionUp) {
		t.Error("up should be released once the window has passed")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionDown, t0.Add(100*time.Millisecond))

	h.Apply(&frame, t0.Add(200*time.Millisecond))
	if !frame.IsHeld(core.ActionDown) {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionDown, t0.Add(10*time.Millisecond))
	h.Apply(&frame, t0.Add(20*time.Millisecond))

	if frame.IsHeld(core.ActionUp) {
		t.Error("pressing down should release up")
	}
	if !frame.IsHeld(core.ActionDown) {
		t.Error("down should be held")
	}
}

func TestHoldTrackerIgnoresNonMovement(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	h.Press(core.ActionFire, t0)
	h.Apply(&frame, t0)

	if len(frame.Held) != 0 {
		t.Errorf("held = %v, want nothing", frame.Held)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	h.Press(core.ActionUp, t0)
	h.Reset()
	h.Apply(&frame, t0)

	if frame.IsHeld(core.ActionUp) {
		t.Error("reset should forget presses")
	}
}

func TestHoldTrackerDefaultCoversRepeatDelay(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()

	// Typical terminal: first repeat arrives 450ms after the press, then every 33ms.
	h.Press(core.ActionUp, t0)
	for _, ms := range []int{16, 200, 440} {
		h.Apply(&frame, t0.Add(time.Duration(ms)*time.Millisecond))
		if !frame.IsHeld(core.ActionUp) {
			t.Fatalf("up released at %dms, before auto-repeat starts", ms)
		}
	}
	h.Press(core.ActionUp, t0.Add(450*time.Millisecond))
	h.Apply(&frame, t0.Add(483*time.Millisecond))
	if !frame.IsHeld(core.ActionUp) {
		t.Error("up should stay held once auto-repeat starts")
	}

	h.Apply(&frame, t0.Add(450*time.Millisecond+DefaultHoldWindow))
	if frame.IsHeld(core.ActionUp) {
		t.Error("up should be released after the default window without repeats")
	}
}
