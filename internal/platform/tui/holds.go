package tui

import (
	"time"

	"github.com/vovakirdan/site-arcade/internal/core"
)

// HoldTracker emulates key release for terminals, which only report presses.
// A direction counts as held while its key keeps auto-repeating; once no
// repeat arrives within the hold window it is released.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// holdable lists the actions tracked, in release order.
var holdable = []core.Action{core.ActionLeft, core.ActionRight}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time, len(holdable)),
	}
}

// Press records a key press or repeat at now and returns the events to
// deliver. Pressing one direction releases the opposite one immediately.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.InputEvent {
	var events []core.InputEvent
	if opp := opposite(a); opp != core.ActionNone {
		if _, held := h.until[opp]; held {
			delete(h.until, opp)
			events = append(events, core.Release(opp))
		}
	}
	h.until[a] = now.Add(h.window)
	// Repeats are forwarded too, the game may have dropped the first press
	return append(events, core.Press(a))
}

// Expire releases every action whose window has passed.
func (h *HoldTracker) Expire(now time.Time) []core.InputEvent {
	var events []core.InputEvent
	for _, a := range holdable {
		if until, held := h.until[a]; held && !now.Before(until) {
			delete(h.until, a)
			events = append(events, core.Release(a))
		}
	}
	return events
}

// Held reports whether the action is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, held := h.until[a]
	return held
}

// Clear forgets all held actions without producing events.
func (h *HoldTracker) Clear() {
	clear(h.until)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
