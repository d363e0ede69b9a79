package tui

import (
	"slices"

	"github.com/vovakirdan/paddleball/internal/input"
)

// heldKey is the sighting record of one held control.
type heldKey struct {
	lastSeen  float64
	repeating bool // at least one auto-repeat has arrived
}

// HoldAdapter turns terminal key presses into press/release pairs.
//
// Terminals report key repeats but never key-ups. A control is pressed on
// its first sighting. Until the first repeat arrives it is held for
// initialDelay milliseconds, covering the terminal's auto-repeat delay;
// after that it is released once no repeat has been seen for releaseAfter
// milliseconds. The release is stamped with the time it is detected, which
// keeps hold totals monotonic across ticks.
type HoldAdapter struct {
	initialDelay float64
	releaseAfter float64
	keys         map[input.Control]heldKey
}

// NewHoldAdapter creates an adapter with the given delays in ms.
func NewHoldAdapter(initialDelayMs, releaseAfterMs float64) *HoldAdapter {
	return &HoldAdapter{
		initialDelay: initialDelayMs,
		releaseAfter: releaseAfterMs,
		keys:         make(map[input.Control]heldKey),
	}
}

// Press records a sighting of c at now. It returns a press event when c
// was not already held, and nothing for repeats.
func (h *HoldAdapter) Press(c input.Control, now float64) []input.Event {
	if _, held := h.keys[c]; held {
		h.keys[c] = heldKey{lastSeen: now, repeating: true}
		return nil
	}
	h.keys[c] = heldKey{lastSeen: now}
	return []input.Event{{Type: input.EventPress, Control: c, Timestamp: now}}
}

// window returns how long k may go unseen before it is released.
func (h *HoldAdapter) window(k heldKey) float64 {
	if k.repeating {
		return h.releaseAfter
	}
	return max(h.initialDelay, h.releaseAfter)
}

// Expire releases every control that has gone unseen for longer than its
// window. Events are ordered by control name.
func (h *HoldAdapter) Expire(now float64) []input.Event {
	var expired []input.Control
	for c, k := range h.keys {
		if now-k.lastSeen >= h.window(k) {
			expired = append(expired, c)
		}
	}
	slices.Sort(expired)

	events := make([]input.Event, 0, len(expired))
	for _, c := range expired {
		delete(h.keys, c)
		events = append(events, input.Event{Type: input.EventRelease, Control: c, Timestamp: now})
	}
	return events
}

// Held reports whether c is currently considered down.
func (h *HoldAdapter) Held(c input.Control) bool {
	_, ok := h.keys[c]
	return ok
}

// Reset forgets all held controls without emitting releases.
func (h *HoldAdapter) Reset() {
	clear(h.keys)
}
