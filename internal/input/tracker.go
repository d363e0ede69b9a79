// Package input converts a stream of press/release events into cumulative
// key-hold durations per control.
//
// ControllerState is only ever replaced, never mutated in place, so a value
// returned by Tracker.State stays valid while later events are handled.
package input

import (
	"errors"
	"fmt"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Control identifies a tracked input control.
type Control string

const (
	ControlUp   Control = "up"
	ControlDown Control = "down"
)

// EventType is the kind of a raw input event.
type EventType int

const (
	EventUnknown EventType = iota
	EventPress
	EventRelease
)

// String returns the wire name of the event type.
func (t EventType) String() string {
	switch t {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseEventType maps "press" and "release" to their types.
// Anything else yields EventUnknown.
func ParseEventType(s string) EventType {
	switch s {
	case "press":
		return EventPress
	case "release":
		return EventRelease
	default:
		return EventUnknown
	}
}

// Event is a single key transition with the time it happened (ms).
type Event struct {
	Type      EventType
	Control   Control
	Timestamp float64
}

// ErrUnknownEvent is returned by Reduce for events it cannot interpret.
var ErrUnknownEvent = errors.New("unknown event type")

// ButtonState is the timing record of one control.
// KeyDownSince is valid iff the key is currently held. RealizedPressTime
// sums completed press/release cycles only.
type ButtonState struct {
	RealizedPressTime float64
	KeyDownSince      core.OptTime
}

// Held reports whether the key is currently down.
func (b ButtonState) Held() bool {
	return b.KeyDownSince.Valid
}

// TotalAt returns the held time as of now, including an open interval.
func (b ButtonState) TotalAt(now float64) float64 {
	return b.RealizedPressTime + max(0, b.KeyDownSince.Since(now))
}

// ControllerState maps controls to their timing. A missing control is
// equivalent to a zero, never-pressed ButtonState.
type ControllerState map[Control]ButtonState

// Clone returns an independent copy.
func (s ControllerState) Clone() ControllerState {
	if s == nil {
		return ControllerState{}
	}
	return maps.Clone(s)
}

// Reduce applies ev to state and returns the resulting state.
// The input map is never modified.
func Reduce(state ControllerState, ev Event) (ControllerState, error) {
	btn := state[ev.Control]

	switch ev.Type {
	case EventPress:
		if btn.Held() {
			return state, nil // key repeat
		}
		btn.KeyDownSince = core.At(ev.Timestamp)

	case EventRelease:
		if !btn.Held() {
			return state, nil
		}
		// a release stamped before its press counts as zero hold
		btn.RealizedPressTime += max(0, btn.KeyDownSince.Since(ev.Timestamp))
		btn.KeyDownSince = core.OptTime{}

	default:
		return state, fmt.Errorf("input: %w %v for control %q", ErrUnknownEvent, ev.Type, ev.Control)
	}

	next := state.Clone()
	next[ev.Control] = btn
	return next, nil
}

// TotalTimes returns, for every control in state, the cumulative held time
// as of now.
func TotalTimes(now float64, state ControllerState) map[Control]float64 {
	totals := make(map[Control]float64, len(state))
	for c, btn := range state {
		totals[c] = btn.TotalAt(now)
	}
	return totals
}

// Tracker owns a ControllerState and is its only writer.
type Tracker struct {
	state   ControllerState
	tracked map[Control]bool
	logger  *log.Logger
}

// NewTracker creates a tracker for the given controls. With no controls,
// up and down are tracked. A nil logger uses log.Default().
func NewTracker(logger *log.Logger, controls ...Control) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	if len(controls) == 0 {
		controls = []Control{ControlUp, ControlDown}
	}
	tracked := make(map[Control]bool, len(controls))
	for _, c := range controls {
		tracked[c] = true
	}
	return &Tracker{
		state:   ControllerState{},
		tracked: tracked,
		logger:  logger,
	}
}

// Handle feeds one event into the tracker. Events for untracked controls
// are dropped; malformed events are logged and leave the state unchanged.
func (t *Tracker) Handle(ev Event) {
	if !t.tracked[ev.Control] {
		t.logger.Debug("ignoring untracked control", "control", ev.Control, "type", ev.Type)
		return
	}

	next, err := Reduce(t.state, ev)
	if err != nil {
		t.logger.Error("dropping input event", "err", err, "timestamp", ev.Timestamp)
		return
	}
	t.state = next
}

// State returns the current controller state. Callers must not modify it.
func (t *Tracker) State() ControllerState {
	return t.state
}

// Reset forgets all accumulated timing.
func (t *Tracker) Reset() {
	t.state = ControllerState{}
}
