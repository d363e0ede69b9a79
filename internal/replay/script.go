// Package replay runs the simulation headlessly from a scripted list of
// timestamped input events.
package replay

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/input"
)

// ErrInvalidScript wraps every script validation problem.
var ErrInvalidScript = errors.New("invalid replay script")

// Viewport is the scripted viewport size in world units.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScriptEvent is one scripted key transition.
type ScriptEvent struct {
	At      float64 `yaml:"at"`
	Type    string  `yaml:"type"`
	Control string  `yaml:"control"`
}

// Event converts the scripted entry to a tracker event. Unrecognized types
// become input.EventUnknown and are rejected by the tracker.
func (e ScriptEvent) Event() input.Event {
	return input.Event{
		Type:      input.ParseEventType(e.Type),
		Control:   input.Control(e.Control),
		Timestamp: e.At,
	}
}

// Script describes a replay: a fixed viewport, a frame interval, a run
// length and the input to feed.
type Script struct {
	Viewport   Viewport      `yaml:"viewport"`
	FrameMs    float64       `yaml:"frame_ms"`
	DurationMs float64       `yaml:"duration_ms"`
	Events     []ScriptEvent `yaml:"events"`
}

// Size returns the viewport as a core.Size.
func (s Script) Size() core.Size {
	return core.Size{W: s.Viewport.Width, H: s.Viewport.Height}
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script. Events are sorted by time, keeping
// the file order for equal timestamps.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	s.Events = sortedEvents(s.Events)
	return s, nil
}

// sortedEvents returns a copy of events ordered by time, keeping the given
// order for equal timestamps.
func sortedEvents(events []ScriptEvent) []ScriptEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b ScriptEvent) int {
		return cmp.Compare(a.At, b.At)
	})
	return sorted
}

// Validate reports every problem with the script at once.
func (s Script) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScript}, args...)...))
	}
	bad := func(v float64) bool {
		return math.IsNaN(v) || math.IsInf(v, 0) || v < 0
	}

	if bad(s.Viewport.Width) || bad(s.Viewport.Height) {
		add("viewport must be non-negative, got %vx%v", s.Viewport.Width, s.Viewport.Height)
	}
	if bad(s.FrameMs) || s.FrameMs == 0 {
		add("frame_ms must be positive, got %v", s.FrameMs)
	}
	if bad(s.DurationMs) {
		add("duration_ms must be non-negative, got %v", s.DurationMs)
	}
	for i, ev := range s.Events {
		if bad(ev.At) {
			add("events[%d].at must be non-negative, got %v", i, ev.At)
		}
		if ev.Control == "" {
			add("events[%d].control is empty", i)
		}
	}
	return errors.Join(errs...)
}
