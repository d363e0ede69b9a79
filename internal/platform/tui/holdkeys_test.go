package tui

import (
	"testing"

	"github.com/vovakirdan/paddleball/internal/input"
)

func TestHoldAdapterPressAndRepeat(t *testing.T) {
	h := NewHoldAdapter(600, 150)

	evs := h.Press(input.ControlUp, 10)
	if len(evs) != 1 || evs[0].Type != input.EventPress || evs[0].Timestamp != 10 {
		t.Fatalf("first press = %+v, expected one press at 10", evs)
	}

	// repeats extend the hold without new events
	for _, now := range []float64{40, 70, 100} {
		if evs := h.Press(input.ControlUp, now); len(evs) != 0 {
			t.Errorf("repeat at %v produced %+v", now, evs)
		}
	}

	if evs := h.Expire(200); len(evs) != 0 {
		t.Errorf("Expire(200) = %+v, last repeat was 100ms ago", evs)
	}
	if !h.Held(input.ControlUp) {
		t.Error("up should still be held")
	}
}

func TestHoldAdapterWaitsForFirstRepeat(t *testing.T) {
	h := NewHoldAdapter(600, 150)
	h.Press(input.ControlUp, 0)

	if evs := h.Expire(599); len(evs) != 0 {
		t.Errorf("Expire(599) = %+v, key should survive the auto-repeat delay", evs)
	}
	evs := h.Expire(600)
	if len(evs) != 1 || evs[0].Type != input.EventRelease || evs[0].Timestamp != 600 {
		t.Errorf("Expire(600) = %+v, expected release stamped at 600", evs)
	}
}

func TestHoldAdapterExpire(t *testing.T) {
	h := NewHoldAdapter(600, 150)
	h.Press(input.ControlUp, 0)
	h.Press(input.ControlUp, 500) // repeating from here on
	h.Press(input.ControlDown, 100)

	evs := h.Expire(660)
	if len(evs) != 1 || evs[0].Control != input.ControlUp {
		t.Fatalf("Expire(660) = %+v, expected only up", evs)
	}
	if evs[0].Type != input.EventRelease || evs[0].Timestamp != 660 {
		t.Errorf("release = %+v, expected release stamped at 660", evs[0])
	}
	if h.Held(input.ControlUp) {
		t.Error("up should be released")
	}
	if !h.Held(input.ControlDown) {
		t.Error("down has not repeated yet and should still be held")
	}

	// a new sighting after release presses again
	if evs := h.Press(input.ControlUp, 670); len(evs) != 1 {
		t.Errorf("press after release = %+v", evs)
	}
}

func TestHoldAdapterExpireOrder(t *testing.T) {
	h := NewHoldAdapter(10, 10)
	h.Press(input.ControlUp, 0)
	h.Press(input.ControlDown, 0)

	evs := h.Expire(50)
	if len(evs) != 2 || evs[0].Control != input.ControlDown || evs[1].Control != input.ControlUp {
		t.Errorf("Expire() = %+v, expected down then up", evs)
	}
}

// A key held 0..1000ms on a terminal with a 500ms auto-repeat delay and a
// 33ms repeat rate, sampled every 16ms.
func TestHoldAdapterTracksLongHold(t *testing.T) {
	const (
		holdEnd     = 1000.0
		repeatDelay = 500.0
		repeatRate  = 33.0
		tickMs      = 16.0
	)

	h := NewHoldAdapter(600, 150)
	tr := input.NewTracker(nil)
	feed := func(evs []input.Event) {
		for _, ev := range evs {
			tr.Handle(ev)
		}
	}

	sightings := []float64{0}
	for at := repeatDelay; at <= holdEnd; at += repeatRate {
		sightings = append(sightings, at)
	}

	next := 0
	releasedAt := -1.0
	for now := 0.0; now <= 1400; now += tickMs {
		for next < len(sightings) && sightings[next] <= now {
			feed(h.Press(input.ControlDown, sightings[next]))
			next++
		}
		for _, ev := range h.Expire(now) {
			if ev.Type == input.EventRelease && releasedAt < 0 {
				releasedAt = ev.Timestamp
			}
			tr.Handle(ev)
		}
	}

	if releasedAt < holdEnd {
		t.Fatalf("key released early at %v, held until %v", releasedAt, holdEnd)
	}
	total := input.TotalTimes(1400, tr.State())[input.ControlDown]
	if total < holdEnd || total > holdEnd+150+tickMs {
		t.Errorf("tracked hold = %v, expected within [%v, %v]", total, holdEnd, holdEnd+150+tickMs)
	}
	if got := tr.State()[input.ControlDown].RealizedPressTime; got != total {
		t.Errorf("expected a single press/release cycle, realized %v of %v", got, total)
	}
}

func TestHoldAdapterFeedsMonotonicTotals(t *testing.T) {
	h := NewHoldAdapter(600, 150)
	tr := input.NewTracker(nil)

	feed := func(evs []input.Event) {
		for _, ev := range evs {
			tr.Handle(ev)
		}
	}

	feed(h.Press(input.ControlDown, 0))
	prev := 0.0
	for now := 0.0; now <= 800; now += 16 {
		feed(h.Expire(now))
		total := input.TotalTimes(now, tr.State())[input.ControlDown]
		if total < prev {
			t.Fatalf("total went backwards at %v: %v < %v", now, total, prev)
		}
		prev = total
	}
	if tr.State()[input.ControlDown].Held() {
		t.Error("down should have been released")
	}
}

func TestHoldAdapterReset(t *testing.T) {
	h := NewHoldAdapter(600, 150)
	h.Press(input.ControlUp, 0)
	h.Reset()

	if h.Held(input.ControlUp) {
		t.Error("Reset() should forget held controls")
	}
	if evs := h.Expire(1000); len(evs) != 0 {
		t.Errorf("Expire() after Reset() = %+v", evs)
	}
}
