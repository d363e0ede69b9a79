package replay

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/input"
)

// Result summarizes a finished replay.
type Result struct {
	Ticks   int
	Final   paddleball.State
	EndedAt float64 // timestamp of the last tick, ms
}

// Run plays a script against physics. Ticks happen at 0, frame_ms, 2*frame_ms
// and so on until duration_ms or game over. Events stamped at or before a
// tick are handled before that tick samples the controller state.
//
// A nil sink skips drawing. Cancelling ctx stops the run between ticks and
// returns the partial result with the context error.
func Run(ctx context.Context, s Script, physics paddleball.Physics, sink paddleball.Sink, logger *log.Logger) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	events := sortedEvents(s.Events)
	tracker := input.NewTracker(logger)
	viewport := s.Size()
	state := physics.InitialState()

	var res Result
	next := 0
	for i := 0; ; i++ {
		now := float64(i) * s.FrameMs
		if now > s.DurationMs {
			break
		}
		if err := ctx.Err(); err != nil {
			res.Final = state
			return res, fmt.Errorf("replay: stopped after %d ticks: %w", res.Ticks, err)
		}

		for next < len(events) && events[next].At <= now {
			tracker.Handle(events[next].Event())
			next++
		}

		var more bool
		state, more = physics.Advance(now, viewport, tracker.State(), state)
		res.Ticks++
		res.EndedAt = now

		if sink != nil {
			sink.Draw(physics.FrameOf(state, viewport))
		}
		if !more {
			logger.Info("game over", "at", now, "ticks", res.Ticks)
			break
		}
	}

	res.Final = state
	return res, nil
}
