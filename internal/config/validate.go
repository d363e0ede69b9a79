package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid wraps every validation problem.
var ErrInvalid = errors.New("invalid config")

// Validate checks a config for values the simulation cannot work with.
// All problems are reported together.
func Validate(cfg Config) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			add("%s must be positive, got %v", name, v)
		}
	}
	finite := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			add("%s must be finite, got %v", name, v)
		}
	}

	positive("ball.width", cfg.Ball.Width)
	positive("ball.height", cfg.Ball.Height)
	finite("ball.start.x", cfg.Ball.Start.X)
	finite("ball.start.y", cfg.Ball.Start.Y)
	finite("ball.velocity.x", cfg.Ball.Velocity.X)
	finite("ball.velocity.y", cfg.Ball.Velocity.Y)

	positive("paddle.width", cfg.Paddle.Width)
	positive("paddle.height", cfg.Paddle.Height)
	finite("paddle.speed", cfg.Paddle.Speed)
	if cfg.Paddle.Speed < 0 {
		add("paddle.speed must not be negative, got %v", cfg.Paddle.Speed)
	}
	if cfg.Paddle.Side != SideLeft && cfg.Paddle.Side != SideRight {
		add("paddle.side must be %q or %q, got %q", SideLeft, SideRight, cfg.Paddle.Side)
	}

	positive("input.initial_repeat_ms", cfg.Input.InitialRepeatMs)
	positive("input.release_after_ms", cfg.Input.ReleaseAfterMs)
	positive("render.cell_width", cfg.Render.CellWidth)
	positive("render.cell_height", cfg.Render.CellHeight)

	return errors.Join(errs...)
}
