// Package paddleball implements a single-paddle ball game driven by wall-clock
// time: the ball moves at a constant speed per millisecond and the paddle moves
// by how long the up/down keys have been held.
//
// Every update function takes a sub-state by value and returns a new one.
// Only Game keeps state between frames.
package paddleball

import (
	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Velocity is a per-axis speed in units/ms. The sign encodes direction.
type Velocity struct {
	X, Y float64
}

// Physics holds the fixed body sizes, speeds and wall rules of a session.
type Physics struct {
	cfg config.Config
}

// NewPhysics creates physics from a validated config.
func NewPhysics(cfg config.Config) Physics {
	return Physics{cfg: cfg}
}

// Config returns the configuration the physics was built from.
func (p Physics) Config() config.Config {
	return p.cfg
}

// InitialState returns the state before the first frame.
func (p Physics) InitialState() State {
	return State{
		Paddle: PaddleState{},
		Ball: BallState{
			TopLeft:  Point{X: p.cfg.Ball.Start.X, Y: p.cfg.Ball.Start.Y},
			Velocity: Velocity{X: p.cfg.Ball.Velocity.X, Y: p.cfg.Ball.Velocity.Y},
		},
	}
}

// paddleDirection is the horizontal direction pointing away from the paddle.
func (p Physics) paddleDirection() float64 {
	if p.cfg.Paddle.Side == config.SideRight {
		return -1
	}
	return 1
}

// PaddleRect returns the paddle's bounding box in the given viewport.
func (p Physics) PaddleRect(s PaddleState, viewport core.Size) core.Rect {
	x := 0.0
	if p.cfg.Paddle.Side == config.SideRight {
		x = viewport.W - p.cfg.Paddle.Width
	}
	return core.NewRect(x, s.Top, p.cfg.Paddle.Width, p.cfg.Paddle.Height)
}

// BallRect returns the ball's bounding box.
func (p Physics) BallRect(b BallState) core.Rect {
	return core.NewRect(b.TopLeft.X, b.TopLeft.Y, p.cfg.Ball.Width, p.cfg.Ball.Height)
}
