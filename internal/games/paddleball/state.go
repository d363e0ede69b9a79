package paddleball

import (
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/input"
)

// State is the full simulation state for one frame.
// GameOver is derived by DetectGameOver and is terminal.
type State struct {
	Paddle   PaddleState
	Ball     BallState
	GameOver bool
}

// DetectCollision bounces the ball away from the paddle when they overlap.
func (p Physics) DetectCollision(s State, viewport core.Size) State {
	if core.Collide(p.PaddleRect(s.Paddle, viewport), p.BallRect(s.Ball)) {
		s.Ball = ForceDirection(p.paddleDirection(), s.Ball)
	}
	return s
}

// DetectGameOver ends the game once the ball no longer overlaps the viewport.
func (p Physics) DetectGameOver(s State, viewport core.Size) State {
	s.GameOver = !core.Collide(viewport.Rect(), p.BallRect(s.Ball))
	return s
}

// Advance computes the state for timestamp now. It reports false when no
// further frames should be requested. A finished game is returned unchanged.
func (p Physics) Advance(now float64, viewport core.Size, controls input.ControllerState, prev State) (State, bool) {
	if prev.GameOver {
		return prev, false
	}

	next := State{
		Paddle: p.UpdatePaddle(now, viewport, controls, prev.Paddle),
		Ball:   p.UpdateBall(now, viewport, prev.Ball),
	}
	next = p.DetectCollision(next, viewport)
	next = p.DetectGameOver(next, viewport)

	return next, !next.GameOver
}
