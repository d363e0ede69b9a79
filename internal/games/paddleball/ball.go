package paddleball

import (
	"math"

	"github.com/vovakirdan/paddleball/internal/core"
)

// BallState is the ball's position, velocity and the time it was last moved.
// LastUpdate is absent only before the first frame.
type BallState struct {
	TopLeft    Point
	Velocity   Velocity
	LastUpdate core.OptTime
}

// UpdateBall moves the ball to timestamp now, reflecting off viewport edges.
//
// Edges are tested against where the ball would be after this step, and an
// axis only flips while moving toward the edge it would cross. Velocity
// magnitudes never change.
func (p Physics) UpdateBall(now float64, viewport core.Size, b BallState) BallState {
	dt := math.Max(0, b.LastUpdate.Since(now))
	r := p.BallRect(b)
	v := b.Velocity

	flipX := r.Right()+v.X*dt > viewport.W && v.X > 0
	if !p.cfg.Walls.OpenLeft {
		flipX = flipX || (r.X+v.X*dt < 0 && v.X < 0)
	}
	flipY := (r.Bottom()+v.Y*dt > viewport.H && v.Y > 0) ||
		(r.Y+v.Y*dt < 0 && v.Y < 0)

	if flipX {
		v.X = -v.X
	}
	if flipY {
		v.Y = -v.Y
	}

	return BallState{
		TopLeft: Point{
			X: b.TopLeft.X + v.X*dt,
			Y: b.TopLeft.Y + v.Y*dt,
		},
		Velocity:   v,
		LastUpdate: core.At(now),
	}
}

// ForceDirection points the ball's horizontal velocity in direction dir
// (positive is rightward) without changing its magnitude. A ball already
// moving that way is returned unchanged.
func ForceDirection(dir float64, b BallState) BallState {
	switch {
	case dir > 0:
		b.Velocity.X = math.Max(b.Velocity.X, -b.Velocity.X)
	case dir < 0:
		b.Velocity.X = math.Min(b.Velocity.X, -b.Velocity.X)
	}
	return b
}
