package paddleball

import (
	"math"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/input"
)

// PaddleState is the paddle's vertical position plus the per-control hold
// totals already turned into movement.
type PaddleState struct {
	Top     float64
	Applied map[input.Control]float64
}

// UpdatePaddle moves the paddle by the key-hold time accumulated since the
// previous frame. Down moves toward larger Y, up toward smaller; holding both
// cancels out. The result is clamped to the viewport.
func (p Physics) UpdatePaddle(now float64, viewport core.Size, controls input.ControllerState, s PaddleState) PaddleState {
	current := input.TotalTimes(now, controls)

	diff := (current[input.ControlDown] - s.Applied[input.ControlDown]) -
		(current[input.ControlUp] - s.Applied[input.ControlUp])

	maxTop := math.Max(0, viewport.H-p.cfg.Paddle.Height)
	top := core.ClampF(s.Top+diff*p.cfg.Paddle.Speed, 0, maxTop)

	return PaddleState{
		Top:     top,
		Applied: current,
	}
}
