package paddleball

import (
	"math"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Frame is what a render sink receives for one tick. Positions are rounded
// to whole world units.
type Frame struct {
	PaddleX   int
	PaddleTop int
	BallX     int
	BallY     int
	GameOver  bool
}

// Sink consumes frames. Implementations draw them to some surface.
type Sink interface {
	Draw(f Frame)
}

// FrameOf builds the render payload for a state.
func (p Physics) FrameOf(s State, viewport core.Size) Frame {
	paddle := p.PaddleRect(s.Paddle, viewport)
	return Frame{
		PaddleX:   int(math.Round(paddle.X)),
		PaddleTop: int(math.Round(s.Paddle.Top)),
		BallX:     int(math.Round(s.Ball.TopLeft.X)),
		BallY:     int(math.Round(s.Ball.TopLeft.Y)),
		GameOver:  s.GameOver,
	}
}
