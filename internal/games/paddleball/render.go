package paddleball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// ScreenSink draws frames into a terminal screen buffer, scaling world
// units down to cells.
type ScreenSink struct {
	dst      *core.Screen
	cfg      config.Config
	Survived int // seconds, shown on the game over box
}

// NewScreenSink creates a sink drawing into dst.
func NewScreenSink(dst *core.Screen, cfg config.Config) *ScreenSink {
	return &ScreenSink{dst: dst, cfg: cfg}
}

// Draw renders one frame.
func (s *ScreenSink) Draw(f Frame) {
	s.dst.Clear()

	if f.GameOver {
		s.drawCenteredMessage("Game Over!", fmt.Sprintf("Survived %ds  |  R restart  |  Q quit", s.Survived))
		return
	}

	cw, ch := s.cfg.Render.CellWidth, s.cfg.Render.CellHeight

	px, pw := span(float64(f.PaddleX), s.cfg.Paddle.Width, cw)
	py, ph := span(float64(f.PaddleTop), s.cfg.Paddle.Height, ch)
	s.dst.FillRect(px, py, pw, ph, PaddleChar, core.ColorBlue)

	bx, bw := span(float64(f.BallX), s.cfg.Ball.Width, cw)
	by, bh := span(float64(f.BallY), s.cfg.Ball.Height, ch)
	s.dst.FillRect(bx, by, bw, bh, BallChar, core.ColorRed)
}

// span converts a world-space interval to a cell start and a cell count of
// at least one.
func span(pos, size, unit float64) (int, int) {
	start := int(math.Floor(pos / unit))
	end := int(math.Ceil((pos + size) / unit))
	return start, max(1, end-start)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *ScreenSink) drawCenteredMessage(title, subtitle string) {
	w := s.dst.Width()
	h := s.dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	s.dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	s.dst.DrawBox(boxX, boxY, boxW, boxH)

	s.dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	s.dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
