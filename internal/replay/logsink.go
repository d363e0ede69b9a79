package replay

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
)

// LogSink writes frames as structured log lines.
type LogSink struct {
	Logger *log.Logger
	Every  int // log every Nth frame; values below 2 log all of them

	frames int
}

// Draw logs f. Game over frames are always logged.
func (s *LogSink) Draw(f paddleball.Frame) {
	s.frames++
	if !f.GameOver && s.Every > 1 && (s.frames-1)%s.Every != 0 {
		return
	}

	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info("frame",
		"n", s.frames,
		"paddle", [2]int{f.PaddleX, f.PaddleTop},
		"ball", [2]int{f.BallX, f.BallY},
		"game_over", f.GameOver,
	)
}

// Frames returns how many frames the sink has received.
func (s *LogSink) Frames() int {
	return s.frames
}
