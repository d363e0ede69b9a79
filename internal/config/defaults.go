package config

import (
	_ "embed"
)

//go:embed defaults/paddleball.yaml
var defaultYAML []byte

// DefaultConfig returns the default paddleball configuration.
func DefaultConfig() Config {
	return Config{
		Ball: BallConfig{
			Width:    25,
			Height:   25,
			Start:    Vec{X: 0, Y: 0},
			Velocity: Vec{X: 0.3, Y: 0.1},
		},
		Paddle: PaddleConfig{
			Width:  15,
			Height: 75,
			Speed:  0.5,
			Side:   SideLeft,
		},
		Walls: Walls{
			OpenLeft: false,
		},
		Input: InputConfig{
			InitialRepeatMs: 600,
			ReleaseAfterMs:  150,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
