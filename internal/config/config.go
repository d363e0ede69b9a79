// Package config provides YAML-based game configuration loading and
// difficulty presets for paddleball.
package config

// Config contains all configuration for a paddleball session.
type Config struct {
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Walls  Walls        `yaml:"walls"`
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
}

// Vec is a pair of world-space values.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BallConfig defines the ball's fixed size and initial motion.
type BallConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Start    Vec     `yaml:"start"`
	Velocity Vec     `yaml:"velocity"` // units/ms
}

// Side is the viewport edge the paddle is attached to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// PaddleConfig defines the paddle's size and speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // units per ms of key hold
	Side   Side    `yaml:"side"`
}

// Walls selects which viewport edges reflect the ball.
type Walls struct {
	OpenLeft bool `yaml:"open_left"`
}

// InputConfig tunes the terminal key-hold adapter.
// InitialRepeatMs covers the pause before a terminal starts auto-repeating
// a held key; ReleaseAfterMs applies once repeats are arriving.
type InputConfig struct {
	InitialRepeatMs float64 `yaml:"initial_repeat_ms"`
	ReleaseAfterMs  float64 `yaml:"release_after_ms"`
}

// RenderConfig maps world units onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}
