package paddleball

import (
	"fmt"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/input"
	"github.com/vovakirdan/paddleball/internal/registry"
)

// Variant IDs.
const (
	IDStandard = "paddleball"
	IDClassic  = "paddleball_classic"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config path for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// LoadConfig loads the config for a variant, applying the current
// difficulty preset.
func LoadConfig(id string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, difficultyPreset); err != nil {
		return config.Config{}, err
	}
	if id == IDClassic {
		cfg.Walls.OpenLeft = true
	}
	return cfg, nil
}

// Game adapts the simulation to the registry.Game interface.
type Game struct {
	id      string
	title   string
	physics Physics
	state   State

	viewport core.Size
	started  core.OptTime
	lastNow  float64
}

// New creates a game for the given variant ID.
func New(id string) *Game {
	title := "Paddleball"
	if id == IDClassic {
		title = "Paddleball Classic"
	}
	return &Game{
		id:    id,
		title: title,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration and puts the game back at its initial state.
func (g *Game) Reset(_ core.RuntimeConfig) error {
	cfg, err := LoadConfig(g.id)
	if err != nil {
		return fmt.Errorf("paddleball: %w", err)
	}
	g.ResetWith(NewPhysics(cfg))
	return nil
}

// ResetWith restarts the game with explicit physics.
func (g *Game) ResetWith(p Physics) {
	g.physics = p
	g.state = p.InitialState()
	g.started = core.OptTime{}
	g.lastNow = 0
}

// Physics returns the physics the game is running with.
func (g *Game) Physics() Physics {
	return g.physics
}

// Step advances the game to timestamp now.
func (g *Game) Step(now float64, viewport core.Size, controls input.ControllerState) core.StepResult {
	if !g.started.Valid {
		g.started = core.At(now)
	}

	next, more := g.physics.Advance(now, viewport, controls, g.state)
	if !g.state.GameOver {
		g.lastNow = now
		g.viewport = viewport
	}
	g.state = next

	return core.StepResult{State: g.State(), Continue: more}
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() State {
	return g.state
}

// Frame returns the render payload for the current state.
func (g *Game) Frame() Frame {
	return g.physics.FrameOf(g.state, g.viewport)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	sink := NewScreenSink(dst, g.physics.Config())
	sink.Survived = g.survivedSeconds()
	sink.Draw(g.Frame())
}

// State returns the current game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.survivedSeconds(),
		GameOver: g.state.GameOver,
	}
}

func (g *Game) survivedSeconds() int {
	return int(g.started.Since(g.lastNow) / 1000)
}

// Register both variants with the registry
func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New(IDStandard)
	})
	registry.Register(IDClassic, func() registry.Game {
		return New(IDClassic)
	})
}
