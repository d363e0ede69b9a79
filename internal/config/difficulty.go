package config

import (
	"errors"
	"fmt"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned for preset names that are not recognized.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// SpeedMultiplierForPreset returns the ball velocity multiplier for a preset.
func SpeedMultiplierForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 0.75, nil
	case DifficultyNormal, "":
		return 1.0, nil
	case DifficultyHard:
		return 1.5, nil
	default:
		return 0, fmt.Errorf("config: %w %q", ErrUnknownPreset, preset)
	}
}

// ApplyPreset scales the ball's initial velocity for the given preset.
// Velocity never changes during play, so the preset is applied once.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	mult, err := SpeedMultiplierForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Ball.Velocity.X *= mult
	cfg.Ball.Velocity.Y *= mult
	return nil
}
