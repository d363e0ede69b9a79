// Package registry maps variant IDs such as "paddleball" and
// "paddleball_classic" to factories. Variants register from init(), and the
// CLI's play, list and replay commands look them up by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/input"
)

// Game is a playable variant as the terminal platform drives it.
// The platform owns the clock, the key-hold tracker and the viewport; a Game
// only turns (timestamp, viewport, controller state) into its next frame.
type Game interface {
	// ID returns the variant ID used on the command line.
	ID() string

	// Title is the name shown by `paddle list`.
	Title() string

	// Reset reloads the variant's config and puts the ball and paddle back
	// at their start. Called before the first tick and on restart after
	// game over.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation to timestamp now (milliseconds),
	// sampling the viewport and controller state for this frame. Once the
	// result's Continue is false, further steps return the same state.
	Step(now float64, viewport core.Size, controls input.ControllerState) core.StepResult

	// Render draws the paddle and ball, or the game over box, into dst.
	Render(dst *core.Screen)

	// State returns the seconds survived and whether the game is over.
	State() core.GameState
}

// GameInfo is one row of `paddle list`.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new variant instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory. The factory is called once here to read
// the title. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a fresh, not yet Reset, instance of variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id names a registered variant.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
