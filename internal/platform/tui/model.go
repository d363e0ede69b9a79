package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/input"
	"github.com/vovakirdan/paddleball/internal/registry"
)

// footerRows is the number of terminal rows kept for the status line.
const footerRows = 1

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Input   config.InputConfig
	Render  config.RenderConfig
	Logger  *log.Logger
	Clock   func() time.Time // defaults to time.Now
}

// Model is the Bubble Tea model for a running game.
//
// All key and tick messages pass through Update one at a time, so the
// tracker and game are only touched from a single goroutine.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	render   config.RenderConfig
	tracker  *input.Tracker
	holds    *HoldAdapter
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	clock    func() time.Time
	start    time.Time
	viewport core.Size

	gameState core.GameState
	ticking   bool // a TickMsg is in flight
	quitting  bool
}

// NewModel creates a model for a game that has already been Reset.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(0, 0),
		config:  opts.Runtime,
		render:  opts.Render,
		tracker: input.NewTracker(opts.Logger),
		holds:   NewHoldAdapter(opts.Input.InitialRepeatMs, opts.Input.ReleaseAfterMs),
		keys:    NewKeyMapper(),
		help:    help.New(),
		logger:  opts.Logger,
		clock:   opts.Clock,
		start:   opts.Clock(),
		ticking: true,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if action != core.ActionNone {
		m.logger.Debug("key", "key", msg.String(), "action", action.String())
	}
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionRestart {
		if !m.gameState.GameOver {
			return m, nil
		}
		return m.restart()
	}

	if c, ok := ControlFor(action); ok {
		for _, ev := range m.holds.Press(c, m.nowMs()) {
			m.tracker.Handle(ev)
		}
	}
	return m, nil
}

// handleTick runs one simulation step. No further tick is scheduled once
// the game reports it is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.nowMs()
	for _, ev := range m.holds.Expire(now) {
		m.tracker.Handle(ev)
	}

	result := m.game.Step(now, m.viewport, m.tracker.State())
	m.gameState = result.State

	if !result.Continue {
		m.ticking = false
		m.logger.Info("game over", "game", m.game.ID(), "survived", result.State.Score)
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// restart resets the game and input, then resumes ticking.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "game", m.game.ID(), "err", err)
		return m, nil
	}
	m.tracker.Reset()
	m.holds.Reset()
	m.gameState = m.game.State()
	m.logger.Info("restart", "game", m.game.ID())

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// resize fits the screen to the terminal and recomputes the world-space
// viewport from the cell size.
func (m *Model) resize(cols, rows int) {
	rows = max(0, rows-footerRows)
	cols = max(0, cols)

	m.config.ScreenW = cols
	m.config.ScreenH = rows
	m.screen.Resize(cols, rows)
	m.help.Width = cols
	m.viewport = core.Size{
		W: float64(cols) * m.render.CellWidth,
		H: float64(rows) * m.render.CellHeight,
	}
}

// nowMs returns milliseconds since the model was created.
func (m Model) nowMs() float64 {
	return float64(m.clock().Sub(m.start).Microseconds()) / 1000
}

// Viewport returns the current world-space viewport.
func (m Model) Viewport() core.Size {
	return m.viewport
}

// GameState returns the result of the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderFooter(m.gameState, m.help.View(m.keys.Keys()))
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, opts Options) error {
	if err := game.Reset(opts.Runtime); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
