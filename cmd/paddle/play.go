package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/platform/tui"
	"github.com/vovakirdan/paddleball/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: paddleball).

Controls:
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Variants:
  paddleball          - Ball bounces off all four walls
  paddleball_classic  - Left wall is open; miss the ball and the game ends

Examples:
  paddle play
  paddle play paddleball_classic
  paddle play --difficulty hard
  paddle play --config ./my-paddleball.yaml --log-file paddle.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := paddleball.IDStandard
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'paddle list' to see available variants.")
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	paddleball.SetConfigPath(flagConfig)
	paddleball.SetDifficultyPreset(flagDifficulty)

	gameCfg, err := paddleball.LoadConfig(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runCfg := core.DefaultConfig()
	if flagFPS > 0 {
		runCfg.TickRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runCfg.ScreenW = w
		runCfg.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID,
		"size", fmt.Sprintf("%dx%d", runCfg.ScreenW, runCfg.ScreenH), "fps", runCfg.TickRate)

	opts := tui.Options{
		Runtime: runCfg,
		Input:   gameCfg.Input,
		Render:  gameCfg.Render,
		Logger:  logger,
	}
	if err := tui.Run(game, opts); err != nil {
		logger.Error("game exited", "err", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
