package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/registry"
	"github.com/vovakirdan/paddleball/internal/replay"
)

var (
	flagVariant string
	flagEvery   int
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run a scripted input file headlessly",
	Long: `Load a YAML script of timestamped key events and run the simulation
against it without a terminal. Frames are written to the log.

Script format:
  viewport: {width: 640, height: 480}
  frame_ms: 16
  duration_ms: 5000
  events:
    - {at: 100, type: press, control: down}
    - {at: 400, type: release, control: down}

Examples:
  paddle replay ./script.yaml
  paddle replay ./script.yaml --variant paddleball_classic --every 10`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagVariant, "variant", paddleball.IDStandard, "Variant whose rules to use")
	replayCmd.Flags().IntVar(&flagEvery, "every", 1, "Log every Nth frame")
}

func runReplay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagVariant)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	script, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	paddleball.SetConfigPath(flagConfig)
	paddleball.SetDifficultyPreset(flagDifficulty)
	cfg, err := paddleball.LoadConfig(flagVariant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sink := &replay.LogSink{Logger: logger, Every: flagEvery}
	res, err := replay.Run(ctx, script, paddleball.NewPhysics(cfg), sink, logger)
	if err != nil {
		logger.Error("replay stopped", "err", err)
	}

	fmt.Printf("ticks: %d\n", res.Ticks)
	fmt.Printf("ended at: %.0fms\n", res.EndedAt)
	fmt.Printf("game over: %v\n", res.Final.GameOver)
	fmt.Printf("paddle top: %.2f\n", res.Final.Paddle.Top)
	fmt.Printf("ball: (%.2f, %.2f) v=(%.3f, %.3f)\n",
		res.Final.Ball.TopLeft.X, res.Final.Ball.TopLeft.Y,
		res.Final.Ball.Velocity.X, res.Final.Ball.Velocity.Y)
}
