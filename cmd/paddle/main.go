// paddle is a single-paddle ball game for the terminal.
//
// Usage:
//
//	paddle list              - List available variants
//	paddle play [variant]    - Play a variant (default: paddleball)
//	paddle replay <script>   - Run a scripted input file headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/paddleball/internal/games/paddleball"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string

	// stderr receives errors that happen after the command has finished.
	stderr io.Writer = os.Stderr
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddle",
	Short: "Paddleball - keep the ball in play",
	Long: `Paddleball is a terminal game: a ball bounces around the screen
and you steer a paddle to keep it in play.

Available commands:
  list     - Show all available variants
  play     - Play a variant
  replay   - Run a scripted input file without a terminal

Examples:
  paddle list
  paddle play
  paddle play paddleball_classic --difficulty hard
  paddle replay ./script.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}

// openLogger returns a logger writing to --log-file, or to fallback when
// the flag is unset. The returned closer must be called on exit.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(stderr, "Error: closing log file: %v\n", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "paddle",
	})
	return logger, closer, nil
}
