// anglers is a side-scrolling shooter for the terminal.
//
// Usage:
//
//	anglers                  - Pick a difficulty, then play
//	anglers play             - Play immediately
//	anglers replays          - List recorded sessions
//	anglers replay <id>      - Re-run a recorded session and verify it
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--hold <duration>    - How long a movement key stays held (default: 500ms)
//	--db <path>          - Set database path (default: ~/.anglers/replays.db)
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-anglers/internal/games/anglers"
	"github.com/vovakirdan/tui-anglers/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagHold     time.Duration
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "anglers",
	Short: "Anglers - shoot down anglerfish in your terminal",
	Long: `Anglers is a side-scrolling shooter. Your ship holds the left side of
the screen; anglerfish drift in from the right. Score more than 10 points
before the 15 second clock runs out.

Available commands:
  play     - Play immediately
  replays  - List recorded sessions
  replay   - Re-run a recorded session

Running without a command opens the difficulty picker.

Examples:
  anglers
  anglers play --difficulty hard
  anglers play --seed 42
  anglers replays
  anglers replay 3f2a9c1e`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a movement key stays held after a key press or repeat")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.anglers/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// setupLogger builds the process logger and hands it to the game.
// The terminal belongs to the game screen, so logs only go to --log-file.
// The returned function closes the log file.
func setupLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "anglers",
		Level:           level,
	})
	anglers.SetLogger(logger)
	anglers.SetConfigPath(flagConfig)
	return logger, closeFn, nil
}
