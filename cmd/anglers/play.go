package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-anglers/internal/config"
	"github.com/vovakirdan/tui-anglers/internal/core"
	"github.com/vovakirdan/tui-anglers/internal/games/anglers"
	"github.com/vovakirdan/tui-anglers/internal/platform/tui"
	"github.com/vovakirdan/tui-anglers/internal/registry"
	"github.com/vovakirdan/tui-anglers/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing immediately.

Controls:
  Up/W, Down/S  - Move (hold)
  Space         - Fire
  D             - Toggle debug boxes
  P/Esc         - Pause
  R             - Restart (after game over)
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 20s, 30 ammo, pace rises from the lowest level
  normal - 15s, 20 ammo, pace rises from 30%
  hard   - 12s, 15 ammo, pace rises from 70%
  fixed  - No progression, standard pace

Every round is recorded to the replay database.

Examples:
  anglers play
  anglers play --difficulty hard
  anglers play --config ./my-anglers.yaml
  anglers play --seed 42 --log-file anglers.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,

		HoldWindow: flagHold,
	}
}

func runMenu(cmd *cobra.Command, args []string) {
	result, err := tui.RunMenu(runtimeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if result.Quit {
		return
	}

	play(string(result.Preset), result.Config)
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	play(flagDifficulty, runtimeConfig())
}

func play(preset string, cfg core.RuntimeConfig) {
	logger, closeLog, err := setupLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	anglers.SetDifficultyPreset(preset)

	game, err := registry.Create(anglers.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		logger.Warn("recording disabled", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting", "difficulty", preset, "fps", cfg.TickRate, "seed", cfg.Seed)

	// Run the game
	runErr := tui.Run(game, store, logger, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
