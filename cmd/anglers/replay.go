package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-anglers/internal/core"
	"github.com/vovakirdan/tui-anglers/internal/registry"
	"github.com/vovakirdan/tui-anglers/internal/replay"
	"github.com/vovakirdan/tui-anglers/internal/storage"
)

var (
	flagShow   bool
	flagDelete bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded session",
	Long: `Re-simulate a recorded session headless from its seed, configuration and
input, and check that it ends with the recorded outcome. Any unique prefix of
the ID is accepted.

Examples:
  anglers replay 3f2a9c1e
  anglers replay 3f2a --show
  anglers replay 3f2a --delete`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final frame")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the session instead of running it")
}

func runReplay(cmd *cobra.Command, args []string) {
	_, closeLog, err := setupLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDelete {
		if err := store.DeleteReplay(args[0]); err != nil {
			fail(store, err)
		}
		fmt.Printf("Deleted replay %s\n", args[0])
		return
	}

	rec, err := store.LoadReplay(args[0])
	if err != nil {
		fail(store, err)
	}
	if !registry.Exists(rec.GameID) {
		fail(store, fmt.Errorf("replay %s was recorded for game %q, available: %s",
			rec.ID, rec.GameID, strings.Join(gameIDs(), ", ")))
	}

	res, err := replay.Verify(rec)
	if err != nil && !errors.Is(err, replay.ErrMismatch) {
		fail(store, err)
	}

	if flagShow {
		screen := core.NewScreen(80, 24)
		res.Game.Render(screen)
		fmt.Println(screen.String())
		fmt.Println()
	}

	fmt.Printf("Replay %s (seed %d, %d frames)\n", rec.ID, rec.Seed, res.Ticks)
	fmt.Printf("  recorded: score %d, %s\n", rec.Score, outcome(rec.GameOver, rec.Won))
	fmt.Printf("  replayed: score %d, %s\n", res.State.Score, outcome(res.State.GameOver, res.State.Won))

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	fmt.Println("OK")
}

// fail reports err, closes the store and exits.
func fail(store *storage.Store, err error) {
	if errors.Is(err, storage.ErrReplayNotFound) {
		fmt.Fprintln(os.Stderr, "Error: no such replay. Run 'anglers replays' to list them.")
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	store.Close()
	os.Exit(1)
}

// gameIDs lists the registered game IDs.
func gameIDs() []string {
	var ids []string
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
	}
	return ids
}
