package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-anglers/internal/storage"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `Display the most recent recorded sessions, newest first.

Examples:
  anglers replays
  anglers replays --limit 50`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to show")
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	list, err := store.ListReplays(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if len(list) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'anglers play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-16s  %6s  %-8s  %7s  %s\n", "ID", "Date", "Score", "Result", "Time", "Seed")
	fmt.Printf("  %-8s  %-16s  %6s  %-8s  %7s  %s\n", "--", "----", "-----", "------", "----", "----")

	for _, r := range list {
		fmt.Printf("  %-8s  %-16s  %6d  %-8s  %6.1fs  %d\n",
			r.ID[:8],
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Score,
			outcome(r.GameOver, r.Won),
			r.Duration.Seconds(),
			r.Seed,
		)
	}

	fmt.Println()
	fmt.Println("Run 'anglers replay <id>' to re-run a session.")
}

// outcome names the end state of a session.
func outcome(gameOver, won bool) string {
	switch {
	case !gameOver:
		return "quit"
	case won:
		return "won"
	default:
		return "lost"
	}
}
