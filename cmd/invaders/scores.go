package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top runs from the run history database.

Examples:
  invaders scores
  invaders scores --limit 5
  invaders scores --recent
  invaders scores --clear
  invaders scores --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	if cfg.Paths.History == "" {
		fmt.Fprintln(os.Stderr, "Error: run history is disabled")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Paths.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	render := tui.RenderScoreboard
	fetch := store.TopRuns
	if flagRecent {
		render = tui.RenderRecentRuns
		fetch = store.RecentRuns
	}

	runs, err := fetch(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Print(render(runs, stats))
}
