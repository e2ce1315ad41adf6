package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twenty48/internal/storage"
)

var (
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show saved results",
	Long: `Display saved results, best first: highest tile reached, with fewer
moves breaking ties. Results with a recording can be resimulated with
'twenty48 replay --id <n>'.

Examples:
  twenty48 scores
  twenty48 scores --recent
  twenty48 scores --limit 25
  twenty48 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Sort by date instead of best tile")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all saved results")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	var results []storage.Result
	if flagScoresRecent {
		results, err = store.RecentResults(flagScoresLimit)
	} else {
		results, err = store.TopResults(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Results")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'twenty48 play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "ID", "Max", "Moves", "Replay", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "--", "---", "-----", "------", "----")

	for _, r := range results {
		replayMark := "-"
		if r.Replay != "" {
			replayMark = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6s  %s\n", r.ID, r.MaxTile, r.Moves, replayMark, dateStr)
	}

	best, err := store.BestTile()
	if err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best tile so far: %d\n", best)
	}
}
