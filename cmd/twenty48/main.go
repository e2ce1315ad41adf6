// twenty48 is a deterministic 2048 for the terminal.
//
// Usage:
//
//	twenty48 play              - Play interactively
//	twenty48 plan <board> <dir> - Print the action log for one move
//	twenty48 replay <file>     - Resimulate a recorded session
//	twenty48 scores            - Show saved results
//	twenty48 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible play (0 = from clock)
//	--db <path>     - Results database path (default: ~/.twenty48/results.db)
//	--config <path> - Custom rules config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "twenty48 - Deterministic 2048 in your terminal",
	Long: `twenty48 is a terminal 2048 with a fully deterministic engine:
every move produces an ordered action log (slides, merges, spawn) and
every session can be replayed exactly from its seed and move list.

Available commands:
  play     - Play interactively in the terminal
  plan     - Print the action log one move produces on a given board
  replay   - Resimulate a recorded session step by step
  scores   - View saved results
  serve    - Start SSH server for remote play

Examples:
  twenty48 play
  twenty48 play --seed 42
  twenty48 plan 1100000000000000 L
  twenty48 replay session.json
  twenty48 scores --recent
  twenty48 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
