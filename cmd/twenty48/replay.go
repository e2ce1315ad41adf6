package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twenty48/internal/replay"
	"twenty48/internal/storage"
)

var (
	flagReplayID     int64
	flagReplayBoards bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Resimulate a recorded session step by step",
	Long: `Resimulate a recording and print the board after every move.

Recordings are JSON files written by 'twenty48 play' into the results
database; pass a file exported from there, or load one straight from
the database with --id (see 'twenty48 scores' for the IDs).

Examples:
  twenty48 replay session.json
  twenty48 replay --id 3
  twenty48 replay --id 3 --boards`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().Int64Var(&flagReplayID, "id", 0, "Load the recording of a saved result by ID")
	replayCmd.Flags().BoolVar(&flagReplayBoards, "boards", false, "Print the board text after every move")
}

func runReplay(_ *cobra.Command, args []string) {
	data, err := loadRecording(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rec, err := replay.Unmarshal(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, steps, err := replay.Resimulate(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed %d, %dx%d board, %d moves\n", rec.Seed, rec.Size, rec.Size, len(rec.Moves))
	if flagReplayBoards {
		for i, step := range steps {
			fmt.Printf("  %3d. %s  %s\n", i+1, step.Move, step.Board)
		}
	}

	fmt.Println()
	fmt.Printf("Final board: %s\n", g.Board().Encode())
	fmt.Printf("Max tile: %d\n", int(g.MaxTile()))
	if g.Over() {
		fmt.Println("Session ended with no moves left.")
	}
}

// loadRecording reads the recording JSON from a file or from the database.
func loadRecording(args []string) ([]byte, error) {
	if flagReplayID != 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		result, err := store.ResultByID(flagReplayID)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return nil, fmt.Errorf("no result with ID %d", flagReplayID)
		}
		if result.Replay == "" {
			return nil, fmt.Errorf("result %d has no recording", flagReplayID)
		}
		return []byte(result.Replay), nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("pass a recording file or --id")
	}
	return os.ReadFile(args[0])
}
