package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"twenty48/internal/board"
)

var flagPlanSize int

var planCmd = &cobra.Command{
	Use:   "plan <board> <direction>",
	Short: "Print the action log one move produces on a given board",
	Long: `Plan a single move on a board given as row-major text and print the
ordered action log together with the resulting board.

The board text uses one character per cell: '0' for empty, then the
exponent of the tile ('1' = 2, '2' = 4, ... 'B' = 2048). Directions are
L, R, U and D.

Examples:
  twenty48 plan 1100000000000000 L
  twenty48 plan 110112021 R --size 3`,
	Args: cobra.ExactArgs(2),
	Run:  runPlan,
}

func init() {
	planCmd.Flags().IntVar(&flagPlanSize, "size", board.DefaultSize, "Board side length")
}

func runPlan(_ *cobra.Command, args []string) {
	b, err := board.Decode(args[0], flagPlanSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := board.ParseDirection(strings.ToUpper(args[1]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	actions := b.PlanMove(d)
	if len(actions) == 0 {
		fmt.Printf("Move %s changes nothing.\n", d)
		return
	}

	fmt.Printf("Move %s:\n", d)
	for i, a := range actions {
		fmt.Printf("  %2d. %s\n", i+1, a)
		b.Apply(a)
	}

	fmt.Println()
	printBoard(b)
	fmt.Printf("\nResult: %s\n", b.Encode())
}

// printBoard writes the board as a value grid.
func printBoard(b *board.Board) {
	for row := 0; row < b.Size(); row++ {
		cells := make([]string, b.Size())
		for col := 0; col < b.Size(); col++ {
			v := b.Get(board.Position{Row: row, Col: col})
			if v.IsEmpty() {
				cells[col] = "."
			} else {
				cells[col] = fmt.Sprintf("%d", int(v))
			}
		}
		fmt.Printf("  %s\n", strings.Join(cells, "\t"))
	}
}
