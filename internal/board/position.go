package board

import "fmt"

// Position identifies a cell by row and column. It is a value type used as
// a key and as an action payload; it never carries cell state.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Line is the positions of one row or column ordered so that index 0 is
// the slot tiles compact toward.
type Line []Position

// lineTraversals builds the N lines for one direction. Mirroring reverses
// the in-line order (Right, Down); transposing swaps the row/col roles
// (Up, Down).
func lineTraversals(size int, transpose, mirror bool) []Line {
	lines := make([]Line, 0, size)
	for row := 0; row < size; row++ {
		line := make(Line, 0, size)
		for i := 0; i < size; i++ {
			col := i
			if mirror {
				col = size - 1 - i
			}
			if transpose {
				line = append(line, Position{Row: col, Col: row})
			} else {
				line = append(line, Position{Row: row, Col: col})
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// generateTraversals computes the per-direction line orderings for a grid
// of the given size. For any direction the lines partition the N*N
// positions: by row for Left/Right, by column for Up/Down.
func generateTraversals(size int) [4][]Line {
	var t [4][]Line
	t[Left] = lineTraversals(size, false, false)
	t[Right] = lineTraversals(size, false, true)
	t[Up] = lineTraversals(size, true, false)
	t[Down] = lineTraversals(size, true, true)
	return t
}
