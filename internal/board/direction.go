package board

import "fmt"

// Direction is one of the four compaction directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists all four directions in a stable order.
var Directions = [4]Direction{Left, Right, Up, Down}

// String returns the single-letter rendering used in logs and replays.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case Up:
		return "U"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// ParseDirection decodes the single-letter rendering.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "U":
		return Up, nil
	case "D":
		return Down, nil
	default:
		return Left, fmt.Errorf("board: invalid direction %q", s)
	}
}
