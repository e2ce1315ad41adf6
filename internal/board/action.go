package board

import "fmt"

// Tile is a transient (value, position) pair produced by queries and
// carried inside actions. It is never stored; the Board is the only owner
// of cell state.
type Tile struct {
	Value    Value
	Position Position
}

// Action is one atomic state change planned by the engine. The stream of
// actions for a move is the entire contract toward the presentation
// layer: replaying it against the pre-move board yields the post-move
// board.
type Action interface {
	fmt.Stringer
	isAction()
}

// Spawn places a new tile on a previously empty cell.
type Spawn struct {
	Tile Tile
}

// Slide moves a tile from its position to an empty destination slot.
type Slide struct {
	Tile Tile
	To   Position
}

// Merge consumes two equal tiles and places their sum at the destination.
// A records the tile that reached the destination first, B the one that
// caught up with it.
type Merge struct {
	A, B  Tile
	To    Position
	Value Value
}

func (Spawn) isAction() {}
func (Slide) isAction() {}
func (Merge) isAction() {}

func (a Spawn) String() string {
	return fmt.Sprintf("spawn %s at %s", a.Tile.Value, a.Tile.Position)
}

func (a Slide) String() string {
	return fmt.Sprintf("slide %s %s -> %s", a.Tile.Value, a.Tile.Position, a.To)
}

func (a Merge) String() string {
	return fmt.Sprintf("merge %s %s + %s -> %s as %s", a.A.Value, a.A.Position, a.B.Position, a.To, a.Value)
}
