// Package board implements the deterministic 2048 simulation core: the
// grid state, the per-direction traversal map, and the planner that turns
// a move into an ordered log of slide/merge/spawn actions.
//
// Planning is pure; Apply is the sole mutator. Actions fully identify
// their source and destination cells, so an external presentation layer
// can animate a move from the action log alone.
package board

import (
	"fmt"
	"strings"
)

// DefaultSize is the conventional grid size. The engine itself is
// size-agnostic.
const DefaultSize = 4

// Board holds the canonical grid state. Every position always maps to a
// Value; the traversal map is computed once at construction and never
// changes.
type Board struct {
	size       int
	cells      [][]Value
	traversals [4][]Line
}

// New creates an empty board of the given size.
func New(size int) *Board {
	cells := make([][]Value, size)
	for i := range cells {
		cells[i] = make([]Value, size)
	}
	return &Board{
		size:       size,
		cells:      cells,
		traversals: generateTraversals(size),
	}
}

// Size returns the grid dimension.
func (b *Board) Size() int {
	return b.size
}

// Get returns the value at a position. The position must be on the board;
// violating that is a programmer error, not a recoverable one.
func (b *Board) Get(p Position) Value {
	return b.cells[p.Row][p.Col]
}

// TileAt returns the (value, position) pair at a position.
func (b *Board) TileAt(p Position) Tile {
	return Tile{Value: b.Get(p), Position: p}
}

func (b *Board) set(p Position, v Value) {
	b.cells[p.Row][p.Col] = v
}

// lines returns the traversal lines for a direction.
func (b *Board) lines(d Direction) []Line {
	return b.traversals[d]
}

// clone copies the cell state. The traversal map is immutable and shared.
func (b *Board) clone() *Board {
	c := &Board{size: b.size, traversals: b.traversals}
	c.cells = make([][]Value, b.size)
	for i, row := range b.cells {
		c.cells[i] = append([]Value(nil), row...)
	}
	return c
}

// Apply performs one atomic state change. It trusts that the action was
// planned by this engine against the current state; applying a foreign or
// stale action is undefined behavior by contract.
func (b *Board) Apply(a Action) {
	switch a := a.(type) {
	case Spawn:
		b.set(a.Tile.Position, a.Tile.Value)
	case Slide:
		b.set(a.Tile.Position, Empty)
		b.set(a.To, a.Tile.Value)
	case Merge:
		b.set(a.A.Position, Empty)
		b.set(a.B.Position, Empty)
		b.set(a.To, a.Value)
	}
}

// Encode serializes the board as size*size characters in row-major order.
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(b.size * b.size)
	for _, line := range b.lines(Left) {
		for _, p := range line {
			sb.WriteRune(b.Get(p).Rune())
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Encode()
}

// Decode parses a row-major text encoding into a fresh board of the given
// size. It fails on wrong length or characters outside the alphabet and
// never returns a partially populated board.
func Decode(s string, size int) (*Board, error) {
	if len(s) != size*size {
		return nil, fmt.Errorf("board: encoding has %d cells, want %d", len(s), size*size)
	}
	b := New(size)
	for i, r := range s {
		v, err := ParseValue(r)
		if err != nil {
			return nil, err
		}
		b.set(Position{Row: i / size, Col: i % size}, v)
	}
	return b, nil
}
