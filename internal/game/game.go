// Package game runs the turn protocol on top of the board engine: plan a
// move, apply its actions, then plan and apply a random spawn. It owns the
// session state the engine deliberately does not: the seeded generator,
// the move history, and terminal-state detection.
package game

import (
	"math/rand"

	"twenty48/internal/board"
	"twenty48/internal/config"
)

// Game is one play session over a single board.
type Game struct {
	board    *board.Board
	rng      *rand.Rand
	seed     int64
	fourProb float64
	moves    []board.Direction
	over     bool
}

// New creates a session with the configured opening position. The seed
// fully determines the session given the same move sequence.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		board:    board.New(cfg.Board.Size),
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		fourProb: cfg.Spawn.FourProbability,
	}
	for i := 0; i < cfg.Board.InitialTiles; i++ {
		if spawn, ok := g.board.PlanSpawn(g.rng, g.fourProb); ok {
			g.board.Apply(spawn)
		}
	}
	return g
}

// Board exposes the canonical board for read queries.
func (g *Game) Board() *board.Board {
	return g.board
}

// Seed returns the generator seed the session was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Moves returns the directions played so far.
func (g *Game) Moves() []board.Direction {
	return append([]board.Direction(nil), g.moves...)
}

// Over reports whether no direction can change the board.
func (g *Game) Over() bool {
	return g.over
}

// Move runs one full turn: plan the direction, apply every action, then
// spawn a tile if the board changed. It returns the complete action
// stream of the turn (spawn included) for the presentation layer, and
// whether the board changed. Moves on a finished game do nothing.
func (g *Game) Move(d board.Direction) ([]board.Action, bool) {
	if g.over {
		return nil, false
	}

	actions := g.board.PlanMove(d)
	if len(actions) == 0 {
		return nil, false
	}
	for _, a := range actions {
		g.board.Apply(a)
	}

	if spawn, ok := g.board.PlanSpawn(g.rng, g.fourProb); ok {
		g.board.Apply(spawn)
		actions = append(actions, spawn)
	}

	g.moves = append(g.moves, d)
	g.over = g.stuck()
	return actions, true
}

// stuck reports whether every direction plans an empty action list. It
// relies on planning being pure, so probing does not disturb the board.
func (g *Game) stuck() bool {
	for _, d := range board.Directions {
		if len(g.board.PlanMove(d)) > 0 {
			return false
		}
	}
	return true
}

// MaxTile returns the largest value on the board.
func (g *Game) MaxTile() board.Value {
	max := board.Empty
	size := g.board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if v := g.board.Get(board.Position{Row: row, Col: col}); v > max {
				max = v
			}
		}
	}
	return max
}

// Snapshot captures the session state for determinism tests and replays.
type Snapshot struct {
	Seed    int64
	Board   string
	Moves   int
	MaxTile board.Value
	Over    bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Seed:    g.seed,
		Board:   g.board.Encode(),
		Moves:   len(g.moves),
		MaxTile: g.MaxTile(),
		Over:    g.over,
	}
}
