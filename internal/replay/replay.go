// Package replay records and resimulates play sessions. A recording is
// just the seed, the rules that matter for determinism, and the move
// list: because spawning draws from an explicitly seeded generator,
// replaying the moves reproduces the exact final board.
package replay

import (
	"encoding/json"
	"fmt"

	"twenty48/internal/board"
	"twenty48/internal/config"
	"twenty48/internal/game"
)

// Recording is the persisted form of one session.
type Recording struct {
	Seed         int64    `json:"seed"`
	Size         int      `json:"size"`
	InitialTiles int      `json:"initialTiles"`
	FourProb     float64  `json:"fourProb"`
	Moves        []string `json:"moves"` // Single-letter directions, in play order
}

// FromGame captures a finished or in-progress session.
func FromGame(g *game.Game, cfg config.Config) Recording {
	moves := g.Moves()
	letters := make([]string, len(moves))
	for i, d := range moves {
		letters[i] = d.String()
	}
	return Recording{
		Seed:         g.Seed(),
		Size:         cfg.Board.Size,
		InitialTiles: cfg.Board.InitialTiles,
		FourProb:     cfg.Spawn.FourProbability,
		Moves:        letters,
	}
}

// Marshal encodes the recording as JSON.
func (r Recording) Marshal() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a JSON recording.
func Unmarshal(data []byte) (Recording, error) {
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return Recording{}, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	if r.Size < 2 {
		return Recording{}, fmt.Errorf("replay: recording has invalid board size %d", r.Size)
	}
	for _, m := range r.Moves {
		if _, err := board.ParseDirection(m); err != nil {
			return Recording{}, fmt.Errorf("replay: %w", err)
		}
	}
	return r, nil
}

// Step is one replayed turn: the direction played and the board after it.
type Step struct {
	Move  board.Direction
	Board string
}

// Resimulate replays the recording from its seed and returns the final
// session plus the board after every turn.
func Resimulate(r Recording) (*game.Game, []Step, error) {
	cfg := config.Default()
	cfg.Board.Size = r.Size
	cfg.Board.InitialTiles = r.InitialTiles
	cfg.Spawn.FourProbability = r.FourProb
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}

	g := game.New(cfg, r.Seed)
	steps := make([]Step, 0, len(r.Moves))
	for i, m := range r.Moves {
		d, err := board.ParseDirection(m)
		if err != nil {
			return nil, nil, fmt.Errorf("replay: move %d: %w", i, err)
		}
		if _, moved := g.Move(d); !moved {
			return nil, nil, fmt.Errorf("replay: move %d (%s) did not change the board", i, d)
		}
		steps = append(steps, Step{Move: d, Board: g.Board().Encode()})
	}
	return g, steps, nil
}
