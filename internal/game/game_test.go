package game

import (
	"strings"
	"testing"

	"twenty48/internal/board"
	"twenty48/internal/config"
)

func countTiles(encoded string) int {
	return len(encoded) - strings.Count(encoded, "0")
}

func TestNewSpawnsInitialTiles(t *testing.T) {
	g := New(config.Default(), 42)
	if got := countTiles(g.Board().Encode()); got != 2 {
		t.Errorf("new game has %d tiles, want 2", got)
	}
	if g.Over() {
		t.Error("new game should not be over")
	}
}

func TestConfiguredFourProbability(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.FourProbability = 1.0
	g := New(cfg, 42)

	// '1' encodes a 2-tile; an all-fours config must never produce one.
	if enc := g.Board().Encode(); strings.Contains(enc, "1") {
		t.Errorf("all-fours config spawned a 2-tile in the opening: %s", enc)
	}

	for i := 0; i < 10 && !g.Over(); i++ {
		actions, moved := g.Move(board.Directions[i%4])
		if !moved {
			continue
		}
		if spawn, ok := actions[len(actions)-1].(board.Spawn); ok && spawn.Tile.Value != 4 {
			t.Fatalf("turn %d spawned a %d, want 4", i, int(spawn.Tile.Value))
		}
	}
}

func TestDeterministicOpening(t *testing.T) {
	g1 := New(config.Default(), 12345)
	g2 := New(config.Default(), 12345)
	if g1.Board().Encode() != g2.Board().Encode() {
		t.Errorf("same seed produced different openings: %s vs %s",
			g1.Board().Encode(), g2.Board().Encode())
	}
}

func TestDeterministicPlay(t *testing.T) {
	moves := []board.Direction{board.Left, board.Up, board.Right, board.Down, board.Left}

	g1 := New(config.Default(), 7)
	g2 := New(config.Default(), 7)
	for _, d := range moves {
		g1.Move(d)
		g2.Move(d)
	}
	if g1.Board().Encode() != g2.Board().Encode() {
		t.Errorf("same seed and moves diverged: %s vs %s",
			g1.Board().Encode(), g2.Board().Encode())
	}
}

func TestMoveAddsSpawn(t *testing.T) {
	g := New(config.Default(), 42)
	before := countTiles(g.Board().Encode())

	// Find a direction that changes the board.
	for _, d := range board.Directions {
		actions, moved := g.Move(d)
		if !moved {
			continue
		}
		last := actions[len(actions)-1]
		if _, ok := last.(board.Spawn); !ok {
			t.Fatalf("last action of a turn is %T, want Spawn", last)
		}
		merges := 0
		for _, a := range actions {
			if _, ok := a.(board.Merge); ok {
				merges++
			}
		}
		after := countTiles(g.Board().Encode())
		if after != before-merges+1 {
			t.Errorf("tile count after move = %d, want %d", after, before-merges+1)
		}
		return
	}
	t.Fatal("no direction produced a move on a fresh board")
}

func TestRejectedMoveProducesNothing(t *testing.T) {
	cfg := config.Default()
	cfg.Board.InitialTiles = 0
	g := New(cfg, 1)

	// An empty board cannot move in any direction.
	for _, d := range board.Directions {
		actions, moved := g.Move(d)
		if moved || len(actions) != 0 {
			t.Errorf("move %s on empty board: moved=%v actions=%d", d, moved, len(actions))
		}
	}
	if len(g.Moves()) != 0 {
		t.Errorf("rejected moves were recorded: %v", g.Moves())
	}
}

func TestMoveHistory(t *testing.T) {
	g := New(config.Default(), 9)
	var want []board.Direction
	for _, d := range []board.Direction{board.Left, board.Right, board.Up, board.Down} {
		if _, moved := g.Move(d); moved {
			want = append(want, d)
		}
	}
	got := g.Moves()
	if len(got) != len(want) {
		t.Fatalf("history length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOverDetection(t *testing.T) {
	g := New(config.Default(), 1)

	// Force a dead position: full board, no equal neighbors.
	dead, err := board.Decode("1234234134124123", 4)
	if err != nil {
		t.Fatal(err)
	}
	g.board = dead
	if !g.stuck() {
		t.Error("dead position not detected")
	}

	lively, err := board.Decode("1134234134124123", 4)
	if err != nil {
		t.Fatal(err)
	}
	g.board = lively
	if g.stuck() {
		t.Error("position with a merge available reported as stuck")
	}
}

func TestSnapshot(t *testing.T) {
	g := New(config.Default(), 42)
	snap := g.Snapshot()
	if snap.Seed != 42 {
		t.Errorf("Snapshot.Seed = %d, want 42", snap.Seed)
	}
	if snap.Board != g.Board().Encode() {
		t.Errorf("Snapshot.Board = %s, want %s", snap.Board, g.Board().Encode())
	}
	if snap.Moves != 0 || snap.Over {
		t.Errorf("fresh snapshot = %+v", snap)
	}
	if snap.MaxTile != 2 && snap.MaxTile != 4 {
		t.Errorf("Snapshot.MaxTile = %d, want 2 or 4", snap.MaxTile)
	}
}
