package replay

import (
	"strings"
	"testing"

	"twenty48/internal/board"
	"twenty48/internal/config"
	"twenty48/internal/game"
)

// play runs moves until a few have landed, so recordings have content.
func play(t *testing.T, g *game.Game, turns int) {
	t.Helper()
	for i := 0; len(g.Moves()) < turns; i++ {
		if g.Over() || i > 100 {
			t.Fatalf("could not reach %d moves", turns)
		}
		g.Move(board.Directions[i%4])
	}
}

func TestRoundTrip(t *testing.T) {
	cfg := config.Default()
	g := game.New(cfg, 42)
	play(t, g, 5)

	rec := FromGame(g, cfg)
	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	restored, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if restored.Seed != rec.Seed || restored.Size != rec.Size || len(restored.Moves) != len(rec.Moves) {
		t.Errorf("restored recording differs: %+v vs %+v", restored, rec)
	}
}

func TestResimulateReproducesBoard(t *testing.T) {
	cfg := config.Default()
	g := game.New(cfg, 1337)
	play(t, g, 8)

	rec := FromGame(g, cfg)
	replayed, steps, err := Resimulate(rec)
	if err != nil {
		t.Fatalf("Resimulate: %v", err)
	}
	if replayed.Board().Encode() != g.Board().Encode() {
		t.Errorf("resimulated board %s, want %s", replayed.Board().Encode(), g.Board().Encode())
	}
	if len(steps) != len(rec.Moves) {
		t.Errorf("got %d steps, want %d", len(steps), len(rec.Moves))
	}
	if steps[len(steps)-1].Board != g.Board().Encode() {
		t.Errorf("final step board %s, want %s", steps[len(steps)-1].Board, g.Board().Encode())
	}
}

func TestResimulateHonorsFourProbability(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.FourProbability = 1.0
	g := game.New(cfg, 21)
	play(t, g, 5)

	rec := FromGame(g, cfg)
	replayed, _, err := Resimulate(rec)
	if err != nil {
		t.Fatalf("Resimulate: %v", err)
	}
	if replayed.Board().Encode() != g.Board().Encode() {
		t.Errorf("resimulated board %s, want %s", replayed.Board().Encode(), g.Board().Encode())
	}
	// All-fours spawning can never put a 2-tile (encoded '1') on the board.
	if enc := replayed.Board().Encode(); strings.Contains(enc, "1") {
		t.Errorf("all-fours replay contains a 2-tile: %s", enc)
	}
}

func TestUnmarshalRejectsBadRecordings(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"bad size", `{"seed":1,"size":0,"initialTiles":2,"fourProb":0.1,"moves":[]}`},
		{"bad move", `{"seed":1,"size":4,"initialTiles":2,"fourProb":0.1,"moves":["L","X"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.data)); err == nil {
				t.Error("Unmarshal should fail")
			}
		})
	}
}

func TestResimulateRejectsIneffectiveMove(t *testing.T) {
	// Seed 1 with no initial tiles: the empty board rejects every move.
	rec := Recording{Seed: 1, Size: 4, InitialTiles: 0, FourProb: 0.1, Moves: []string{"L"}}
	if _, _, err := Resimulate(rec); err == nil {
		t.Error("Resimulate should fail on a move that changes nothing")
	}
}
