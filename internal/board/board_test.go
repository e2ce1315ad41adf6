package board

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, text := range []string{
		"0000000000000000",
		"123456789A000000",
		"1234234134124123",
		"B00000000000000B",
	} {
		b, err := Decode(text, 4)
		if err != nil {
			t.Fatalf("Decode(%q): %v", text, err)
		}
		if got := b.Encode(); got != text {
			t.Errorf("round trip of %q produced %q", text, got)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
	}{
		{"too short", "000", 4},
		{"too long", "00000000000000000", 4},
		{"bad character", "000000000000000C", 4},
		{"lowercase", "000000000000000b", 4},
		{"wrong size", "0000000000000000", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.text, tt.size); err == nil {
				t.Errorf("Decode(%q, %d) should fail", tt.text, tt.size)
			}
		})
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := New(4)
	if got := b.Encode(); got != "0000000000000000" {
		t.Errorf("new board encodes as %q", got)
	}
	if b.Size() != 4 {
		t.Errorf("Size() = %d, want 4", b.Size())
	}
}

func TestSizeAgnosticBoard(t *testing.T) {
	b, err := Decode("110112021", 3)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b.MoveAndApply(Left)
	if got := b.Encode(); got != "200220210" {
		t.Errorf("3x3 board after Left = %s, want 200220210", got)
	}
}

func TestApply(t *testing.T) {
	b := New(4)

	b.Apply(Spawn{Tile: Tile{Value: 2, Position: Position{1, 2}}})
	if got := b.Get(Position{1, 2}); got != 2 {
		t.Fatalf("after spawn, cell = %d, want 2", got)
	}

	b.Apply(Slide{Tile: Tile{Value: 2, Position: Position{1, 2}}, To: Position{1, 0}})
	if got := b.Get(Position{1, 2}); got != Empty {
		t.Errorf("slide source not cleared: %d", got)
	}
	if got := b.Get(Position{1, 0}); got != 2 {
		t.Errorf("slide destination = %d, want 2", got)
	}

	b.Apply(Spawn{Tile: Tile{Value: 2, Position: Position{1, 3}}})
	b.Apply(Merge{
		A:     Tile{Value: 2, Position: Position{1, 0}},
		B:     Tile{Value: 2, Position: Position{1, 3}},
		To:    Position{1, 0},
		Value: 4,
	})
	if got := b.Get(Position{1, 0}); got != 4 {
		t.Errorf("merge destination = %d, want 4", got)
	}
	if got := b.Get(Position{1, 3}); got != Empty {
		t.Errorf("merge source not cleared: %d", got)
	}
}

func TestTileAt(t *testing.T) {
	b := decode(t, "0100000000000000")
	tile := b.TileAt(Position{0, 1})
	if tile.Value != 2 || tile.Position != (Position{0, 1}) {
		t.Errorf("TileAt = %v", tile)
	}
}
