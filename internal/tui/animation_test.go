package tui

import (
	"testing"

	"twenty48/internal/board"
)

// encodeTiles renders the animator's private lookup as board text so it
// can be compared against the engine's own encoding.
func encodeTiles(a *animator) string {
	runes := make([]rune, a.size*a.size)
	for i := range runes {
		runes[i] = '0'
	}
	for p, v := range a.tiles {
		runes[p.Row*a.size+p.Col] = v.Rune()
	}
	return string(runes)
}

func newTestAnimator(t *testing.T, encoded string) *animator {
	t.Helper()
	a, err := newAnimator(encoded, 4, 4, 3)
	if err != nil {
		t.Fatalf("newAnimator: %v", err)
	}
	return a
}

func TestAnimatorSeedsFromText(t *testing.T) {
	a := newTestAnimator(t, "1200000000000000")
	if len(a.tiles) != 2 {
		t.Fatalf("seeded %d tiles, want 2", len(a.tiles))
	}
	if got := encodeTiles(a); got != "1200000000000000" {
		t.Errorf("encodeTiles = %s", got)
	}
}

func TestAnimatorRejectsBadText(t *testing.T) {
	if _, err := newAnimator("12", 4, 4, 3); err == nil {
		t.Error("short text should be rejected")
	}
	if _, err := newAnimator("12000000000000x0", 4, 4, 3); err == nil {
		t.Error("invalid character should be rejected")
	}
}

func TestAnimatorTracksActions(t *testing.T) {
	const start = "1100000000000000"
	b, err := board.Decode(start, 4)
	if err != nil {
		t.Fatal(err)
	}
	actions := b.PlanMove(board.Left)
	actions = append(actions, board.Spawn{
		Tile: board.Tile{Value: 2, Position: board.Position{Row: 3, Col: 3}},
	})
	for _, act := range actions {
		b.Apply(act)
	}

	a := newTestAnimator(t, start)
	a.observe(actions)

	if a.phase != phaseSlide {
		t.Fatalf("phase = %v, want slide", a.phase)
	}
	for i := 0; i < a.slideTicks; i++ {
		a.tick()
	}
	if a.phase != phasePop {
		t.Fatalf("phase after slide = %v, want pop", a.phase)
	}
	for i := 0; i < a.popTicks; i++ {
		a.tick()
	}
	if a.phase != phaseIdle {
		t.Fatalf("phase after pop = %v, want idle", a.phase)
	}

	if got := encodeTiles(a); got != b.Encode() {
		t.Errorf("animator tiles = %s, board = %s", got, b.Encode())
	}
}

func TestObserveSpawnOnly(t *testing.T) {
	a := newTestAnimator(t, "0000000000000000")
	a.observe([]board.Action{
		board.Spawn{Tile: board.Tile{Value: 4, Position: board.Position{Row: 1, Col: 2}}},
	})
	if a.phase != phasePop {
		t.Errorf("phase = %v, want pop", a.phase)
	}
	if got := encodeTiles(a); got != "0000002000000000" {
		t.Errorf("encodeTiles = %s", got)
	}
}

func TestObserveEmptyLogStaysIdle(t *testing.T) {
	a := newTestAnimator(t, "1000000000000000")
	a.observe(nil)
	if a.animating() {
		t.Error("empty log should not animate")
	}
}

func TestRestExcludesMovers(t *testing.T) {
	const start = "1010000000000000"
	b, err := board.Decode(start, 4)
	if err != nil {
		t.Fatal(err)
	}
	actions := b.PlanMove(board.Left)

	a := newTestAnimator(t, start)
	a.observe(actions)

	if len(a.sprites) != 1 {
		t.Fatalf("got %d sprites, want 1", len(a.sprites))
	}
	if len(a.rest) != 1 {
		t.Fatalf("got %d resting tiles, want 1", len(a.rest))
	}
	if a.rest[0].Position != (board.Position{Row: 0, Col: 0}) {
		t.Errorf("resting tile at %s", a.rest[0].Position)
	}
}

func TestMergeProducesTwoSprites(t *testing.T) {
	const start = "1100000000000000"
	b, err := board.Decode(start, 4)
	if err != nil {
		t.Fatal(err)
	}

	a := newTestAnimator(t, start)
	a.observe(b.PlanMove(board.Left))

	if len(a.sprites) != 2 {
		t.Fatalf("got %d sprites, want 2", len(a.sprites))
	}
	for _, s := range a.sprites {
		if !s.merged {
			t.Errorf("sprite %+v not marked as merged", s)
		}
		if s.to != (board.Position{Row: 0, Col: 0}) {
			t.Errorf("sprite destination %s, want (0,0)", s.to)
		}
	}
}

func TestEaseOutQuad(t *testing.T) {
	if easeOutQuad(0) != 0 {
		t.Error("ease(0) != 0")
	}
	if easeOutQuad(1) != 1 {
		t.Error("ease(1) != 1")
	}
	prev := 0.0
	for i := 1; i <= 10; i++ {
		cur := easeOutQuad(float64(i) / 10)
		if cur < prev {
			t.Fatalf("easing not monotonic at %d", i)
		}
		prev = cur
	}
}

func TestSpriteInterpolation(t *testing.T) {
	s := sprite{
		value: 2,
		from:  board.Position{Row: 0, Col: 3},
		to:    board.Position{Row: 0, Col: 0},
	}
	if row, col := s.at(0); row != 0 || col != 3 {
		t.Errorf("at(0) = (%v, %v)", row, col)
	}
	if row, col := s.at(1); row != 0 || col != 0 {
		t.Errorf("at(1) = (%v, %v)", row, col)
	}
	if _, col := s.at(0.5); col <= 0 || col >= 3 {
		t.Errorf("at(0.5) col = %v, want between 0 and 3", col)
	}
}

func TestAnimatorReset(t *testing.T) {
	a := newTestAnimator(t, "1100000000000000")
	a.observe([]board.Action{
		board.Spawn{Tile: board.Tile{Value: 2, Position: board.Position{Row: 2, Col: 2}}},
	})
	if err := a.reset("2000000000000000"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if a.animating() {
		t.Error("reset animator should be idle")
	}
	if got := encodeTiles(a); got != "2000000000000000" {
		t.Errorf("encodeTiles = %s", got)
	}
}
