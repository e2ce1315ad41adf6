package tui

import (
	"fmt"

	"twenty48/internal/board"
)

// animPhase is the current animation phase of a turn: tiles sliding to
// their destinations first, then the spawned tile popping in.
type animPhase int

const (
	phaseIdle animPhase = iota
	phaseSlide
	phasePop
)

// sprite is one tile in motion during the slide phase.
type sprite struct {
	value  board.Value
	from   board.Position
	to     board.Position
	merged bool
}

// animator turns a turn's action log into slide and pop animations. It is
// fed nothing but action streams: it keeps its own position lookup,
// updated by observing actions, and never touches the engine's board.
type animator struct {
	size       int
	slideTicks int
	popTicks   int

	tiles map[board.Position]board.Value

	phase   animPhase
	ticks   int
	sprites []sprite
	rest    []board.Tile
	spawn   *board.Spawn
}

// newAnimator seeds the animator's tile lookup from a board text encoding.
func newAnimator(encoded string, size, slideTicks, popTicks int) (*animator, error) {
	if len(encoded) != size*size {
		return nil, fmt.Errorf("tui: board text has %d cells, want %d", len(encoded), size*size)
	}
	tiles := make(map[board.Position]board.Value)
	for i, r := range encoded {
		v, err := board.ParseValue(r)
		if err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		if !v.IsEmpty() {
			tiles[board.Position{Row: i / size, Col: i % size}] = v
		}
	}
	return &animator{
		size:       size,
		slideTicks: slideTicks,
		popTicks:   popTicks,
		tiles:      tiles,
	}, nil
}

// observe ingests one turn's action log, starting the slide phase and
// advancing the internal lookup to the post-turn position.
func (a *animator) observe(actions []board.Action) {
	a.sprites = a.sprites[:0]
	a.spawn = nil
	moved := make(map[board.Position]bool)

	for _, act := range actions {
		switch act := act.(type) {
		case board.Slide:
			a.sprites = append(a.sprites, sprite{value: act.Tile.Value, from: act.Tile.Position, to: act.To})
			moved[act.Tile.Position] = true
		case board.Merge:
			a.sprites = append(a.sprites,
				sprite{value: act.A.Value, from: act.A.Position, to: act.To, merged: true},
				sprite{value: act.B.Value, from: act.B.Position, to: act.To, merged: true},
			)
			moved[act.A.Position] = true
			moved[act.B.Position] = true
		case board.Spawn:
			s := act
			a.spawn = &s
		}
	}

	// Tiles untouched by this turn stay put while the sprites slide.
	a.rest = a.rest[:0]
	for p, v := range a.tiles {
		if !moved[p] {
			a.rest = append(a.rest, board.Tile{Value: v, Position: p})
		}
	}

	for _, act := range actions {
		a.apply(act)
	}

	a.ticks = 0
	switch {
	case len(a.sprites) > 0:
		a.phase = phaseSlide
	case a.spawn != nil:
		a.phase = phasePop
	default:
		a.phase = phaseIdle
	}
}

// apply mirrors the board's own action semantics onto the lookup.
func (a *animator) apply(act board.Action) {
	switch act := act.(type) {
	case board.Spawn:
		a.tiles[act.Tile.Position] = act.Tile.Value
	case board.Slide:
		delete(a.tiles, act.Tile.Position)
		a.tiles[act.To] = act.Tile.Value
	case board.Merge:
		delete(a.tiles, act.A.Position)
		delete(a.tiles, act.B.Position)
		a.tiles[act.To] = act.Value
	}
}

// reset reseeds the lookup for a fresh session.
func (a *animator) reset(encoded string) error {
	fresh, err := newAnimator(encoded, a.size, a.slideTicks, a.popTicks)
	if err != nil {
		return err
	}
	a.tiles = fresh.tiles
	a.phase = phaseIdle
	a.ticks = 0
	a.sprites = nil
	a.rest = nil
	a.spawn = nil
	return nil
}

func (a *animator) animating() bool {
	return a.phase != phaseIdle
}

// tick advances the current phase by one frame.
func (a *animator) tick() {
	switch a.phase {
	case phaseSlide:
		a.ticks++
		if a.ticks >= a.slideTicks {
			a.ticks = 0
			if a.spawn != nil {
				a.phase = phasePop
			} else {
				a.phase = phaseIdle
			}
			a.sprites = a.sprites[:0]
		}
	case phasePop:
		a.ticks++
		if a.ticks >= a.popTicks {
			a.ticks = 0
			a.phase = phaseIdle
			a.spawn = nil
		}
	}
}

// progress reports eased completion of the current phase in [0, 1].
func (a *animator) progress() float64 {
	var duration int
	switch a.phase {
	case phaseSlide:
		duration = a.slideTicks
	case phasePop:
		duration = a.popTicks
	default:
		return 1
	}
	t := float64(a.ticks) / float64(duration)
	if t > 1 {
		t = 1
	}
	return easeOutQuad(t)
}

// easeOutQuad decelerates motion toward the end of a phase.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// at interpolates a sprite's position for the current slide progress,
// in board cell units.
func (s sprite) at(progress float64) (row, col float64) {
	row = float64(s.from.Row) + (float64(s.to.Row)-float64(s.from.Row))*progress
	col = float64(s.from.Col) + (float64(s.to.Col)-float64(s.from.Col))*progress
	return row, col
}
