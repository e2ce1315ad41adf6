package board

import "math/rand"

// placed tracks the most recent non-consumed tile within a line scan:
// the slot it occupies (or will occupy) and its value.
type placed struct {
	slot  int
	value Value
}

// PlanMove computes the ordered action log for compacting the whole board
// in a direction. It is pure: the canonical state is not touched, and
// calling it repeatedly yields identical logs.
func (b *Board) PlanMove(d Direction) []Action {
	var actions []Action
	for _, line := range b.lines(d) {
		actions = append(actions, b.planLine(line)...)
	}
	return actions
}

// planLine compacts a single line. Slides are held back in a single
// pending slot so that a later equal tile can convert them into a merge
// targeting the slot the tile was headed for; this keeps each tile's
// movement in the log exactly once.
func (b *Board) planLine(line Line) []Action {
	work := b.clone()
	var actions []Action

	// focus is the next free destination slot. prev tracks the last placed
	// tile until a merge consumes it. pending holds the one deferred slide
	// that a later equal tile may still turn into a merge.
	focus := 0
	var prev *placed
	var pending *Slide

	for _, pos := range line {
		v := work.Get(pos)
		if v.IsEmpty() {
			continue
		}
		canSlide := pos != line[focus]

		if prev != nil && prev.value == v && prev.value < MaxTileValue {
			// The pending slide's destination becomes the merge target;
			// otherwise the first operand is the tile resting at prev's slot.
			var first Tile
			to := line[prev.slot]
			if pending != nil {
				first, to = pending.Tile, pending.To
				pending = nil
			} else {
				first = work.TileAt(to)
			}
			second := work.TileAt(pos)
			m := Merge{A: first, B: second, To: to, Value: first.Value.Merge(second.Value)}
			work.Apply(m)
			actions = append(actions, m)
			// A merged tile cannot merge again within this move.
			prev = nil
			continue
		}

		if canSlide {
			// An earlier tile must vacate its old cell before this one's
			// movement is recorded.
			if pending != nil {
				work.Apply(*pending)
				actions = append(actions, *pending)
			}
			s := Slide{Tile: work.TileAt(pos), To: line[focus]}
			pending = &s
		}
		prev = &placed{slot: focus, value: v}
		focus++
	}

	if pending != nil {
		work.Apply(*pending)
		actions = append(actions, *pending)
	}
	return actions
}

// MoveAndApply plans a move and applies every resulting action in order.
// It reports whether the board changed.
func (b *Board) MoveAndApply(d Direction) bool {
	actions := b.PlanMove(d)
	for _, a := range actions {
		b.Apply(a)
	}
	return len(actions) > 0
}

// PlanSpawn picks a uniformly random empty cell and a value using the
// supplied generator: a 4 with probability fourProb, a 2 otherwise. The
// generator is injected so that identical seeds and histories reproduce
// identical spawns. Returns false when the board is full, which is a
// normal terminal condition.
func (b *Board) PlanSpawn(rng *rand.Rand, fourProb float64) (Spawn, bool) {
	var empty []Position
	for _, line := range b.lines(Left) {
		for _, p := range line {
			if b.Get(p).IsEmpty() {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		return Spawn{}, false
	}
	pos := empty[rng.Intn(len(empty))]
	value := Value(2)
	if rng.Float64() < fourProb {
		value = 4
	}
	return Spawn{Tile: Tile{Value: value, Position: pos}}, true
}
