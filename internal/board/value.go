package board

import "fmt"

// MaxTileValue is the largest tile the game produces. Tiles at this value
// no longer merge.
const MaxTileValue Value = 2048

// valueAlphabet maps a tile's exponent to its single-character encoding.
// Index 0 is the empty cell; 2048 (2^11) encodes as 'B'.
const valueAlphabet = "0123456789AB"

// Value is the content of a single cell: 0 for empty, otherwise a power of
// two between 2 and MaxTileValue.
type Value uint16

// Empty is the zero Value.
const Empty Value = 0

// IsEmpty reports whether the cell holds no tile.
func (v Value) IsEmpty() bool {
	return v == Empty
}

// Merge combines two values. An empty receiver yields the other value;
// two numbers yield their sum. Equality of the operands is NOT checked
// here: the planner is the sole caller and only merges equal tiles.
func (v Value) Merge(other Value) Value {
	if v.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return v
	}
	return v + other
}

// Exponent returns log2 of the value, with 0 for the empty cell.
func (v Value) Exponent() int {
	e := 0
	for n := v; n > 1; n >>= 1 {
		e++
	}
	return e
}

// Rune returns the single-character text encoding of the value.
func (v Value) Rune() rune {
	return rune(valueAlphabet[v.Exponent()])
}

func (v Value) String() string {
	return string(v.Rune())
}

// ParseValue decodes a single character from the board alphabet.
func ParseValue(r rune) (Value, error) {
	for i, c := range valueAlphabet {
		if c == r {
			if i == 0 {
				return Empty, nil
			}
			return Value(1) << i, nil
		}
	}
	return Empty, fmt.Errorf("board: invalid cell character %q", r)
}
