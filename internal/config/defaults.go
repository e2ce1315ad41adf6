package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic 4x4 game with
// two starting tiles and a 10% four-tile spawn chance.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:         4,
			InitialTiles: 2,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Animation: AnimationConfig{
			SlideTicks: 8,
			PopTicks:   6,
			TickRate:   60,
		},
	}
}
