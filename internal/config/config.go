// Package config provides YAML-based rules and UI configuration for the
// twenty48 game.
package config

import "fmt"

// Config is the full game configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the grid and the opening position.
type BoardConfig struct {
	Size         int `yaml:"size"`          // Grid dimension (classic game uses 4)
	InitialTiles int `yaml:"initial_tiles"` // Tiles spawned before the first move
}

// SpawnConfig defines random tile generation.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4
}

// AnimationConfig defines presentation timing in simulation ticks.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"` // Duration of the slide/merge phase
	PopTicks   int `yaml:"pop_ticks"`   // Duration of the spawn pop phase
	TickRate   int `yaml:"tick_rate"`   // Simulation ticks per second
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: board size %d is too small", c.Board.Size)
	}
	if c.Board.InitialTiles < 0 || c.Board.InitialTiles > c.Board.Size*c.Board.Size {
		return fmt.Errorf("config: %d initial tiles do not fit a %dx%d board",
			c.Board.InitialTiles, c.Board.Size, c.Board.Size)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: four_probability %v is not a probability", c.Spawn.FourProbability)
	}
	if c.Animation.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Animation.TickRate)
	}
	return nil
}
