package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Arena: ArenaSize{
			Width:  9,
			Height: 19,
		},
		Timing: TimingConfig{
			GravityInterval:    20,
			MinGravityInterval: 2,
			SoftDropInterval:   0,
			SoftDropHold:       8,
			LateralDebounce:    5,
			RotateDebounce:     0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
