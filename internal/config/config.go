// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris engine.
package config

// TetrisConfig contains all configuration for a tetris game.
type TetrisConfig struct {
	Arena      ArenaSize        `yaml:"arena"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaSize defines the well dimensions as the largest column and row index.
type ArenaSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame-based timing parameters.
type TimingConfig struct {
	GravityInterval    int `yaml:"gravity_interval"`
	MinGravityInterval int `yaml:"min_gravity_interval"`
	SoftDropInterval   int `yaml:"soft_drop_interval"`
	SoftDropHold       int `yaml:"soft_drop_hold"`
	LateralDebounce    int `yaml:"lateral_debounce"`
	RotateDebounce     int `yaml:"rotate_debounce"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/frames at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Description returns a one-line explanation for menus and help output.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "start slow, speed up with cleared lines"
	case DifficultyNormal:
		return "start at 30% speed-up"
	case DifficultyHard:
		return "start at 70% speed-up"
	case DifficultyFixed:
		return "constant gravity, no progression"
	default:
		return ""
	}
}

// ParsePreset validates a preset name. An empty name is accepted and returns "".
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return "", true
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
