package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is tried relative to the working directory.
const localConfigPath = "configs/tetris.yaml"

// Load loads the tetris configuration.
// Search order: customPath -> ~/.tetris/config.yaml -> ./configs/tetris.yaml -> embedded default
func Load(customPath string) (TetrisConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the built-in defaults, so omitted keys keep
// their default values.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func loadFile(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTetrisConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "config.yaml")
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports every out-of-range value in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Arena.Width < 3 || c.Arena.Height < 3 {
		errs = append(errs, fmt.Errorf("arena %dx%d is smaller than 3x3", c.Arena.Width, c.Arena.Height))
	}
	t := c.Timing
	if t.GravityInterval < 0 || t.MinGravityInterval < 0 || t.SoftDropInterval < 0 {
		errs = append(errs, errors.New("gravity intervals must not be negative"))
	}
	if t.MinGravityInterval > t.GravityInterval {
		errs = append(errs, fmt.Errorf("min_gravity_interval %d exceeds gravity_interval %d",
			t.MinGravityInterval, t.GravityInterval))
	}
	if t.SoftDropHold < 1 {
		errs = append(errs, fmt.Errorf("soft_drop_hold %d must be at least 1", t.SoftDropHold))
	}
	if t.LateralDebounce < 0 || t.RotateDebounce < 0 {
		errs = append(errs, errors.New("debounce frames must not be negative"))
	}
	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("initial_level %.2f is outside [0, 1]", d.InitialLevel))
	}
	switch d.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", d.Progression.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
