package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  A/Left       - Move left
  D/Right      - Move right
  R/X/Up       - Rotate clockwise
  E/Z          - Rotate counter-clockwise
  S/Space/Down - Soft drop
  P            - Pause
  N            - New game (after game over)
  Ctrl+S       - Save a text screenshot to ~/.tetris/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start slow, speed up with cleared lines
  normal - Start at 30% speed-up
  hard   - Start at 70% speed-up
  fixed  - Constant gravity, no progression

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --width 12 --height 24
  tetris play --config ./my-tetris.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape the game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Well width in columns (0 = from config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Well height in rows (0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", flagDifficulty)
	}

	if err := prepareGame(logger, preset); err != nil {
		return err
	}

	_, err = playOnce(logger, runtimeConfig())
	return err
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// resolveConfig loads the configuration and applies the preset and size flags.
func resolveConfig(preset config.DifficultyPreset) (config.TetrisConfig, config.Source, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	config.ApplyPreset(&cfg, preset)
	// The flags count cells; the arena stores the last index.
	if flagWidth > 0 {
		cfg.Arena.Width = flagWidth - 1
	}
	if flagHeight > 0 {
		cfg.Arena.Height = flagHeight - 1
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	if err := tetris.ArenaConfigFrom(cfg).Validate(); err != nil {
		return cfg, source, fmt.Errorf("config: %w", err)
	}
	return cfg, source, nil
}

// prepareGame validates the configuration and hands it to the game package.
func prepareGame(logger *log.Logger, preset config.DifficultyPreset) error {
	cfg, source, err := resolveConfig(preset)
	if err != nil {
		return err
	}

	tetris.SetConfig(cfg)
	logger.Info("config loaded",
		"source", source,
		"difficulty", preset,
		"width", cfg.Arena.Width+1,
		"height", cfg.Arena.Height+1,
	)
	return nil
}

// playOnce runs a single game session.
func playOnce(logger *log.Logger, cfg core.RuntimeConfig) (tui.RunResult, error) {
	if cfg.TickRate <= 0 {
		return tui.RunResult{}, fmt.Errorf("fps must be positive, got %d", cfg.TickRate)
	}

	game, err := registry.Create(tetris.GameID)
	if err != nil {
		return tui.RunResult{}, err
	}

	result, err := tui.Run(game, cfg, logger)
	if err != nil {
		logger.Error("game aborted", "error", err)
		return result, err
	}
	logger.Info("session ended", "lines", result.State.Score, "frames", result.State.Frame)
	return result, nil
}
