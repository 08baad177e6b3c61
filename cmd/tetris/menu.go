package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty and Enter to play.
Press Esc or B during a game to come back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start game
  Q/Esc        - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	initial, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", flagDifficulty)
	}
	if initial == "" {
		initial = config.DifficultyNormal
	}

	// Fail before showing the menu if the config cannot be used.
	if _, _, err := resolveConfig(""); err != nil {
		return err
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(cfg, initial)
		if err != nil {
			return err
		}

		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		initial = menuResult.Preset
		if err := prepareGame(logger, menuResult.Preset); err != nil {
			return err
		}

		result, err := playOnce(logger, cfg)
		if err != nil {
			return err
		}
		if !result.BackToMenu {
			return nil
		}
	}
}
