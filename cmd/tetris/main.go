// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris menu              - Pick a difficulty interactively, then play
//	tetris pieces [--kicks]  - Show piece layouts and wall kick candidates
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle with SRS rotation and
wall kicks. Clear full rows to score lines; the game ends when a piece
locks above the top of the well.

Available commands:
  play     - Play a game directly
  menu     - Pick a difficulty, then play
  pieces   - Show the piece catalog and kick tables
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --difficulty hard
  tetris menu --fps 30
  tetris pieces --kicks
  tetris config --config ./my-tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. The terminal belongs to Bubble Tea,
// so logs only go to a file when one is requested. The returned func closes
// that file.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: open %s: %w", flagLogFile, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}
