package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the same way play does and prints it as YAML.

Search order:
  --config path
  ~/.tetris/config.yaml
  ./configs/tetris.yaml
  built-in defaults

Examples:
  tetris config > ~/.tetris/config.yaml
  tetris config --difficulty fixed --width 12`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", flagDifficulty)
	}

	cfg, source, err := resolveConfig(preset)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
