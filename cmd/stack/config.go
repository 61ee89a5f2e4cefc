package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-stack/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the settings file",
	Long: `Print the built-in default settings as YAML. Save the output to
~/.stack/configs/stack.yaml or ./configs/stack.yaml to customize the game.

With --resolved, prints the settings the game would actually use after
searching the config paths and applying --difficulty.

Examples:
  stack config > ~/.stack/configs/stack.yaml
  stack config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective settings instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return enc.Close()
}
