package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/platform/tui"
	"github.com/vovakirdan/tui-stack/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Stack right away.

Controls:
  Space/Enter  - Start, drop block, resume
  P/Esc        - Pause
  R            - Reset to the title screen
  B            - Leave (from title, pause or game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Slower blocks, gentler speed-up, wider perfect window
  normal  - Settings as configured
  hard    - Faster blocks, steeper speed-up, narrower perfect window
  fixed   - No speed-up, blocks keep the base speed

Examples:
  stack play
  stack play --difficulty easy
  stack play --config ./my-stack.yaml
  stack play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a menu",
	Long: `Start Stack in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game you return to the menu to play again or check the high scores.

Examples:
  stack menu
  stack menu --fps 30
  stack menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// loadSettings resolves the settings file and applies the difficulty preset.
func loadSettings() (config.StackConfig, error) {
	cfg, err := config.LoadStack(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyStackPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildEnv prepares settings, terminal size and storage for a local game.
// The returned cleanup closes the store.
func buildEnv() (tui.Env, func(), error) {
	settings, err := loadSettings()
	if err != nil {
		return tui.Env{}, nil, err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.Seed = flagSeed
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}

	env := tui.Env{
		Settings: settings,
		Runtime:  rt,
		Logger:   logger,
		Bell:     true,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
		return env, func() {}, nil
	}
	env.Store = store

	return env, func() { store.Close() }, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	env, cleanup, err := buildEnv()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.Run(env); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runMenu(_ *cobra.Command, _ []string) error {
	env, cleanup, err := buildEnv()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.RunSession(env); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
