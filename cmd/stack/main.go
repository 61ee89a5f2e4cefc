// stack is a tower-stacking arcade game for the terminal.
//
// Usage:
//
//	stack play              - Play a game
//	stack menu              - Start the menu (play, high scores)
//	stack serve             - Start SSH server for remote play
//	stack scores            - Show recorded runs
//	stack config            - Print the default settings file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.stack/scores.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stack",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stack",
	Short: "Stack - build the tallest tower in your terminal",
	Long: `Stack is a terminal arcade game. A block slides back and forth above
the tower; drop it so it lands on the block below. Whatever hangs over
the edge is sliced off. Miss completely and the run is over.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu with high scores
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the default settings file

Examples:
  stack play
  stack play --difficulty hard
  stack menu
  stack serve --ssh :2222
  stack scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
