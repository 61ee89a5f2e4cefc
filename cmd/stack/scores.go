package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stack/internal/games/stack"
	"github.com/vovakirdan/tui-stack/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs and the stored best score.

Examples:
  stack scores
  stack scores --limit 25
  stack scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(stack.GameID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	scores, err := store.TopScores(stack.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	best, err := store.Load(stack.BestScoreKey)
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}

	fmt.Println("High Scores - Stack")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stack play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(stack.GameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.0f  Highest level: %d\n", stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
	fmt.Printf("Best: %d\n", best)
	return nil
}
