package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stasis-arcade/internal/registry"
	"github.com/vovakirdan/stasis-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade scores avoider
  arcade scores avoider --limit 25
  arcade scores avoider --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	ctx := cmd.Context()
	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		n, err := store.ClearScores(ctx, gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d scores for %s.\n", n, registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(ctx, gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", registry.Title(gameID))
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-10s  %s\n", "Rank", "Score", "Balls", "Difficulty", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-10s  %s\n", i+1, e.Score, e.Balls, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllGamesStats(ctx)
	if err != nil {
		return err
	}
	if st, ok := stats[gameID]; ok {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", st.HighScore, st.GamesCount, st.AvgScore)
	}
	return nil
}
