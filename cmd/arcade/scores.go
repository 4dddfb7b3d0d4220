package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	flagScoresJSON  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 5 high scores.

--json writes the list as [{"score": N, "date": "..."}] for export.
--clear empties the list (run history is kept).

Examples:
  arcade scores
  arcade scores --json > scores.json
  arcade scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresJSON, "json", false, "Print the list as JSON")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Clear the high-score list")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "High scores cleared!")
		return nil
	}

	if flagScoresJSON {
		return store.ExportJSON(out)
	}

	scores, err := store.TopScores()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Flappy Rocket")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No high scores yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'arcade play' to set the first high score!")
		return nil
	}

	for i, entry := range scores {
		fmt.Fprintf(out, "  %s\n", tui.FormatScoreLine(i+1, entry))
	}

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Average: %.1f\n", stats.Runs, stats.AvgScore)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load stats: %v\n", err)
	}
	return nil
}
