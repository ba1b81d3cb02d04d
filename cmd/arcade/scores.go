package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

const topRuns = 10

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Print the best score of every game. With a game id, also print its top
runs from the history database (scores.history in arcade.yaml).

Examples:
  arcade scores
  arcade scores tetris
  arcade scores --interactive
  arcade scores --clear snake`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the given game")
}

func runScores(cmd *cobra.Command, args []string) error {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
		}
	}
	if flagClear && gameID == "" {
		return fmt.Errorf("--clear needs a game id")
	}

	e, err := setup(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if flagClear {
		return clearRuns(cmd.OutOrStdout(), e.scores.History(), gameID)
	}

	if flagInteractive {
		w, h := terminalSize()
		return tui.RunScoreboard(e.scores.All(), e.scores.History(), gameID, w, h)
	}

	out := cmd.OutOrStdout()
	printBest(out, e.scores.All())
	if gameID == "" {
		return nil
	}
	return printRuns(out, e.scores.History(), gameID)
}

func printBest(out io.Writer, best map[string]int) {
	fmt.Fprintln(out, "Best scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s  %s\n", "Game", "Best")
	fmt.Fprintf(out, "  %-16s  %s\n", "----", "----")
	for _, g := range registry.List() {
		fmt.Fprintf(out, "  %-16s  %d\n", g.Title, best[g.ID])
	}
}

func printRuns(out io.Writer, history *storage.Store, gameID string) error {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Top runs - %s\n", registry.Title(gameID))
	fmt.Fprintln(out)

	if history == nil {
		fmt.Fprintln(out, "Run history is disabled (scores.history: false).")
		return nil
	}
	runs, err := history.TopScores(gameID, topRuns)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first score!\n", gameID)
		return nil
	}
	if top, err := history.HighScore(gameID); err == nil {
		fmt.Fprintf(out, "Best run: %d\n\n", top)
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, r.Score, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := history.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d runs, average %.0f, last played %s\n", stats.GamesCount, stats.AvgScore, stats.LastPlayed.Local().Format("2006-01-02"))
	}
	return nil
}

// clearRuns wipes the run history of one game. The best-score table is
// left alone.
func clearRuns(out io.Writer, history *storage.Store, gameID string) error {
	if history == nil {
		return fmt.Errorf("run history is disabled (scores.history: false)")
	}
	if err := history.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared run history for %s.\n", registry.Title(gameID))
	return nil
}
