package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazeing/internal/games/maze"
	"github.com/vovakirdan/amazeing/internal/platform/tui"
	"github.com/vovakirdan/amazeing/internal/storage"
)

var (
	flagPlain bool
	flagAll   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show escapes",
	Long: `Show recorded escapes, ranked by coins. Without --plain the
interactive scoreboard opens, with a second tab for save slots.

Examples:
  amazeing scores
  amazeing scores --plain
  amazeing scores --plain --all
  amazeing scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "With --plain, print every escape")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded escape")
}

func runScores(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("amazeing", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStores(logger)
	if err != nil {
		return err
	}
	defer st.Close()
	if st.db == nil {
		return errors.New("scores database is not available")
	}

	switch {
	case flagClear:
		if err := st.db.ClearScores(maze.GameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Escapes cleared.")
		return nil
	case flagPlain:
		return printScores(cmd.OutOrStdout(), st.db)
	}

	cfg := runtimeConfig()
	_, err = tui.RunScoreboard(maze.GameID, st.db, st.saves, cfg.ScreenW, cfg.ScreenH)
	return err
}

func printScores(w io.Writer, db *storage.Store) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagAll {
		scores, err = db.AllScores(maze.GameID)
	} else {
		scores, err = db.TopScores(maze.GameID, 10)
	}
	if err != nil {
		return err
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(w, titleStyle.Render("Escapes - "+maze.GameTitle))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No escapes recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'amazeing play' to set the first one!")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Coins", "Date")
	for i, e := range scores {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w, t.Render())

	stats, err := db.GetGameStats(maze.GameID)
	if err != nil {
		return err
	}
	high, err := db.HighScore(maze.GameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBest: %d coins  Escapes: %d  Average: %.1f  Last: %s\n",
		high, stats.GamesCount, stats.AvgScore, stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	return nil
}
