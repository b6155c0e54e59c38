package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazeing/internal/games/maze"
	"github.com/vovakirdan/amazeing/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher",
	Long: `Start the launcher: begin a new game, continue a save slot or view
high scores. Leaving a paused or finished game with B returns here.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  X/Delete     - Delete the selected save slot
  Q            - Quit

Examples:
  amazeing menu
  amazeing menu --fps 30
  amazeing menu --redis localhost:6379`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("amazeing", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStores(logger)
	if err != nil {
		return err
	}
	defer st.Close()

	return tui.RunSession(runtimeConfig(), tui.SessionOptions{
		GameID: maze.GameID,
		Title:  maze.GameTitle,
		Scores: st.scores(),
		Saves:  st.saves,
		Logger: logger,
	})
}
