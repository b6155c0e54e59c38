package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazeing/internal/games/maze"
	"github.com/vovakirdan/amazeing/internal/platform/tui"
	"github.com/vovakirdan/amazeing/internal/registry"
	"github.com/vovakirdan/amazeing/internal/savegame"
)

var (
	flagSlot  string
	flagFresh bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze",
	Long: `Start playing. If the save slot exists it is resumed.

Controls:
  W/S, Up/Down  - Move forward/back
  A/D           - Strafe
  Left/Right    - Turn (also J/L, or drag with the mouse)
  I/K           - Look up/down
  Space/E/Click - Collect, unlock, continue
  P/Esc         - Pause
  Ctrl+S        - Save to the slot
  F2            - Screenshot
  Q/Ctrl+C      - Quit (saves a running session)

Difficulty options:
  easy   - Half as many monsters
  normal - Default monster density
  hard   - Twice as many monsters

Examples:
  amazeing play
  amazeing play --seed 42 --fresh
  amazeing play --slot work --redis localhost:6379
  amazeing play --difficulty hard --log-file maze.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSlot, "slot", savegame.DefaultSlot, "Save slot to resume and save to")
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Start a new session even if the slot exists")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := savegame.ValidateName(flagSlot); err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to --log-file or nowhere.
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

	game, err := registry.Create(maze.GameID)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Saves:  st.saves,
		Slot:   flagSlot,
		Logger: logger,
	}
	if scores := st.scores(); scores != nil {
		opts.Scores = scores
	}
	if !flagFresh {
		opts.Resume, err = loadResume(st.saves)
		if err != nil {
			return err
		}
	}

	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadResume returns the payload stored in --slot, or nil if there is none.
func loadResume(saves savegame.Repository) ([]byte, error) {
	if saves == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	slot, err := saves.Load(ctx, flagSlot)
	switch {
	case errors.Is(err, savegame.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	case slot.GameID != maze.GameID:
		return nil, fmt.Errorf("slot %q belongs to %q", flagSlot, slot.GameID)
	}
	return slot.Payload, nil
}
