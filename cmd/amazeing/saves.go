package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazeing/internal/games/maze"
)

var flagDelete string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List or delete save slots",
	Long: `List the save slots, or delete one with --delete.

Examples:
  amazeing saves
  amazeing saves --redis localhost:6379
  amazeing saves --delete work`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the named slot")
}

func runSaves(cmd *cobra.Command, _ []string) error {
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
	if st.saves == nil {
		return fmt.Errorf("no save slot storage: open --db or pass --redis")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), connectTimeout)
	defer cancel()

	out := cmd.OutOrStdout()
	if flagDelete != "" {
		if err := st.saves.Delete(ctx, flagDelete); err != nil {
			return fmt.Errorf("delete slot %q: %w", flagDelete, err)
		}
		fmt.Fprintf(out, "Deleted slot %q.\n", flagDelete)
		return nil
	}

	slots, err := st.saves.List(ctx)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Fprintln(out, "No saved sessions.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Slot", "Seed", "Coins", "Room", "Updated")
	for _, s := range slots {
		coins, room := "?", "?"
		if snap, err := maze.UnmarshalSnapshot(s.Payload); err == nil {
			coins = strconv.Itoa(snap.Coins())
			room = snap.Room.String()
		}
		t.Row(s.Name, strconv.FormatUint(s.Seed, 10), coins, room, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out, t.Render())
	return nil
}
