package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazeing/internal/config"
	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/names"
	"github.com/vovakirdan/amazeing/internal/seed"
	"github.com/vovakirdan/amazeing/internal/world"
)

var flagRadius int

var roomCmd = &cobra.Command{
	Use:   "room <row> <col>",
	Short: "Print the floor plan of one room",
	Long: `Generate one room of the world given by --seed and print its name,
tint, item and floor plan. The same seed always prints the same room.

Plan legend:
  + wall post   │ ─ walls   L lock   K key   $ coin   M monster

Examples:
  amazeing room 0 0 --seed 42
  amazeing room -- -3 12 --seed 42`,
	Args: cobra.ExactArgs(2),
	RunE: runRoom,
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print room names around the start",
	Long: `Print the names of every room within --radius steps of room (0, 0).

Examples:
  amazeing names --seed 42
  amazeing names --seed 42 --radius 4`,
	Args: cobra.NoArgs,
	RunE: runNames,
}

func init() {
	namesCmd.Flags().IntVar(&flagRadius, "radius", 2, "Manhattan radius around the start")
}

func parseCoord(row, col string) (maze.Coord, error) {
	r, err := strconv.ParseInt(row, 10, 64)
	if err != nil {
		return maze.Coord{}, fmt.Errorf("invalid row %q: %w", row, err)
	}
	c, err := strconv.ParseInt(col, 10, 64)
	if err != nil {
		return maze.Coord{}, fmt.Errorf("invalid col %q: %w", col, err)
	}
	return maze.Coord{Row: r, Col: c}, nil
}

func runRoom(cmd *cobra.Command, args []string) error {
	c, err := parseCoord(args[0], args[1])
	if err != nil {
		return err
	}

	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyMazePreset(&cfg, config.DifficultyPreset(flagDifficulty))

	printRoom(cmd.OutOrStdout(), flagSeed, c, cfg.Params())
	return nil
}

func printRoom(w io.Writer, worldSeed uint64, c maze.Coord, p world.Params) {
	keyRoom := seed.KeyRoom(worldSeed)
	layout := world.GenerateLayout(worldSeed, c, p, keyRoom, true)

	title := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(w, title.Render(fmt.Sprintf("Room %s  %s", c, names.Display(worldSeed, c))))
	fmt.Fprintf(w, "seed %d  hue %.3f  item %s  monsters %d  key room %s\n\n",
		worldSeed, layout.Hue, layout.Item.Kind, len(layout.Monsters), keyRoom)
	fmt.Fprintln(w, layout.PlanString(p))
}

func runNames(cmd *cobra.Command, _ []string) error {
	if flagRadius < 0 {
		return fmt.Errorf("invalid --radius %d", flagRadius)
	}

	w := cmd.OutOrStdout()
	n := int64(flagRadius)
	for r := -n; r <= n; r++ {
		for c := -n; c <= n; c++ {
			coord := maze.Coord{Row: r, Col: c}
			if coord.Manhattan(maze.Origin) > n {
				continue
			}
			fmt.Fprintf(w, "%-12s %s\n", coord, names.Generate(flagSeed, coord))
		}
	}
	return nil
}
