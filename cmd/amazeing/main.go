// amazeing is a terminal explorer for an endless seeded maze.
//
// Usage:
//
//	amazeing play             - Play, resuming the save slot if it exists
//	amazeing menu             - Launcher with save slots and high scores
//	amazeing serve            - Start SSH server for remote play
//	amazeing scores           - Show escapes and save slots
//	amazeing saves            - List or delete save slots
//	amazeing room <row> <col> - Print the floor plan of one room
//	amazeing names            - Print room names around the start
//
// Global flags:
//
//	--seed <value>  - World seed (0 = random)
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.amazeing/amazeing.db)
//	--redis <addr>  - Keep save slots in Redis instead of the database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazeing/internal/games/maze"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       uint64
	flagDBPath     string
	flagRedis      string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "amazeing",
	Short: "Lazer aMAZEing - escape an endless maze in your terminal",
	Long: `Lazer aMAZEing drops you into an endless maze generated from a seed.
Find the key, collect coins on the way and return to the lock in the
starting room to escape.

Available commands:
  play     - Play directly
  menu     - Launcher with save slots and high scores
  serve    - Start SSH server for remote play
  scores   - View escapes and save slots
  saves    - Manage save slots
  room     - Print the floor plan of one room
  names    - Print room names

Examples:
  amazeing play --seed 42
  amazeing menu
  amazeing serve --ssh :2222
  amazeing room 0 1 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		maze.SetConfigPath(flagConfig)
		maze.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "World seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.amazeing/amazeing.db", "Path to scores and saves database")
	rootCmd.PersistentFlags().StringVar(&flagRedis, "redis", "", "Redis address for save slots (default: use the database)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Monster density preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(roomCmd)
	rootCmd.AddCommand(namesCmd)
}
