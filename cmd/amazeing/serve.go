package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazeing/internal/config"
	"github.com/vovakirdan/amazeing/internal/games/maze"
	"github.com/vovakirdan/amazeing/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the launcher. Escapes are
shared by every user; save slots are kept per SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.amazeing/host_key

Examples:
  amazeing serve                           # Listen on :23235 with auto-generated key
  amazeing serve --ssh :2222               # Listen on port 2222
  amazeing serve --host-key ./my_host_key  # Use specific host key
  amazeing serve --redis localhost:6379    # Keep save slots in Redis

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("amazeing-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	mazeCfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		logger.Warn("could not load config", "error", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.RedisAddr = flagRedis
	cfg.RedisTTL = mazeCfg.Saves.RedisTTL
	cfg.GameID = maze.GameID
	cfg.Title = maze.GameTitle
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting %s SSH server on %s\n", maze.GameTitle, server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
