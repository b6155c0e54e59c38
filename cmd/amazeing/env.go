package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/term"

	"github.com/vovakirdan/amazeing/internal/config"
	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/games/maze"
	"github.com/vovakirdan/amazeing/internal/platform/tui"
	"github.com/vovakirdan/amazeing/internal/savegame"
	"github.com/vovakirdan/amazeing/internal/storage"
)

const connectTimeout = 5 * time.Second

// newLogger builds the command logger. Output goes to --log-file when set,
// otherwise to w. The game logs through the same logger.
func newLogger(prefix string, w io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	maze.SetLogger(logger)
	return logger, closer, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// stores holds the opened persistence back ends. Any of them may be nil.
type stores struct {
	db    *storage.Store
	redis *redis.Client
	saves savegame.Repository
}

// openStores opens the database and picks the save slot back end. A
// database that cannot be opened is logged and skipped; an unreachable
// Redis is an error since it was asked for explicitly.
func openStores(logger *log.Logger) (*stores, error) {
	s := &stores{}

	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "error", err)
	} else {
		s.db = db
		s.saves = db
	}

	if flagRedis == "" {
		return s, nil
	}

	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		logger.Warn("could not load config", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := savegame.NewRedisClient(ctx, flagRedis)
	if err != nil {
		s.Close()
		return nil, err
	}
	repo, err := savegame.NewRedisRepository(savegame.RedisConfig{
		Client: client,
		TTL:    cfg.Saves.RedisTTL,
	})
	if err != nil {
		client.Close()
		s.Close()
		return nil, err
	}
	s.redis = client
	s.saves = repo
	logger.Debug("save slots in redis", "address", flagRedis)
	return s, nil
}

// scores returns the database as a score store, or nil.
func (s *stores) scores() tui.ScoreStore {
	if s.db == nil {
		return nil
	}
	return s.db
}

// Close releases every opened back end.
func (s *stores) Close() {
	if s.redis != nil {
		s.redis.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}
