// Package maze implements the Lazer aMAZEing game: a first-person walk
// through an endless seeded maze, shown in the terminal as a top-down map.
package maze

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/amazeing/internal/config"
	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/registry"
	"github.com/vovakirdan/amazeing/internal/scene"
)

// ID and title under which the game registers.
const (
	GameID    = "maze"
	GameTitle = "Lazer aMAZEing"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events; the terminal owns stdout while playing.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// SetLogger sets the logger used by new games. Nil discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Menu buttons per phase.
var (
	menuButtons  = []string{"Start"}
	pauseButtons = []string{"Continue", "Main Menu"}
	endButtons   = []string{"Play Again", "Main Menu"}
)

// Game implements registry.Game for the maze.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MazeConfig
	logger  *log.Logger
	newSeed func() uint64

	state    State
	play     *PlayingState
	graph    *scene.Graph
	selected int
	tick     time.Duration

	// Navigation keys active on the previous tick. Held keys repeat, so
	// buttons move on the press edge only.
	wasForward, wasBackward bool
}

// New creates a new maze game instance.
func New() *Game {
	return &Game{
		graph:   scene.New(),
		logger:  logger,
		newSeed: rand.Uint64,
	}
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset loads the config and returns to the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = logger

	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	rate := runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.tick = time.Second / time.Duration(rate)

	g.endSession()
	g.state = State{Phase: PhaseMenu}
	g.selected = 0
}

// Resize adapts to a new terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.play != nil {
		g.play.Camera().SetAspect(w, h)
	}
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Playing returns the running session, or nil outside of play.
func (g *Game) Playing() *PlayingState {
	return g.play
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state.Phase {
	case PhaseMenu:
		if i, ok := g.pick(in, len(menuButtons)); ok && i == 0 {
			g.apply(EventStart{Seed: g.startSeed()})
		}
	case PhaseStory:
		if in.Has(core.ActionInteract) || in.Has(core.ActionConfirm) {
			g.apply(EventContinue{})
		}
	case PhasePlaying:
		out := g.play.Step(in, g.tick)
		switch out.Kind {
		case OutcomePause:
			g.apply(EventPause{Snapshot: g.play.Save()})
		case OutcomeEscaped:
			g.apply(EventEscaped{Coins: out.Coins})
		}
	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.apply(EventResume{})
			break
		}
		if i, ok := g.pick(in, len(pauseButtons)); ok {
			if i == 0 {
				g.apply(EventResume{})
			} else {
				g.apply(EventMenu{})
			}
		}
	case PhaseEnded:
		if i, ok := g.pick(in, len(endButtons)); ok {
			if i == 0 {
				g.apply(EventPlayAgain{Seed: g.newSeed()})
			} else {
				g.apply(EventMenu{})
			}
		}
	}
	g.wasForward = in.Has(core.ActionForward)
	g.wasBackward = in.Has(core.ActionBackward)
	return core.StepResult{State: g.State()}
}

// pick moves the button selection and reports a confirmed button.
func (g *Game) pick(in core.InputFrame, n int) (int, bool) {
	if in.Has(core.ActionForward) && !g.wasForward {
		g.selected = (g.selected + n - 1) % n
	}
	if in.Has(core.ActionBackward) && !g.wasBackward {
		g.selected = (g.selected + 1) % n
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionInteract) {
		return g.selected, true
	}
	return 0, false
}

func (g *Game) startSeed() uint64 {
	if g.runtime.Seed != 0 {
		return g.runtime.Seed
	}
	return g.newSeed()
}

// apply runs a transition and starts or stops the session to match.
func (g *Game) apply(e Event) {
	prev := g.state
	next := Transition(prev, e)
	if next == prev {
		return
	}
	g.state = next
	g.selected = 0
	g.logger.Debug("phase", "from", prev.Phase, "to", next.Phase)

	switch next.Phase {
	case PhasePlaying:
		switch {
		case next.Fresh:
			g.startSession(NewPlayingState(next.Seed, g.graph, g.options()))
			g.state.Fresh = false
		case next.Saved != nil:
			g.startSession(RestorePlayingState(*next.Saved, g.graph, g.options()))
			g.state.Saved = nil
		}
	default:
		// Paused keeps only the snapshot in state.
		g.endSession()
	}
}

func (g *Game) options() Options {
	return Options{
		Params:        g.cfg.Params(),
		CameraOptions: g.cfg.CameraOptions(),
		TurnPixels:    g.cfg.Camera.TurnPixels,
		NameDuration:  g.cfg.NameDuration(),
		Logger:        g.logger,
	}
}

func (g *Game) startSession(p *PlayingState) {
	g.endSession()
	g.play = p
	g.play.Camera().SetAspect(g.runtime.ScreenW, g.runtime.ScreenH)
	g.play.Init()
}

func (g *Game) endSession() {
	if g.play != nil {
		g.play.Clean()
		g.play = nil
	}
	g.graph.Reset()
}

// State returns the score and status for the platform. Score is the coin
// count of the finished run.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		GameOver: g.state.Phase == PhaseEnded,
		Paused:   g.state.Phase == PhasePaused,
	}
	switch {
	case g.state.Phase == PhaseEnded:
		gs.Score = g.state.Coins
	case g.play != nil:
		gs.Score = g.play.Coins()
	case g.state.Saved != nil:
		gs.Score = g.state.Saved.Coins()
	}
	return gs
}

// Snapshot returns the running or paused session, if there is one.
func (g *Game) Snapshot() (Snapshot, bool) {
	switch {
	case g.play != nil:
		return g.play.Save(), true
	case g.state.Phase == PhasePaused && g.state.Saved != nil:
		return *g.state.Saved, true
	}
	return Snapshot{}, false
}

// Restore jumps straight into a saved session from the menu.
func (g *Game) Restore(s Snapshot) error {
	if g.state.Phase != PhaseMenu {
		return fmt.Errorf("maze: restore from %s", g.state.Phase)
	}
	g.apply(EventLoad{Snapshot: s})
	return nil
}

// SaveState encodes the running session for a save slot.
func (g *Game) SaveState() ([]byte, error) {
	s, ok := g.Snapshot()
	if !ok {
		return nil, registry.ErrNothingToSave
	}
	return s.Marshal()
}

// LoadState resumes a session encoded by SaveState.
func (g *Game) LoadState(data []byte) error {
	s, err := UnmarshalSnapshot(data)
	if err != nil {
		return err
	}
	return g.Restore(s)
}

// SaveSeed returns the seed of the running or paused session.
func (g *Game) SaveSeed() uint64 {
	s, ok := g.Snapshot()
	if !ok {
		return 0
	}
	return s.Seed
}
