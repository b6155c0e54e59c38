package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/registry"
	"github.com/vovakirdan/amazeing/internal/savegame"
)

const (
	statusDuration = 2 * time.Second
	storageTimeout = 3 * time.Second
)

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options wires optional persistence into a Model.
type Options struct {
	Scores ScoreSaver          // finished runs; nil disables
	Saves  savegame.Repository // save slots; nil disables
	Slot   string              // slot used by ctrl+s and autosave
	Resume []byte              // session to load at start, from Slot
	Logger *log.Logger
	// AllowBack lets B leave a paused or finished game for the launcher.
	AllowBack bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame *core.InputFrame
	held       *heldKeys
	pointer    *pointer
	gameState  core.GameState
	status     string
	statusTill time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Slot == "" {
		opts.Slot = savegame.DefaultSlot
	}
	frame := core.NewInputFrame()

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: &frame,
		held:       newHeldKeys(holdWindow),
		pointer:    &pointer{},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if len(m.opts.Resume) > 0 {
		if p, ok := m.game.(registry.Persistent); ok {
			if err := p.LoadState(m.opts.Resume); err != nil {
				m.opts.Logger.Error("cannot resume slot", "slot", m.opts.Slot, "err", err)
			} else {
				m.opts.Logger.Info("resumed slot", "slot", m.opts.Slot)
			}
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.handle(msg, m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveSlot()
		return m, nil
	case "f2":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.autosave()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionBack:
		if m.opts.AllowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.autosave()
			m.backToMenu = true
		}
	case m.keyMapper.IsHeld(action):
		m.held.press(action, time.Now())
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	m.held.apply(m.inputFrame, now)

	result := m.game.Step(*m.inputFrame)
	m.gameState = result.State
	if m.gameState.Paused || m.gameState.GameOver {
		m.held.release()
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.opts.Scores != nil {
			if _, err := m.opts.Scores.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.opts.Logger.Warn("cannot save score", "err", err)
			}
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	if m.status != "" && now.After(m.statusTill) {
		m.status = ""
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSlot writes the running session to the configured slot.
func (m *Model) saveSlot() {
	if err := m.writeSlot(); err != nil {
		m.setStatus("Save failed: " + err.Error())
		m.opts.Logger.Warn("cannot save slot", "slot", m.opts.Slot, "err", err)
		return
	}
	m.setStatus(fmt.Sprintf("Saved to slot %q", m.opts.Slot))
}

// autosave stores a running session before leaving, when slots are enabled.
func (m *Model) autosave() {
	err := m.writeSlot()
	switch {
	case err == nil:
		m.opts.Logger.Info("autosaved", "slot", m.opts.Slot)
	case errors.Is(err, registry.ErrNothingToSave), errors.Is(err, errNoSaves):
	default:
		m.opts.Logger.Warn("autosave failed", "slot", m.opts.Slot, "err", err)
	}
}

var errNoSaves = errors.New("save slots are not available")

func (m *Model) writeSlot() error {
	p, ok := m.game.(registry.Persistent)
	if !ok || m.opts.Saves == nil {
		return errNoSaves
	}
	data, err := p.SaveState()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	return m.opts.Saves.Save(ctx, savegame.Slot{
		Name:    m.opts.Slot,
		GameID:  m.game.ID(),
		Seed:    p.SaveSeed(),
		Payload: data,
	})
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTill = time.Now().Add(statusDuration)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".amazeing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot write screenshot", "err", err)
		return
	}
	m.setStatus("Screenshot saved to " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the launcher.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
