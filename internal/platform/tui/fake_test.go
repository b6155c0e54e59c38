package tui

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/registry"
	"github.com/vovakirdan/amazeing/internal/savegame"
	"github.com/vovakirdan/amazeing/internal/storage"
)

const fakeGameID = "tui-fake"

func init() {
	registry.Register(fakeGameID, func() registry.Game { return &fakeGame{} })
}

// fakeGame records its input and lets tests drive its state.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	state   core.GameState
	running bool
	loaded  []byte
	resized [2]int
}

func (g *fakeGame) ID() string    { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if in.Has(core.ActionConfirm) {
		g.running = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) SaveState() ([]byte, error) {
	if !g.running {
		return nil, registry.ErrNothingToSave
	}
	return []byte(`{"fake":true}`), nil
}

func (g *fakeGame) LoadState(data []byte) error {
	if !strings.HasPrefix(string(data), "{") {
		return errors.New("bad payload")
	}
	g.loaded = data
	g.running = true
	return nil
}

func (g *fakeGame) SaveSeed() uint64 { return 99 }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

// memSaves is an in-memory savegame.Repository.
type memSaves struct {
	mu    sync.Mutex
	slots map[string]savegame.Slot
}

func newMemSaves(slots ...savegame.Slot) *memSaves {
	m := &memSaves{slots: make(map[string]savegame.Slot)}
	for _, s := range slots {
		m.slots[s.Name] = s
	}
	return m
}

func (m *memSaves) Save(_ context.Context, slot savegame.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot.Name] = slot
	return nil
}

func (m *memSaves) Load(_ context.Context, name string) (savegame.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[name]
	if !ok {
		return savegame.Slot{}, savegame.ErrNotFound
	}
	return s, nil
}

func (m *memSaves) List(context.Context) ([]savegame.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []savegame.Slot
	for _, s := range m.slots {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b savegame.Slot) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *memSaves) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slots[name]; !ok {
		return savegame.ErrNotFound
	}
	delete(m.slots, name)
	return nil
}

// memScores is an in-memory ScoreStore.
type memScores struct {
	saved []storage.ScoreEntry
}

func (m *memScores) SaveScore(gameID string, score int) (int64, error) {
	id := int64(len(m.saved) + 1)
	m.saved = append(m.saved, storage.ScoreEntry{ID: id, GameID: gameID, Score: score})
	return id, nil
}

func (m *memScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, e := range m.saved {
		if e.GameID == gameID {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b storage.ScoreEntry) int { return b.Score - a.Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
