package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/savegame"
)

func newTestModel(t *testing.T, opts Options) (Model, *fakeGame) {
	t.Helper()
	g := &fakeGame{}
	m := NewModel(g, core.DefaultConfig(), opts)
	require.NotNil(t, m.Init())
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelHeldMovement(t *testing.T) {
	m, g := newTestModel(t, Options{})

	m = update(t, m, runeKey('w'))
	m = tick(t, m)
	assert.True(t, g.last().Has(core.ActionForward))

	m = tick(t, m)
	assert.True(t, g.last().Has(core.ActionForward), "key stays held within the window")

	m = update(t, m, TickMsg(time.Now().Add(time.Second)))
	assert.False(t, g.last().Has(core.ActionForward))
}

func TestModelOneShotActions(t *testing.T) {
	m, g := newTestModel(t, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	assert.True(t, g.last().Has(core.ActionInteract))

	tick(t, m)
	assert.False(t, g.last().Has(core.ActionInteract), "one-shot actions last one tick")
}

func TestModelPauseReleasesHeldKeys(t *testing.T) {
	m, g := newTestModel(t, Options{})

	m = update(t, m, runeKey('w'))
	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	require.True(t, g.state.Paused)

	tick(t, m)
	assert.False(t, g.last().Has(core.ActionForward))
}

func TestModelSaveSlot(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.Status(), "Save failed")

	saves := newMemSaves()
	m, _ = newTestModel(t, Options{Saves: saves, Slot: "mine"})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, `Saved to slot "mine"`, m.Status())

	slot, err := saves.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Equal(t, fakeGameID, slot.GameID)
	assert.Equal(t, uint64(99), slot.Seed)
	assert.JSONEq(t, `{"fake":true}`, string(slot.Payload))
}

func TestModelBackAutosaves(t *testing.T) {
	saves := newMemSaves()
	m, _ := newTestModel(t, Options{Saves: saves, AllowBack: true})

	m = update(t, m, runeKey('b'))
	assert.False(t, m.BackToMenu(), "back only works while paused or over")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	m = update(t, m, runeKey('b'))
	assert.True(t, m.BackToMenu())
	assert.Empty(t, m.View())

	_, err := saves.Load(context.Background(), savegame.DefaultSlot)
	assert.NoError(t, err)
}

func TestModelQuitAutosaves(t *testing.T) {
	saves := newMemSaves()
	m, _ := newTestModel(t, Options{Saves: saves})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	next, cmd := m.Update(runeKey('q'))
	assert.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())

	_, err := saves.Load(context.Background(), savegame.DefaultSlot)
	assert.NoError(t, err)
}

func TestModelResume(t *testing.T) {
	_, g := newTestModel(t, Options{Resume: []byte(`{"x":1}`)})
	assert.Equal(t, []byte(`{"x":1}`), g.loaded)

	_, g = newTestModel(t, Options{Resume: []byte("broken")})
	assert.Nil(t, g.loaded)
}

func TestModelRecordsScoreOnce(t *testing.T) {
	scores := &memScores{}
	m, g := newTestModel(t, Options{Scores: scores})

	g.state = core.GameState{GameOver: true, Score: 3}
	m = tick(t, m)
	m = tick(t, m)
	require.Len(t, scores.saved, 1)
	assert.Equal(t, 3, scores.saved[0].Score)

	g.state = core.GameState{}
	m = tick(t, m)
	g.state = core.GameState{GameOver: true}
	tick(t, m)
	assert.Len(t, scores.saved, 2, "escapes without coins are recorded too")
}

func TestModelResize(t *testing.T) {
	m, g := newTestModel(t, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, [2]int{100, 30}, g.resized)
	assert.Equal(t, 1, g.resets, "resizable games keep their session")
	assert.Contains(t, m.View(), "fake game")
}
