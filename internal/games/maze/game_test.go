package maze

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.newSeed = func() uint64 { return 42 }
	cfg := core.DefaultConfig()
	cfg.Seed = testSeed
	g.Reset(cfg)
	return g
}

// startPlaying confirms the menu and clicks through the story.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(frame(core.ActionConfirm))
	require.Equal(t, PhaseStory, g.Phase())
	for range StoryPages {
		g.Step(frame(core.ActionInteract))
	}
	require.Equal(t, PhasePlaying, g.Phase())
	require.NotNil(t, g.Playing())
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists(GameID))
	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, GameTitle, g.Title())

	_, ok := g.(registry.Persistent)
	assert.True(t, ok)
	_, ok = g.(registry.Resizable)
	assert.True(t, ok)
}

func TestGameFlow(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Nil(t, g.Playing())

	startPlaying(t, g)
	assert.Equal(t, testSeed, g.Playing().Seed())

	g.Step(frame(core.ActionForward))
	eye := g.Playing().Camera().Eye()

	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhasePaused, g.Phase())
	assert.True(t, g.State().Paused)
	assert.Nil(t, g.Playing(), "pause keeps only the snapshot")
	assert.Zero(t, g.graph.Len())

	g.Step(frame(core.ActionForward))
	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, eye, g.Playing().Camera().Eye(), "pause must freeze the session")

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionBackward))
	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Nil(t, g.Playing())
	assert.Zero(t, g.graph.Len())
}

func TestGameEscapeAndPlayAgain(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	p := g.Playing()
	p.hasKey = true
	p.collected.Add(p.Chunks().KeyRoom())
	lock, ok := p.Chunks().Room(p.Room())
	require.True(t, ok)
	p.Camera().SetEye(lock.Item.Position)

	g.Step(frame(core.ActionInteract))
	assert.Equal(t, PhaseEnded, g.Phase())
	assert.True(t, g.State().GameOver)
	assert.Zero(t, g.State().Score)

	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, uint64(42), g.Playing().Seed())
}

func TestGameSaveLoad(t *testing.T) {
	g := newTestGame(t)
	_, err := g.SaveState()
	assert.ErrorIs(t, err, registry.ErrNothingToSave)

	startPlaying(t, g)
	for range 10 {
		g.Step(frame(core.ActionForward))
	}
	data, err := g.SaveState()
	require.NoError(t, err)
	assert.Equal(t, testSeed, g.SaveSeed())

	h := newTestGame(t)
	require.NoError(t, h.LoadState(data))
	assert.Equal(t, PhasePlaying, h.Phase())
	assert.Equal(t, g.Playing().Camera().Eye(), h.Playing().Camera().Eye())
	assert.Equal(t, g.Playing().Room(), h.Playing().Room())

	assert.Error(t, h.LoadState(data), "load is only allowed from the menu")
	assert.Error(t, newTestGame(t).LoadState([]byte("{")))
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), GameTitle)

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	assert.Contains(t, screen.String(), StoryPages[0])
	assert.Contains(t, screen.String(), continueHint)

	for range StoryPages {
		g.Step(frame(core.ActionInteract))
	}
	g.Render(screen)
	out := screen.String()
	assert.Equal(t, playerGlyph, screen.Get(40, 12))
	assert.Equal(t, '↑', screen.Get(41, 12))

	cam := g.Playing().Camera()
	cam.LookAt(cam.Eye(), cam.Eye().Add(mgl32.Vec3{1, 0, 0}))
	g.Render(screen)
	assert.Equal(t, '→', screen.Get(41, 12), "the arrow follows the view")
	assert.Contains(t, out, "Coins: 0")
	assert.True(t, strings.ContainsRune(out, '+'), "map should draw wall posts")

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), pausedTitle)
	assert.Contains(t, screen.String(), "Main Menu")
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	p := g.Playing()

	g.Resize(120, 40)
	assert.Same(t, p, g.Playing())
}

func TestGameButtonsMoveOnPressEdge(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	g.Step(frame(core.ActionPause))
	require.Equal(t, PhasePaused, g.Phase())

	for range 5 {
		g.Step(frame(core.ActionBackward))
	}
	assert.Equal(t, 1, g.selected, "a held key moves the selection once")

	g.Step(frame())
	g.Step(frame(core.ActionBackward))
	assert.Equal(t, 0, g.selected)
}

func TestGamePauseRestoresSession(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	for range 400 {
		g.Step(frame())
	}
	before := g.Playing()
	name, alpha := before.RoomName()
	require.Zero(t, alpha, "the room name has faded")

	g.Step(frame(core.ActionPause))
	require.Equal(t, PhasePaused, g.Phase())
	snap, ok := g.Snapshot()
	require.True(t, ok)
	assert.Equal(t, before.Save(), snap)
	data, err := g.SaveState()
	require.NoError(t, err, "a paused session can still be saved")
	assert.NotEmpty(t, data)
	assert.Equal(t, testSeed, g.SaveSeed())

	g.Step(frame(core.ActionPause))
	require.Equal(t, PhasePlaying, g.Phase())
	after := g.Playing()
	require.NotNil(t, after)
	assert.NotSame(t, before, after, "resume rebuilds the session from the snapshot")
	assert.Nil(t, g.state.Saved)
	assert.Equal(t, snap.Eye, after.Camera().Eye())
	assert.Equal(t, snap.Elapsed, after.Elapsed())
	assert.Equal(t, 13, after.Chunks().Len())

	for range 150 {
		g.Step(frame())
	}
	got, alpha := after.RoomName()
	assert.Equal(t, name, got)
	assert.Greater(t, alpha, 0.5, "the room name shows again after resuming")
}
