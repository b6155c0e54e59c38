package maze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/scene"
	"github.com/vovakirdan/amazeing/internal/world"
)

const (
	testSeed = uint64(20240611)
	testTick = time.Second / 60
)

func newTestPlaying(t *testing.T) (*PlayingState, *scene.Graph) {
	t.Helper()
	g := scene.New()
	p := NewPlayingState(testSeed, g, Options{})
	p.Init()
	return p, g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// coinRoom returns an origin neighbour that holds a coin.
func coinRoom(p *PlayingState) maze.Coord {
	c := maze.Coord{Row: 0, Col: 1}
	if c == p.Chunks().KeyRoom() {
		c = maze.Coord{Row: 1, Col: 0}
	}
	return c
}

// standOn moves the player onto room c's item with one forward step.
func standOn(t *testing.T, p *PlayingState, c maze.Coord) *world.Room {
	t.Helper()
	r, ok := p.Chunks().Room(c)
	require.True(t, ok, "room %v not streamed", c)
	require.NotNil(t, r.Item)

	p.Camera().SetEye(r.Item.Position)
	p.Step(frame(core.ActionForward), testTick)
	require.Equal(t, c, p.Room())
	return r
}

func TestPlayingSpawn(t *testing.T) {
	p, g := newTestPlaying(t)

	assert.Equal(t, maze.Origin, p.Room())
	assert.Equal(t, spawnEye, p.Camera().Eye())
	assert.Equal(t, 13, p.Chunks().Len())
	assert.Positive(t, g.Len())
	assert.Zero(t, p.Coins())
	assert.False(t, p.HasKey())
}

func TestPlayingPause(t *testing.T) {
	p, _ := newTestPlaying(t)
	eye := p.Camera().Eye()

	out := p.Step(frame(core.ActionPause, core.ActionForward), testTick)
	assert.Equal(t, OutcomePause, out.Kind)
	assert.Equal(t, eye, p.Camera().Eye(), "paused step must not move")
	assert.Zero(t, p.Elapsed())
}

func TestPlayingMoveForward(t *testing.T) {
	p, _ := newTestPlaying(t)
	start := p.Camera().Eye()

	out := p.Step(frame(core.ActionForward), testTick)
	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.InDelta(t, start.Z()-0.05, p.Camera().Eye().Z(), 1e-5)
	assert.Equal(t, testTick, p.Elapsed())

	p.Step(frame(core.ActionTurnRight), testTick)
	assert.Greater(t, p.Camera().Yaw(), float32(-1.5708))
}

func TestPlayingCollectCoin(t *testing.T) {
	p, g := newTestPlaying(t)
	c := coinRoom(p)
	r := standOn(t, p, c)
	require.Equal(t, world.ItemCoin, r.Item.Kind)

	assert.Equal(t, PromptCollectCoin, p.Prompt())
	before := g.Len()

	out := p.Step(frame(core.ActionInteract), testTick)
	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.Equal(t, 1, p.Coins())
	assert.Nil(t, r.Item)
	assert.Equal(t, before-1, g.Len())
	assert.Empty(t, p.Prompt())
}

func TestPlayingLockNeedsKey(t *testing.T) {
	p, _ := newTestPlaying(t)
	r, ok := p.Chunks().Room(maze.Origin)
	require.True(t, ok)
	require.Equal(t, world.ItemLock, r.Item.Kind)

	p.Camera().SetEye(r.Item.Position)
	out := p.Step(frame(core.ActionInteract), testTick)
	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.Empty(t, p.Prompt())

	p.hasKey = true
	p.collected.Add(p.Chunks().KeyRoom())
	p.collected.Add(maze.Coord{Row: 3, Col: 3})

	out = p.Step(core.NewInputFrame(), testTick)
	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.Equal(t, PromptUnlock, p.Prompt())

	out = p.Step(frame(core.ActionInteract), testTick)
	assert.Equal(t, Outcome{Kind: OutcomeEscaped, Coins: 1}, out)
}

func TestPlayingSaveRestore(t *testing.T) {
	p, _ := newTestPlaying(t)
	c := coinRoom(p)
	standOn(t, p, c)
	p.Step(frame(core.ActionInteract), testTick)
	require.Equal(t, 1, p.Coins())

	snap := p.Save()
	assert.Equal(t, testSeed, snap.Seed)
	assert.Equal(t, c, snap.Room)
	assert.Equal(t, []maze.Coord{c}, snap.Collected)
	assert.Equal(t, 1, snap.Coins())

	g := scene.New()
	q := RestorePlayingState(snap, g, Options{})
	q.Init()

	assert.Equal(t, c, q.Room())
	assert.Equal(t, p.Camera().Eye(), q.Camera().Eye())
	assert.Equal(t, 1, q.Coins())
	assert.Equal(t, p.Elapsed(), q.Elapsed())

	r, ok := q.Chunks().Room(c)
	require.True(t, ok)
	assert.Nil(t, r.Item, "collected coin must not respawn")
}

func TestPlayingRoomName(t *testing.T) {
	p, _ := newTestPlaying(t)

	name, alpha := p.RoomName()
	assert.NotEmpty(t, name)
	assert.Zero(t, alpha)

	for p.Elapsed() < 2500*time.Millisecond {
		p.Step(core.NewInputFrame(), testTick)
	}
	_, alpha = p.RoomName()
	assert.InDelta(t, 1, alpha, 1e-9)

	for p.Elapsed() < 5*time.Second {
		p.Step(core.NewInputFrame(), testTick)
	}
	_, alpha = p.RoomName()
	assert.Zero(t, alpha)
}

func TestNameAlpha(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.5, 0.5625},
		{1, 1},
		{2.5, 1},
		{4.5, 0.5625},
		{5, 0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, nameAlpha(tc.t, 5), 1e-9, "t=%v", tc.t)
	}
}

func TestSnapshotVersion(t *testing.T) {
	p, _ := newTestPlaying(t)
	data, err := p.Save().Marshal()
	require.NoError(t, err)

	snap, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, p.Save(), snap)

	_, err = UnmarshalSnapshot([]byte(`{"version":99}`))
	assert.ErrorIs(t, err, ErrSnapshotVersion)

	_, err = UnmarshalSnapshot([]byte(`not json`))
	assert.Error(t, err)
}
