package maze

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/camera"
	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/names"
	"github.com/vovakirdan/amazeing/internal/world"
)

// Action prompts shown when the player stands at an item.
const (
	PromptUnlock      = "Press SPACE to unlock and escape"
	PromptCollectKey  = "Press SPACE to collect key"
	PromptCollectCoin = "Press SPACE to collect coin"
)

const defaultTurnPixels float32 = 40

var (
	spawnEye = mgl32.Vec3{0, 0.25, 0}
	spawnAt  = mgl32.Vec3{0, 0.25, -1}
)

// OutcomeKind tells the session what a step of play led to.
type OutcomeKind uint8

const (
	OutcomeContinue OutcomeKind = iota
	OutcomePause
	OutcomeEscaped
)

// Outcome is the result of one PlayingState step. Coins is set for
// OutcomeEscaped.
type Outcome struct {
	Kind  OutcomeKind
	Coins int
}

// Options tune a playing session.
type Options struct {
	Params        world.Params
	CameraOptions []camera.Option
	TurnPixels    float32       // pointer pixels per turn key tick
	NameDuration  time.Duration // how long a room name is shown
	Logger        *log.Logger
}

func (o Options) normalize() Options {
	o.Params = o.Params.Normalize()
	if o.TurnPixels <= 0 {
		o.TurnPixels = defaultTurnPixels
	}
	if o.NameDuration <= 0 {
		o.NameDuration = 5 * time.Second
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// PlayingState is a running session in the maze: the camera, the streamed
// rooms and what the player carries.
type PlayingState struct {
	seed   uint64
	opts   Options
	camera *camera.FirstPerson
	chunks *world.Chunks

	room      maze.Coord
	collected world.Collected
	hasKey    bool

	elapsed   time.Duration
	nameStart time.Duration
	name      string
	prompt    string
}

// NewPlayingState starts a session in room (0,0) facing -z.
func NewPlayingState(seed uint64, scene world.Scene, opts Options) *PlayingState {
	return newPlayingState(seed, scene, opts, spawnEye, spawnAt, maze.Origin)
}

// RestorePlayingState rebuilds a session from a snapshot. Rooms are
// regenerated, never restored.
func RestorePlayingState(snap Snapshot, scene world.Scene, opts Options) *PlayingState {
	p := newPlayingState(snap.Seed, scene, opts, snap.Eye, snap.At, snap.Room)
	p.hasKey = snap.HasKey
	for _, c := range snap.Collected {
		p.collected.Add(c)
	}
	p.elapsed = snap.Elapsed
	p.nameStart = snap.Elapsed
	return p
}

func newPlayingState(seed uint64, scene world.Scene, opts Options, eye, at mgl32.Vec3, room maze.Coord) *PlayingState {
	opts = opts.normalize()
	return &PlayingState{
		seed:      seed,
		opts:      opts,
		camera:    camera.New(eye, at, opts.CameraOptions...),
		chunks:    world.NewChunks(seed, opts.Params, scene, opts.Logger),
		room:      room,
		collected: world.Collected{},
		name:      names.Display(seed, room),
	}
}

// Init streams in the rooms around the player.
func (p *PlayingState) Init() {
	p.chunks.Update(p.room, p.collected)
	p.opts.Logger.Info("entered maze", "seed", p.seed, "room", p.room, "key", p.chunks.KeyRoom())
}

// Clean releases every streamed room.
func (p *PlayingState) Clean() {
	p.chunks.Clear()
}

// Step advances the session by one tick of length dt.
func (p *PlayingState) Step(in core.InputFrame, dt time.Duration) Outcome {
	if in.Has(core.ActionPause) {
		return Outcome{Kind: OutcomePause}
	}

	p.look(in)
	p.move(in)

	p.elapsed += dt
	p.chunks.AnimateItems(p.elapsed)
	p.chunks.UpdateMonsters(p.camera.Eye(), p.elapsed)

	return p.interact(in.Has(core.ActionInteract))
}

func (p *PlayingState) look(in core.InputFrame) {
	dx, dy := in.PointerDX, in.PointerDY
	turn := p.opts.TurnPixels
	if in.Has(core.ActionTurnLeft) {
		dx -= turn
	}
	if in.Has(core.ActionTurnRight) {
		dx += turn
	}
	if in.Has(core.ActionLookUp) {
		dy -= turn
	}
	if in.Has(core.ActionLookDown) {
		dy += turn
	}
	if dx != 0 || dy != 0 {
		p.camera.Look(dx, dy)
	}
}

func (p *PlayingState) move(in core.InputFrame) {
	dir, ok := p.camera.MoveDir(
		in.Has(core.ActionForward),
		in.Has(core.ActionBackward),
		in.Has(core.ActionStrafeRight),
		in.Has(core.ActionStrafeLeft),
	)
	if !ok {
		return
	}

	eye := p.camera.Eye()
	room := p.opts.Params.RoomAt(eye)
	if room != p.room {
		p.chunks.Update(room, p.collected)
		p.name = names.Display(p.seed, room)
		p.nameStart = p.elapsed
		p.opts.Logger.Debug("entered room", "room", room, "name", p.name)
	}
	p.room = room

	next := eye.Add(dir)
	if r, ok := p.chunks.Room(room); ok {
		next = world.ResolveMove(r.Walls(), next, p.opts.Params.HalfCell())
	}
	p.camera.SetEye(next)
}

func (p *PlayingState) interact(pressed bool) Outcome {
	p.prompt = ""

	r, ok := p.chunks.Room(p.room)
	if !ok || r.Item == nil {
		return Outcome{Kind: OutcomeContinue}
	}
	if p.camera.Eye().Sub(r.Item.Position).Len() >= p.opts.Params.HalfCell() {
		return Outcome{Kind: OutcomeContinue}
	}

	switch r.Item.Kind {
	case world.ItemLock:
		if !p.hasKey {
			break
		}
		if pressed {
			p.opts.Logger.Info("escaped", "coins", p.Coins(), "elapsed", p.elapsed)
			return Outcome{Kind: OutcomeEscaped, Coins: p.Coins()}
		}
		p.prompt = PromptUnlock
	case world.ItemKey:
		if pressed {
			p.hasKey = true
			p.collect()
			break
		}
		p.prompt = PromptCollectKey
	case world.ItemCoin:
		if pressed {
			p.collect()
			break
		}
		p.prompt = PromptCollectCoin
	}
	return Outcome{Kind: OutcomeContinue}
}

func (p *PlayingState) collect() {
	p.collected.Add(p.room)
	p.chunks.CollectItem(p.room)
}

// Save captures everything needed to rebuild the session.
func (p *PlayingState) Save() Snapshot {
	return Snapshot{
		Version:   snapshotVersion,
		Eye:       p.camera.Eye(),
		At:        p.camera.At(),
		Seed:      p.seed,
		Room:      p.room,
		HasKey:    p.hasKey,
		Collected: p.collected.Sorted(),
		Elapsed:   p.elapsed,
	}
}

// Coins returns the number of coins collected.
func (p *PlayingState) Coins() int {
	n := len(p.collected)
	if p.hasKey {
		n--
	}
	return n
}

// HasKey reports whether the player carries the key.
func (p *PlayingState) HasKey() bool {
	return p.hasKey
}

// Room returns the room the player is in.
func (p *PlayingState) Room() maze.Coord {
	return p.room
}

// Seed returns the world seed.
func (p *PlayingState) Seed() uint64 {
	return p.seed
}

// Camera returns the player's camera.
func (p *PlayingState) Camera() *camera.FirstPerson {
	return p.camera
}

// Chunks returns the streamed rooms.
func (p *PlayingState) Chunks() *world.Chunks {
	return p.chunks
}

// Elapsed returns the play time.
func (p *PlayingState) Elapsed() time.Duration {
	return p.elapsed
}

// Prompt returns the action prompt for this tick, or "".
func (p *PlayingState) Prompt() string {
	return p.prompt
}

// RoomName returns the current room's display name and its opacity in
// [0, 1]. The name fades in and out over the configured duration.
func (p *PlayingState) RoomName() (string, float64) {
	t := p.elapsed - p.nameStart
	if t >= p.opts.NameDuration {
		return p.name, 0
	}
	return p.name, nameAlpha(t.Seconds(), p.opts.NameDuration.Seconds())
}

func nameAlpha(t, total float64) float64 {
	x := 2.5*t/total - 1.25
	return math.Max(0, math.Min(1, 1.5625-x*x))
}
