package world

import (
	"cmp"
	"io"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/seed"
)

const (
	itemSpin  float32 = math.Pi / 120
	itemFloat float32 = 0.0025
)

// Collected is the set of rooms whose item has been picked up.
type Collected map[maze.Coord]struct{}

// Has reports whether room c's item was collected.
func (s Collected) Has(c maze.Coord) bool {
	_, ok := s[c]
	return ok
}

// Add marks room c's item as collected.
func (s Collected) Add(c maze.Coord) {
	s[c] = struct{}{}
}

// Sorted returns the collected rooms in row, column order.
func (s Collected) Sorted() []maze.Coord {
	out := make([]maze.Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCoords)
	return out
}

// Clone returns an independent copy of the set.
func (s Collected) Clone() Collected {
	out := make(Collected, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// LiveItem is a room's collectible while it is in the scene.
type LiveItem struct {
	Kind     ItemKind
	Position mgl32.Vec3
	Yaw      float32
	handle   Handle
}

// LiveMonster is a monster sprite while it is in the scene.
type LiveMonster struct {
	Spawn   MonsterSpawn
	Visible bool
	state   *Monster
	handle  Handle
}

// Room is a materialized room.
type Room struct {
	Layout   Layout
	Item     *LiveItem
	Monsters []*LiveMonster
	node     Handle
}

// Coord returns the room's coordinate.
func (r *Room) Coord() maze.Coord {
	return r.Layout.Coord
}

// Walls returns the room's collision walls.
func (r *Room) Walls() []Wall {
	return r.Layout.Walls
}

// Chunks keeps the rooms around the player materialized in a Scene.
type Chunks struct {
	seed    uint64
	params  Params
	keyRoom maze.Coord
	scene   Scene
	logger  *log.Logger
	rooms   map[maze.Coord]*Room
}

// NewChunks creates an empty chunk manager. A nil logger discards output.
func NewChunks(worldSeed uint64, params Params, scene Scene, logger *log.Logger) *Chunks {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Chunks{
		seed:    worldSeed,
		params:  params.Normalize(),
		keyRoom: seed.KeyRoom(worldSeed),
		scene:   scene,
		logger:  logger,
		rooms:   make(map[maze.Coord]*Room),
	}
}

// Params returns the world dimensions in use.
func (c *Chunks) Params() Params {
	return c.params
}

// KeyRoom returns the room holding the key.
func (c *Chunks) KeyRoom() maze.Coord {
	return c.keyRoom
}

// Update evicts rooms farther than ChunkRange from center and materializes
// every missing room within it. Rooms in collected get no item.
func (c *Chunks) Update(center maze.Coord, collected Collected) {
	r := int64(c.params.ChunkRange)

	for _, coord := range c.Coords() {
		if coord.Manhattan(center) > r {
			c.release(c.rooms[coord])
			delete(c.rooms, coord)
			c.logger.Debug("evicted room", "room", coord)
		}
	}

	for dy := -r; dy <= r; dy++ {
		width := r - abs(dy)
		for dx := -width; dx <= width; dx++ {
			coord := maze.Coord{Row: center.Row + dx, Col: center.Col + dy}
			if _, ok := c.rooms[coord]; ok {
				continue
			}
			c.rooms[coord] = c.materialize(coord, !collected.Has(coord))
			c.logger.Debug("materialized room", "room", coord)
		}
	}
}

// Room returns a materialized room.
func (c *Chunks) Room(coord maze.Coord) (*Room, bool) {
	room, ok := c.rooms[coord]
	return room, ok
}

// Len returns the number of materialized rooms.
func (c *Chunks) Len() int {
	return len(c.rooms)
}

// Coords returns the materialized room coordinates in sorted order.
func (c *Chunks) Coords() []maze.Coord {
	out := make([]maze.Coord, 0, len(c.rooms))
	for coord := range c.rooms {
		out = append(out, coord)
	}
	slices.SortFunc(out, compareCoords)
	return out
}

// Clear releases every room.
func (c *Chunks) Clear() {
	for _, coord := range c.Coords() {
		c.release(c.rooms[coord])
		delete(c.rooms, coord)
	}
}

// CollectItem removes the item of room coord from the scene and returns
// its kind. It returns ItemNone when the room is absent or empty.
func (c *Chunks) CollectItem(coord maze.Coord) ItemKind {
	room, ok := c.rooms[coord]
	if !ok || room.Item == nil {
		return ItemNone
	}
	kind := room.Item.Kind
	c.scene.Remove(room.Item.handle)
	room.Item = nil
	c.logger.Debug("collected item", "room", coord, "item", kind)
	return kind
}

// AnimateItems spins every live item and bobs it by the play time.
func (c *Chunks) AnimateItems(elapsed time.Duration) {
	bob := float32(math.Sin(elapsed.Seconds())) * itemFloat
	for _, coord := range c.Coords() {
		item := c.rooms[coord].Item
		if item == nil {
			continue
		}
		item.Yaw += itemSpin
		item.Position[1] += bob
		c.scene.SetTransform(item.handle, item.Position, item.Yaw)
	}
}

// UpdateMonsters refreshes monster visibility for an eye position at play
// time now.
func (c *Chunks) UpdateMonsters(eye mgl32.Vec3, now time.Duration) {
	for _, coord := range c.Coords() {
		for _, m := range c.rooms[coord].Monsters {
			visible := m.state.Update(eye.Sub(m.Spawn.Position).Len(), now)
			if visible != m.Visible {
				m.Visible = visible
				c.scene.SetVisible(m.handle, visible)
			}
		}
	}
}

func (c *Chunks) materialize(coord maze.Coord, withItem bool) *Room {
	layout := GenerateLayout(c.seed, coord, c.params, c.keyRoom, withItem)
	x, z := c.params.RoomOrigin(coord)

	room := &Room{Layout: layout}
	room.node = c.scene.Add(Node{
		Kind:     NodeRoom,
		Room:     coord,
		Position: mgl32.Vec3{x, 0, z},
		Visible:  true,
		Hue:      layout.Hue,
		Walls:    layout.Walls,
	})

	if layout.HasItem() {
		item := &LiveItem{Kind: layout.Item.Kind, Position: layout.Item.Position}
		item.handle = c.scene.Add(Node{
			Kind:     NodeItem,
			Room:     coord,
			Position: item.Position,
			Visible:  true,
			Item:     item.Kind,
		})
		room.Item = item
	}

	for _, spawn := range layout.Monsters {
		m := &LiveMonster{Spawn: spawn, state: NewMonster(c.params.ChunkWidth())}
		m.handle = c.scene.Add(Node{
			Kind:     NodeMonster,
			Room:     coord,
			Position: spawn.Position,
			Yaw:      spawn.Yaw,
		})
		room.Monsters = append(room.Monsters, m)
	}
	return room
}

func (c *Chunks) release(room *Room) {
	c.scene.Remove(room.node)
	if room.Item != nil {
		c.scene.Remove(room.Item.handle)
	}
	for _, m := range room.Monsters {
		c.scene.Remove(m.handle)
	}
}

func compareCoords(a, b maze.Coord) int {
	if n := cmp.Compare(a.Row, b.Row); n != 0 {
		return n
	}
	return cmp.Compare(a.Col, b.Col)
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
