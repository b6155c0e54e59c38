// Package world turns the seeded generators into rooms: wall segments,
// openings, items and monsters, and streams those rooms in and out of a
// scene as the player moves.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/maze"
)

// Reference world constants.
const (
	DefaultCellSize        float32 = 1.75
	DefaultChunkRange              = 2
	DefaultMonsterDistance float32 = 5.0
	WallHeight             float32 = 2.0
	WallThickness          float32 = 0.1

	// itemDrop lowers items below eye height.
	itemDrop float32 = 0.1
)

// Params are the tunable dimensions of the world.
type Params struct {
	RoomSize        int     // cells per room side
	CellSize        float32 // world units per cell
	ChunkRange      int     // Manhattan radius of materialized rooms
	MonsterDistance float32 // room distance at which every opening spawns a monster
}

// DefaultParams returns the reference world dimensions.
func DefaultParams() Params {
	return Params{
		RoomSize:        maze.DefaultSize,
		CellSize:        DefaultCellSize,
		ChunkRange:      DefaultChunkRange,
		MonsterDistance: DefaultMonsterDistance,
	}
}

// Normalize fills zero fields with defaults. The window always reaches at
// least the neighbouring rooms.
func (p Params) Normalize() Params {
	d := DefaultParams()
	if p.RoomSize < 2 {
		p.RoomSize = d.RoomSize
	}
	if p.CellSize <= 0 {
		p.CellSize = d.CellSize
	}
	if p.ChunkRange <= 0 {
		p.ChunkRange = d.ChunkRange
	}
	if p.MonsterDistance <= 0 {
		p.MonsterDistance = d.MonsterDistance
	}
	return p
}

// HalfCell is half a cell's width, the reach of walls and items.
func (p Params) HalfCell() float32 {
	return p.CellSize / 2
}

// RoomWidth is the world width of one room.
func (p Params) RoomWidth() float32 {
	return p.CellSize * float32(p.RoomSize)
}

// ChunkWidth is the distance under which monsters react to the player.
func (p Params) ChunkWidth() float32 {
	return (float32(p.RoomSize) + 0.5) * p.CellSize
}

// RoomOrigin returns the world x and z of cell (0,0) of room c.
func (p Params) RoomOrigin(c maze.Coord) (x, z float32) {
	offset := float32(p.RoomSize/2) * -p.CellSize
	x = offset + float32(c.Col*int64(p.RoomSize))*p.CellSize
	z = -(offset + float32(c.Row*int64(p.RoomSize))*p.CellSize)
	return x, z
}

// CellPosition returns the floor-level center of a cell.
// Cell rows run along +x and cell columns along -z.
func (p Params) CellPosition(c maze.Coord, cell maze.Cell) mgl32.Vec3 {
	x, z := p.RoomOrigin(c)
	return mgl32.Vec3{
		x + float32(cell.Row)*p.CellSize,
		0,
		z - float32(cell.Col)*p.CellSize,
	}
}

// RoomAt returns the room containing a world position.
func (p Params) RoomAt(pos mgl32.Vec3) maze.Coord {
	w := float64(p.RoomWidth())
	return maze.Coord{
		Row: int64(math.Round(float64(-pos.Z()) / w)),
		Col: int64(math.Round(float64(pos.X()) / w)),
	}
}
