package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/amazeing/internal/maze"
	"github.com/vovakirdan/amazeing/internal/seed"
)

// ItemKind identifies the collectible placed in a room.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemLock
	ItemKey
	ItemCoin
)

func (k ItemKind) String() string {
	switch k {
	case ItemLock:
		return "lock"
	case ItemKey:
		return "key"
	case ItemCoin:
		return "coin"
	default:
		return "none"
	}
}

// Opening is the decision for one border of a room.
type Opening struct {
	Offset int
	Open   bool
}

// Item is the placement of a room's collectible.
type Item struct {
	Kind     ItemKind
	Cell     maze.Cell
	Position mgl32.Vec3
}

// MonsterSpawn is a monster sprite standing in an open internal wall.
type MonsterSpawn struct {
	Cell     maze.Cell
	Side     maze.Direction // Right or Down
	Position mgl32.Vec3
	Yaw      float32
}

// Layout is everything generated for one room. It is a pure function of
// the world seed, the room coordinate, the key room and whether the item
// was already collected.
type Layout struct {
	Coord    maze.Coord
	Size     int
	Hue      float32
	Topology maze.Topology
	Openings [4]Opening // indexed by maze.Direction
	Walls    []Wall
	Item     Item
	Monsters []MonsterSpawn
}

// HasItem reports whether the room still holds a collectible.
func (l Layout) HasItem() bool {
	return l.Item.Kind != ItemNone
}

// ItemKindAt returns the kind of item room c holds before anything is collected.
func ItemKindAt(c, keyRoom maze.Coord) ItemKind {
	switch c {
	case maze.Origin:
		return ItemLock
	case keyRoom:
		return ItemKey
	}
	return ItemCoin
}

// GenerateLayout builds room c of the world.
func GenerateLayout(worldSeed uint64, c maze.Coord, p Params, keyRoom maze.Coord, withItem bool) Layout {
	p = p.Normalize()
	size := p.RoomSize
	half := p.HalfCell()

	rng := seed.ForRoom(worldSeed, c)
	l := Layout{
		Coord: c,
		Size:  size,
		Hue:   rng.Float32(),
	}
	l.Topology = maze.Generate(rng, size)
	for _, d := range maze.Directions {
		offset, open := seed.BorderOpening(worldSeed, c, d, size)
		l.Openings[d] = Opening{Offset: offset, Open: open}
	}

	if withItem {
		l.Item = placeItem(worldSeed, c, p, keyRoom)
	}

	odds := float32(math.Hypot(float64(c.Row), float64(c.Col))) / p.MonsterDistance
	walled := func(d maze.Direction, offset int) bool {
		o := l.Openings[d]
		return !o.Open || o.Offset != offset
	}

	for i := range size {
		for j := range size {
			cell := maze.Cell{Row: i, Col: j}
			pos := p.CellPosition(c, cell)

			if i == 0 && walled(maze.Up, j) {
				l.Walls = append(l.Walls, Wall{Horizontal, pos.Sub(mgl32.Vec3{half, 0, 0})})
			}
			if j == 0 && walled(maze.Left, i) {
				l.Walls = append(l.Walls, Wall{Vertical, pos.Add(mgl32.Vec3{0, 0, half})})
			}

			right := Wall{Vertical, pos.Sub(mgl32.Vec3{0, 0, half})}
			switch {
			case j == size-1:
				if walled(maze.Right, i) {
					l.Walls = append(l.Walls, right)
				}
			case l.Topology.ClosedRight(cell):
				l.Walls = append(l.Walls, right)
			case rng.Float32() < odds:
				l.Monsters = append(l.Monsters, MonsterSpawn{
					Cell:     cell,
					Side:     maze.Right,
					Position: right.Center,
				})
			}

			below := Wall{Horizontal, pos.Add(mgl32.Vec3{half, 0, 0})}
			switch {
			case i == size-1:
				if walled(maze.Down, j) {
					l.Walls = append(l.Walls, below)
				}
			case l.Topology.ClosedBelow(cell):
				l.Walls = append(l.Walls, below)
			case rng.Float32() < odds:
				l.Monsters = append(l.Monsters, MonsterSpawn{
					Cell:     cell,
					Side:     maze.Down,
					Position: below.Center,
					Yaw:      math.Pi * 1.5,
				})
			}
		}
	}

	return l
}

func placeItem(worldSeed uint64, c maze.Coord, p Params, keyRoom maze.Coord) Item {
	rng := seed.ForItem(worldSeed, c)
	cell := maze.Cell{Row: rng.IntN(p.RoomSize), Col: rng.IntN(p.RoomSize)}
	return Item{
		Kind:     ItemKindAt(c, keyRoom),
		Cell:     cell,
		Position: p.CellPosition(c, cell).Sub(mgl32.Vec3{0, itemDrop, 0}),
	}
}
